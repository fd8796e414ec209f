// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-dashboard/internal/config"
)

const heartbeatTimeout = 10 * time.Second

// Pinger é satisfeito pela conexão com o warehouse
type Pinger interface {
	Ping(ctx context.Context) error
}

type WarehouseHeartbeatConfig struct {
	CronSchedule string
	Enabled      bool
}

// WarehouseHeartbeatService verifica periodicamente se o warehouse responde.
// Nenhum resultado de consulta é guardado aqui.
type WarehouseHeartbeatService struct {
	scheduler     *gocron.Scheduler
	conn          Pinger
	config        WarehouseHeartbeatConfig
	checkRunning  bool
	checkMutex    sync.Mutex
	statusMutex   sync.RWMutex
	lastCheckedAt time.Time
	lastSuccessAt time.Time
	lastError     error
}

func NewWarehouseHeartbeatService(conn Pinger, cfg *config.Config) *WarehouseHeartbeatService {
	heartbeatConfig := WarehouseHeartbeatConfig{
		CronSchedule: cfg.WarehouseHeartbeat.CronSchedule,
		Enabled:      cfg.WarehouseHeartbeat.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": heartbeatConfig.CronSchedule,
		"enabled":       heartbeatConfig.Enabled,
	}).Info("Configuração do heartbeat do warehouse carregada")

	return &WarehouseHeartbeatService{
		scheduler: gocron.NewScheduler(time.Local),
		conn:      conn,
		config:    heartbeatConfig,
	}
}

func (s *WarehouseHeartbeatService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Heartbeat do warehouse desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando heartbeat do warehouse")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CheckWarehouse(ctx); err != nil {
			logrus.WithError(err).Warn("Warehouse não respondeu ao heartbeat")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar heartbeat do warehouse: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando heartbeat do warehouse")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckWarehouse executa um ping no warehouse. Execuções simultâneas são ignoradas.
func (s *WarehouseHeartbeatService) CheckWarehouse(ctx context.Context) error {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Debug("Heartbeat do warehouse já em andamento")
		return nil
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.checkMutex.Unlock()
	}()

	pingCtx, cancel := context.WithTimeout(ctx, heartbeatTimeout)
	defer cancel()

	err := s.conn.Ping(pingCtx)
	now := time.Now()

	s.statusMutex.Lock()
	s.lastCheckedAt = now
	s.lastError = err
	if err == nil {
		s.lastSuccessAt = now
	}
	s.statusMutex.Unlock()

	if err != nil {
		return fmt.Errorf("erro ao pingar o warehouse: %w", err)
	}

	logrus.Debug("Heartbeat do warehouse OK")
	return nil
}

func (s *WarehouseHeartbeatService) TriggerManualCheck(ctx context.Context) {
	logrus.Info("Iniciando heartbeat manual do warehouse")
	go func() {
		if err := s.CheckWarehouse(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Warn("Warehouse não respondeu ao heartbeat manual")
		}
	}()
}

// GetStatus retorna o status atual do heartbeat
func (s *WarehouseHeartbeatService) GetStatus() map[string]any {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	status := map[string]any{
		"heartbeat_enabled": s.config.Enabled,
		"heartbeat_cron":    s.config.CronSchedule,
		"last_checked_at":   s.lastCheckedAt,
		"last_success_at":   s.lastSuccessAt,
		"healthy":           !s.lastCheckedAt.IsZero() && s.lastError == nil,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
