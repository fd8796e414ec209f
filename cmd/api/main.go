package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-dashboard/infrastructure/database/warehouse"
	"github.com/vfg2006/liquor-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-dashboard/internal/api"
	"github.com/vfg2006/liquor-sales-dashboard/internal/config"
	"github.com/vfg2006/liquor-sales-dashboard/internal/scheduler"
	"github.com/vfg2006/liquor-sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/liquor-sales-dashboard/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := warehouseConn(ctx, cfg.Warehouse)
	defer conn.Close()

	salesRepo, err := repository.NewSalesByCategoryRepository(conn, cfg.Sales.Table, cfg.Sales.Year)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a consulta de vendas por categoria")
	}
	logrus.WithField("statement", salesRepo.Statement()).Debug("Consulta do painel")

	dashboardService := dashboard.NewService(salesRepo, cfg)

	heartbeatService := scheduler.NewWarehouseHeartbeatService(conn, cfg)
	if err := heartbeatService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o heartbeat do warehouse")
	}

	server, err := api.New(cfg, dashboardService, heartbeatService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// warehouseConn abre a conexão com o warehouse configurado
func warehouseConn(ctx context.Context, cfg config.Warehouse) *warehouse.Connection {
	conn, err := warehouse.NewConnection(ctx, cfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Driver).Fatal("Erro ao conectar ao warehouse")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o warehouse estabelecida com sucesso")
	return conn
}
