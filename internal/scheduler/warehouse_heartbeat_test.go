package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-dashboard/internal/config"
)

type fakePinger struct {
	mu      sync.Mutex
	err     error
	calls   int
	release chan struct{}
}

func (p *fakePinger) Ping(ctx context.Context) error {
	p.mu.Lock()
	p.calls++
	release := p.release
	err := p.err
	p.mu.Unlock()

	if release != nil {
		<-release
	}
	return err
}

func (p *fakePinger) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newHeartbeat(pinger Pinger, enabled bool) *WarehouseHeartbeatService {
	return NewWarehouseHeartbeatService(pinger, &config.Config{
		WarehouseHeartbeat: config.WarehouseHeartbeat{
			CronSchedule: "*/10 * * * *",
			Enabled:      enabled,
		},
	})
}

func TestWarehouseHeartbeatService_CheckWarehouse(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantHealthy bool
	}{
		{name: "warehouse responde", pingErr: nil, wantHealthy: true},
		{name: "warehouse fora do ar", pingErr: errors.New("dial tcp: i/o timeout"), wantHealthy: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := &fakePinger{err: tt.pingErr}
			service := newHeartbeat(pinger, true)

			err := service.CheckWarehouse(context.Background())
			if tt.pingErr != nil {
				assert.ErrorIs(t, err, tt.pingErr)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, tt.wantHealthy, status["healthy"])
			assert.Equal(t, 1, pinger.Calls())

			if tt.pingErr != nil {
				assert.Equal(t, tt.pingErr.Error(), status["last_error"])
				assert.True(t, status["last_success_at"].(time.Time).IsZero())
			} else {
				assert.NotContains(t, status, "last_error")
				assert.False(t, status["last_success_at"].(time.Time).IsZero())
			}
		})
	}
}

func TestWarehouseHeartbeatService_StatusBeforeFirstCheck(t *testing.T) {
	service := newHeartbeat(&fakePinger{}, false)

	status := service.GetStatus()
	assert.Equal(t, false, status["healthy"])
	assert.Equal(t, false, status["heartbeat_enabled"])
}

func TestWarehouseHeartbeatService_SkipsOverlappingChecks(t *testing.T) {
	pinger := &fakePinger{release: make(chan struct{})}
	service := newHeartbeat(pinger, true)

	done := make(chan error, 1)
	go func() { done <- service.CheckWarehouse(context.Background()) }()

	require.Eventually(t, func() bool { return pinger.Calls() == 1 }, time.Second, 5*time.Millisecond)

	assert.NoError(t, service.CheckWarehouse(context.Background()))
	assert.Equal(t, 1, pinger.Calls())

	close(pinger.release)
	assert.NoError(t, <-done)
}

func TestWarehouseHeartbeatService_TriggerManualCheck(t *testing.T) {
	pinger := &fakePinger{}
	service := newHeartbeat(pinger, false)

	service.TriggerManualCheck(context.Background())

	assert.Eventually(t, func() bool {
		return service.GetStatus()["healthy"] == true
	}, time.Second, 5*time.Millisecond)
}

func TestWarehouseHeartbeatService_StartDisabled(t *testing.T) {
	service := newHeartbeat(&fakePinger{}, false)
	assert.NoError(t, service.Start(context.Background()))
}

func TestWarehouseHeartbeatService_StartInvalidCron(t *testing.T) {
	service := NewWarehouseHeartbeatService(&fakePinger{}, &config.Config{
		WarehouseHeartbeat: config.WarehouseHeartbeat{CronSchedule: "not a cron", Enabled: true},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
