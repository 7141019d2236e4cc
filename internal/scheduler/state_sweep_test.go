package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/statestore"
)

func TestStateSweepService_TriggerManualSweep(t *testing.T) {
	store := statestore.NewMemoryStore(10 * time.Millisecond)

	_, err := store.Create(domain.ProviderMeta, "tenant-1")
	require.NoError(t, err)
	_, err = store.Create(domain.ProviderGoogle, "tenant-1")
	require.NoError(t, err)

	service := &StateSweepService{
		config: StateSweepConfig{Enabled: true, CronSchedule: "*/10 * * * *"},
		states: store,
	}

	// Antes de expirar a varredura não remove nada
	service.TriggerManualSweep()
	assert.Equal(t, 2, store.Len())

	time.Sleep(20 * time.Millisecond)

	service.TriggerManualSweep()
	assert.Equal(t, 0, store.Len())

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_sweep_removed"])
	assert.NotZero(t, status["last_sweep_at"])
}

func TestStateSweepService_StatusReportsConfig(t *testing.T) {
	service := &StateSweepService{
		config: StateSweepConfig{Enabled: false, CronSchedule: "*/5 * * * *"},
		states: statestore.NewMemoryStore(time.Minute),
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["sweep_enabled"])
	assert.Equal(t, "*/5 * * * *", status["sweep_cron"])
}
