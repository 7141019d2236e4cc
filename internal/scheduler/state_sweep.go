package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/statestore"
)

// StateSweepConfig representa a configuração do agendador de limpeza de states
type StateSweepConfig struct {
	CronSchedule string
	Enabled      bool
}

// StateSweepService agenda a varredura periódica de states OAuth expirados.
// O store também varre preguiçosamente a cada Create; o agendador garante a
// limpeza mesmo sem novos fluxos de autorização.
type StateSweepService struct {
	scheduler   *gocron.Scheduler
	config      StateSweepConfig
	states      statestore.Store
	lastSweepAt time.Time
	lastRemoved int
	mu          sync.Mutex
}

func NewStateSweepService(states statestore.Store, appConfig *config.Config) *StateSweepService {
	sweepConfig := StateSweepConfig{
		CronSchedule: appConfig.StateSweep.CronSchedule,
		Enabled:      appConfig.StateSweep.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"enabled":       sweepConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de states carregada")

	return &StateSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    sweepConfig,
		states:    states,
	}
}

// Start inicia o agendador
func (s *StateSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza periódica de states desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de states OAuth")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de states: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de states")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StateSweepService) sweep() {
	removed := s.states.Sweep()

	s.mu.Lock()
	s.lastSweepAt = time.Now()
	s.lastRemoved = removed
	s.mu.Unlock()

	if removed > 0 {
		logrus.WithField("removed", removed).Info("States OAuth expirados removidos")
	}
}

// TriggerManualSweep executa a limpeza imediatamente
func (s *StateSweepService) TriggerManualSweep() {
	logrus.Info("Iniciando limpeza manual de states OAuth")
	s.sweep()
}

// GetStatus retorna o status atual do agendador
func (s *StateSweepService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sweep_enabled":      s.config.Enabled,
		"sweep_cron":         s.config.CronSchedule,
		"last_sweep_at":      s.lastSweepAt,
		"last_sweep_removed": s.lastRemoved,
	}
}
