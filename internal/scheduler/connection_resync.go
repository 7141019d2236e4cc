package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/syncing"
)

// ConnectionResyncConfig representa a configuração do agendador de
// re-sincronização diária
type ConnectionResyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	Enabled             bool
}

// ConnectionResyncService re-sincroniza diariamente os pares
// (connection, conta) que já foram sincronizados ao menos uma vez,
// mantendo os dashboards atualizados sem ação do usuário.
type ConnectionResyncService struct {
	scheduler           *gocron.Scheduler
	config              ConnectionResyncConfig
	adDataRepo          repository.AdDataRepository
	syncService         syncing.SyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewConnectionResyncService(
	adDataRepo repository.AdDataRepository,
	syncService syncing.SyncService,
	appConfig *config.Config,
) *ConnectionResyncService {
	resyncConfig := ConnectionResyncConfig{
		CronSchedule:        appConfig.ConnectionResync.CronSchedule,
		RequestDelaySeconds: appConfig.ConnectionResync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.Sync.MaxConcurrentJobs,
		Enabled:             appConfig.ConnectionResync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         resyncConfig.CronSchedule,
		"request_delay_seconds": resyncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   resyncConfig.MaxConcurrentJobs,
		"enabled":               resyncConfig.Enabled,
	}).Info("Configuração do agendador de re-sincronização carregada")

	return &ConnectionResyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      resyncConfig,
		adDataRepo:  adDataRepo,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ConnectionResyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Re-sincronização diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de re-sincronização de connections")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.resyncAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar re-sincronização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de re-sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// resyncAll dispara a sincronização de todos os alvos conhecidos
func (s *ConnectionResyncService) resyncAll() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Re-sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	targets, err := s.adDataRepo.ListSyncTargets()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar alvos para re-sincronização")
		return
	}

	if len(targets) == 0 {
		logrus.Info("Nenhum alvo encontrado para re-sincronização")
		return
	}

	logrus.WithField("targets", len(targets)).Info("Iniciando re-sincronização de connections")

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(target *domain.SyncTarget) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.resyncTarget(target)
		}(target)

		// Espaçar os disparos para não rajar os providers
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"targets":  len(targets),
		"duration": time.Since(s.lastSyncStartedAt).String(),
	}).Info("Re-sincronização de connections concluída")
}

func (s *ConnectionResyncService) resyncTarget(target *domain.SyncTarget) {
	_, err := s.syncService.SyncAccount(context.Background(), target)
	if err != nil {
		if errors.Is(err, syncing.ErrSyncAlreadyInProgress) {
			logrus.WithFields(logrus.Fields{
				"connection_id": target.ConnectionID,
				"ad_account_id": target.AdAccountID,
			}).Info("Sync já em andamento para o alvo, ignorando")
			return
		}

		logrus.WithFields(logrus.Fields{
			"connection_id": target.ConnectionID,
			"ad_account_id": target.AdAccountID,
			"error":         err.Error(),
		}).Error("Erro ao disparar re-sincronização do alvo")
		return
	}

	// Aguardar o término antes de liberar o worker
	deadline := time.Now().Add(30 * time.Minute)
	for time.Now().Before(deadline) {
		status, err := s.syncService.Status(target.ConnectionID, target.AdAccountID)
		if err != nil || status.CompletedAt != nil {
			return
		}
		time.Sleep(time.Second)
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": target.ConnectionID,
		"ad_account_id": target.AdAccountID,
	}).Warn("Timeout aguardando o término da re-sincronização do alvo")
}

// TriggerManualSync inicia manualmente uma re-sincronização
func (s *ConnectionResyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Re-sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando re-sincronização manual")
	go s.resyncAll()
}

// GetStatus retorna o status atual do agendador
func (s *ConnectionResyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"resync_enabled":         s.config.Enabled,
		"resync_cron":            s.config.CronSchedule,
		"resync_running":         s.syncRunning,
		"max_concurrent_jobs":    s.config.MaxConcurrentJobs,
		"request_delay_seconds":  s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
