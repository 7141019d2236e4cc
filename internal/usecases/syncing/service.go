package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

type SyncService interface {
	// SyncAccount dispara a sincronização em background e retorna o handle
	// RUNNING imediatamente. Segunda chamada para o mesmo par
	// (connection, conta) com sync em andamento falha com
	// ErrSyncAlreadyInProgress.
	SyncAccount(ctx context.Context, target *domain.SyncTarget) (*domain.SyncResult, error)
	Status(connectionID, adAccountID string) (*domain.SyncResult, error)
	CancelByConnection(connectionID string)
}

type run struct {
	connectionID string
	cancel       context.CancelFunc
}

type Service struct {
	cfg                  *config.Config
	connectionRepository repository.ConnectionRepository
	adDataRepository     repository.AdDataRepository
	syncers              SyncerRegistry

	mu      sync.Mutex
	running map[string]*run
	results map[string]*domain.SyncResult
}

func NewService(
	cfg *config.Config,
	connectionRepository repository.ConnectionRepository,
	adDataRepository repository.AdDataRepository,
	syncers SyncerRegistry,
) *Service {
	return &Service{
		cfg:                  cfg,
		connectionRepository: connectionRepository,
		adDataRepository:     adDataRepository,
		syncers:              syncers,
		running:              make(map[string]*run),
		results:              make(map[string]*domain.SyncResult),
	}
}

func lockKey(connectionID, adAccountID string) string {
	return connectionID + ":" + adAccountID
}

func (s *Service) SyncAccount(ctx context.Context, target *domain.SyncTarget) (*domain.SyncResult, error) {
	connection, err := s.connectionRepository.GetByID(target.ConnectionID)
	if err != nil {
		return nil, NewSyncError(ErrConnectionNotFound, apiErrors.ErrDatabaseOperation, target.ConnectionID, target.AdAccountID, "Falha ao consultar a connection")
	}

	if connection == nil || connection.Status != domain.ConnectionStatusActive || connection.TenantID != target.TenantID {
		return nil, NewSyncError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, target.ConnectionID, target.AdAccountID, "Connection inexistente, desabilitada ou de outro tenant")
	}

	syncer, ok := s.syncers.Get(connection.Provider)
	if !ok {
		return nil, NewSyncError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, target.ConnectionID, target.AdAccountID, string(connection.Provider))
	}

	syncID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSyncError(ErrGenerateID, apiErrors.ErrInternalServer, target.ConnectionID, target.AdAccountID, "Falha ao gerar identificador do sync")
	}

	key := lockKey(target.ConnectionID, target.AdAccountID)

	s.mu.Lock()
	if _, inProgress := s.running[key]; inProgress {
		s.mu.Unlock()
		return nil, NewSyncError(ErrSyncAlreadyInProgress, apiErrors.ErrSyncInProgress, target.ConnectionID, target.AdAccountID, "Aguarde o término da sincronização em andamento")
	}

	result := &domain.SyncResult{
		SyncID:       syncID,
		TenantID:     target.TenantID,
		ConnectionID: target.ConnectionID,
		AdAccountID:  target.AdAccountID,
		Status:       domain.SyncStatusRunning,
		StartedAt:    time.Now(),
	}

	// O contexto do run é desacoplado da requisição HTTP: o sync sobrevive
	// à resposta 202 e só morre por cancelamento explícito
	runCtx, cancel := context.WithCancel(context.Background())
	s.running[key] = &run{connectionID: target.ConnectionID, cancel: cancel}
	s.results[key] = result
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"sync_id":       syncID,
		"connection_id": target.ConnectionID,
		"ad_account_id": target.AdAccountID,
		"provider":      connection.Provider,
	}).Info("Sincronização iniciada")

	go s.run(runCtx, cancel, key, syncer, connection, target, result)

	return result.Clone(), nil
}

func (s *Service) run(ctx context.Context, cancel context.CancelFunc, key string, syncer ProviderSyncer, connection *domain.Connection, target *domain.SyncTarget, result *domain.SyncResult) {
	defer func() {
		cancel()

		s.mu.Lock()
		delete(s.running, key)
		now := time.Now()
		result.CompletedAt = &now
		s.mu.Unlock()
	}()

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -s.cfg.Sync.LookbackDays)
	filters := &domain.InsightFilters{StartDate: &startDate, EndDate: &endDate}

	entities, err := syncer.ListEntities(ctx, connection.AccessToken, target.AdAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"sync_id": result.SyncID,
			"error":   err.Error(),
		}).Error("Erro ao listar entidades para sincronização")
		s.finish(result, domain.SyncStatusFailed, err.Error())
		return
	}

	delay := time.Duration(s.cfg.Sync.RequestDelaySeconds) * time.Second

	for i, entity := range entities {
		if ctx.Err() != nil {
			// Cancelamento é best-effort: os registros já gravados ficam
			s.finish(result, domain.SyncStatusCancelled, "")
			return
		}

		// Pausa entre requisições para respeitar o rate limit do provider
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				s.finish(result, domain.SyncStatusCancelled, "")
				return
			case <-time.After(delay):
			}
		}

		if err := s.syncEntity(ctx, syncer, connection, target, entity, filters); err != nil {
			logrus.WithFields(logrus.Fields{
				"sync_id":   result.SyncID,
				"entity_id": entity.ID,
				"error":     err.Error(),
			}).Warn("Falha ao sincronizar entidade, seguindo para a próxima")

			s.mu.Lock()
			result.FailedEntityIDs = append(result.FailedEntityIDs, entity.ID)
			s.mu.Unlock()
			continue
		}

		s.mu.Lock()
		result.RecordCount++
		s.mu.Unlock()
	}

	status := domain.SyncStatusCompleted
	if len(result.FailedEntityIDs) > 0 {
		status = domain.SyncStatusPartial
		if result.RecordCount == 0 {
			status = domain.SyncStatusFailed
		}
	}
	s.finish(result, status, "")

	logrus.WithFields(logrus.Fields{
		"sync_id":      result.SyncID,
		"status":       status,
		"record_count": result.RecordCount,
		"failed":       len(result.FailedEntityIDs),
	}).Info("Sincronização finalizada")
}

func (s *Service) syncEntity(ctx context.Context, syncer ProviderSyncer, connection *domain.Connection, target *domain.SyncTarget, entity *domain.SyncEntity, filters *domain.InsightFilters) error {
	metrics, err := syncer.FetchEntityMetrics(ctx, connection.AccessToken, target.AdAccountID, entity, filters)
	if err != nil {
		return err
	}

	recordID, err := utils.GenerateID()
	if err != nil {
		return err
	}

	// O upsert pela chave natural faz o ID só valer na primeira gravação:
	// re-sincronizar a mesma janela atualiza a linha existente
	return s.adDataRepository.Upsert(&domain.AdDataRecord{
		ID:                recordID,
		ConnectionID:      target.ConnectionID,
		AdAccountID:       target.AdAccountID,
		EntityID:          metrics.EntityID,
		EntityName:        metrics.EntityName,
		EntityLevel:       metrics.EntityLevel,
		DateStart:         *filters.StartDate,
		DateEnd:           *filters.EndDate,
		Impressions:       metrics.Impressions,
		Clicks:            metrics.Clicks,
		Spend:             metrics.Spend,
		Reach:             metrics.Reach,
		Frequency:         metrics.Frequency,
		CPC:               metrics.CPC,
		CPM:               metrics.CPM,
		CTR:               metrics.CTR,
		Conversions:       metrics.Conversions,
		CostPerConversion: metrics.CostPerConversion,
		RawData:           metrics.Raw,
	})
}

func (s *Service) finish(result *domain.SyncResult, status domain.SyncStatus, errMessage string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.Status = status
	result.Error = errMessage
}

// Status retorna uma cópia do último resultado conhecido para o par
// (connection, conta), em andamento ou não
func (s *Service) Status(connectionID, adAccountID string) (*domain.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[lockKey(connectionID, adAccountID)]
	if !ok {
		return nil, NewSyncError(ErrSyncNotFound, apiErrors.ErrSyncNotFound, connectionID, adAccountID, "Nenhuma sincronização conhecida para a conta")
	}

	return result.Clone(), nil
}

// CancelByConnection cancela todos os syncs em andamento da Connection.
// Chamado pelo fluxo de desconexão.
func (s *Service) CancelByConnection(connectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, r := range s.running {
		if r.connectionID == connectionID {
			logrus.WithFields(logrus.Fields{
				"connection_id": connectionID,
				"lock_key":      key,
			}).Info("Cancelando sincronização em andamento")
			r.cancel()
		}
	}
}
