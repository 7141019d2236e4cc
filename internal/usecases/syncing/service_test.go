package syncing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository/mocks"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/syncing/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{
			LookbackDays:        7,
			RequestDelaySeconds: 0,
		},
	}
}

func activeConnection() *domain.Connection {
	return &domain.Connection{
		ID:          "conn-1",
		TenantID:    "tenant-1",
		Provider:    domain.ProviderMeta,
		AccessToken: "token",
		Status:      domain.ConnectionStatusActive,
	}
}

func target() *domain.SyncTarget {
	return &domain.SyncTarget{
		TenantID:     "tenant-1",
		ConnectionID: "conn-1",
		AdAccountID:  "act-1",
	}
}

func newMetaSyncerMock(ctrl *gomock.Controller) *mocks.MockProviderSyncer {
	syncer := mocks.NewMockProviderSyncer(ctrl)
	syncer.EXPECT().Provider().Return(domain.ProviderMeta).AnyTimes()
	return syncer
}

// fakeAdDataRepository guarda registros pela chave natural, reproduzindo o
// comportamento do upsert no Postgres
type fakeAdDataRepository struct {
	mu      sync.Mutex
	records map[string]*domain.AdDataRecord
}

func newFakeAdDataRepository() *fakeAdDataRepository {
	return &fakeAdDataRepository{records: make(map[string]*domain.AdDataRecord)}
}

func (f *fakeAdDataRepository) naturalKey(r *domain.AdDataRecord) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		r.ConnectionID, r.AdAccountID, r.EntityID,
		r.DateStart.Format("2006-01-02"), r.DateEnd.Format("2006-01-02"))
}

func (f *fakeAdDataRepository) Upsert(record *domain.AdDataRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[f.naturalKey(record)] = record
	return nil
}

func (f *fakeAdDataRepository) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeAdDataRepository) GetByRange(string, string, time.Time, time.Time) ([]*domain.AdDataRecord, error) {
	return nil, nil
}

func (f *fakeAdDataRepository) GetByAccountRange(string, time.Time, time.Time) ([]*domain.AdDataRecord, error) {
	return nil, nil
}

func (f *fakeAdDataRepository) GetByConnectionRange(string, time.Time, time.Time) ([]*domain.AdDataRecord, error) {
	return nil, nil
}

func (f *fakeAdDataRepository) CountByAccount(string, string) (int, error) {
	return f.Len(), nil
}

func (f *fakeAdDataRepository) ListSyncTargets() ([]*domain.SyncTarget, error) {
	return nil, nil
}

func (f *fakeAdDataRepository) DeleteOlderThan(int) (int64, error) {
	return 0, nil
}

func waitForCompletion(t *testing.T, service *Service, connectionID, adAccountID string) *domain.SyncResult {
	t.Helper()

	var result *domain.SyncResult
	require.Eventually(t, func() bool {
		r, err := service.Status(connectionID, adAccountID)
		if err != nil || r.CompletedAt == nil {
			return false
		}
		result = r
		return true
	}, 2*time.Second, 5*time.Millisecond)

	return result
}

func TestSyncAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncer := newMetaSyncerMock(ctrl)
	adDataRepo := newFakeAdDataRepository()

	connectionRepo.EXPECT().GetByID("conn-1").Return(activeConnection(), nil)

	entities := []*domain.SyncEntity{
		{ID: "camp-1", Name: "Campanha 1", Level: domain.EntityLevelCampaign},
		{ID: "camp-2", Name: "Campanha 2", Level: domain.EntityLevelCampaign},
	}
	syncer.EXPECT().ListEntities(gomock.Any(), "token", "act-1").Return(entities, nil)

	syncer.EXPECT().
		FetchEntityMetrics(gomock.Any(), "token", "act-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, entity *domain.SyncEntity, _ *domain.InsightFilters) (*domain.EntityMetrics, error) {
			return &domain.EntityMetrics{
				EntityID:    entity.ID,
				EntityName:  entity.Name,
				EntityLevel: entity.Level,
				Impressions: 100,
				Clicks:      10,
				Spend:       25.5,
			}, nil
		}).
		Times(2)

	service := NewService(testConfig(), connectionRepo, adDataRepo, NewSyncerRegistry(syncer))

	result, err := service.SyncAccount(context.Background(), target())
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusRunning, result.Status)
	assert.NotEmpty(t, result.SyncID)

	final := waitForCompletion(t, service, "conn-1", "act-1")
	assert.Equal(t, domain.SyncStatusCompleted, final.Status)
	assert.Equal(t, 2, final.RecordCount)
	assert.Empty(t, final.FailedEntityIDs)
	assert.Equal(t, 2, adDataRepo.Len())
}

func TestSyncAccount_AlreadyInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncer := newMetaSyncerMock(ctrl)
	adDataRepo := newFakeAdDataRepository()

	connectionRepo.EXPECT().GetByID("conn-1").Return(activeConnection(), nil).Times(2)

	release := make(chan struct{})
	syncer.EXPECT().
		ListEntities(gomock.Any(), "token", "act-1").
		DoAndReturn(func(context.Context, string, string) ([]*domain.SyncEntity, error) {
			<-release
			return nil, nil
		})

	service := NewService(testConfig(), connectionRepo, adDataRepo, NewSyncerRegistry(syncer))

	_, err := service.SyncAccount(context.Background(), target())
	require.NoError(t, err)

	// Segunda chamada com o primeiro sync ainda rodando
	_, err = service.SyncAccount(context.Background(), target())
	assert.ErrorIs(t, err, ErrSyncAlreadyInProgress)

	close(release)
	waitForCompletion(t, service, "conn-1", "act-1")
}

func TestSyncAccount_IdempotentRerun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncer := newMetaSyncerMock(ctrl)
	adDataRepo := newFakeAdDataRepository()

	connectionRepo.EXPECT().GetByID("conn-1").Return(activeConnection(), nil).Times(2)

	entities := []*domain.SyncEntity{
		{ID: "camp-1", Name: "Campanha 1", Level: domain.EntityLevelCampaign},
	}
	syncer.EXPECT().ListEntities(gomock.Any(), "token", "act-1").Return(entities, nil).Times(2)
	syncer.EXPECT().
		FetchEntityMetrics(gomock.Any(), "token", "act-1", gomock.Any(), gomock.Any()).
		Return(&domain.EntityMetrics{EntityID: "camp-1", EntityLevel: domain.EntityLevelCampaign}, nil).
		Times(2)

	service := NewService(testConfig(), connectionRepo, adDataRepo, NewSyncerRegistry(syncer))

	_, err := service.SyncAccount(context.Background(), target())
	require.NoError(t, err)
	waitForCompletion(t, service, "conn-1", "act-1")

	require.Equal(t, 1, adDataRepo.Len())

	// Re-sincronizar a mesma janela: upsert pela chave natural, sem duplicar
	_, err = service.SyncAccount(context.Background(), target())
	require.NoError(t, err)
	waitForCompletion(t, service, "conn-1", "act-1")

	assert.Equal(t, 1, adDataRepo.Len())
}

func TestSyncAccount_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncer := newMetaSyncerMock(ctrl)
	adDataRepo := newFakeAdDataRepository()

	connectionRepo.EXPECT().GetByID("conn-1").Return(activeConnection(), nil)

	entities := []*domain.SyncEntity{
		{ID: "camp-1", Level: domain.EntityLevelCampaign},
		{ID: "camp-2", Level: domain.EntityLevelCampaign},
		{ID: "camp-3", Level: domain.EntityLevelCampaign},
	}
	syncer.EXPECT().ListEntities(gomock.Any(), "token", "act-1").Return(entities, nil)

	syncer.EXPECT().
		FetchEntityMetrics(gomock.Any(), "token", "act-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, entity *domain.SyncEntity, _ *domain.InsightFilters) (*domain.EntityMetrics, error) {
			if entity.ID == "camp-2" {
				return nil, errors.New("rate limit")
			}
			return &domain.EntityMetrics{EntityID: entity.ID, EntityLevel: entity.Level}, nil
		}).
		Times(3)

	service := NewService(testConfig(), connectionRepo, adDataRepo, NewSyncerRegistry(syncer))

	_, err := service.SyncAccount(context.Background(), target())
	require.NoError(t, err)

	// Falha em uma entidade não aborta: as demais continuam
	final := waitForCompletion(t, service, "conn-1", "act-1")
	assert.Equal(t, domain.SyncStatusPartial, final.Status)
	assert.Equal(t, 2, final.RecordCount)
	assert.Equal(t, []string{"camp-2"}, final.FailedEntityIDs)
	assert.Equal(t, 2, adDataRepo.Len())
}

func TestSyncAccount_LockReleasedAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncer := newMetaSyncerMock(ctrl)
	adDataRepo := newFakeAdDataRepository()

	connectionRepo.EXPECT().GetByID("conn-1").Return(activeConnection(), nil).Times(2)

	syncer.EXPECT().
		ListEntities(gomock.Any(), "token", "act-1").
		Return(nil, errors.New("expired token"))
	syncer.EXPECT().
		ListEntities(gomock.Any(), "token", "act-1").
		Return([]*domain.SyncEntity{}, nil)

	service := NewService(testConfig(), connectionRepo, adDataRepo, NewSyncerRegistry(syncer))

	_, err := service.SyncAccount(context.Background(), target())
	require.NoError(t, err)

	final := waitForCompletion(t, service, "conn-1", "act-1")
	require.Equal(t, domain.SyncStatusFailed, final.Status)
	assert.Contains(t, final.Error, "expired token")

	// O lock precisa ter sido liberado mesmo com a falha
	_, err = service.SyncAccount(context.Background(), target())
	require.NoError(t, err)
	waitForCompletion(t, service, "conn-1", "act-1")
}

func TestSyncAccount_DisabledConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)

	disabled := activeConnection()
	disabled.Status = domain.ConnectionStatusDisabled
	connectionRepo.EXPECT().GetByID("conn-1").Return(disabled, nil)

	service := NewService(testConfig(), connectionRepo, newFakeAdDataRepository(), NewSyncerRegistry())

	_, err := service.SyncAccount(context.Background(), target())
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestCancelByConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncer := newMetaSyncerMock(ctrl)
	adDataRepo := newFakeAdDataRepository()

	connectionRepo.EXPECT().GetByID("conn-1").Return(activeConnection(), nil)

	entities := []*domain.SyncEntity{
		{ID: "camp-1", Level: domain.EntityLevelCampaign},
		{ID: "camp-2", Level: domain.EntityLevelCampaign},
	}
	syncer.EXPECT().ListEntities(gomock.Any(), "token", "act-1").Return(entities, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	syncer.EXPECT().
		FetchEntityMetrics(gomock.Any(), "token", "act-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, entity *domain.SyncEntity, _ *domain.InsightFilters) (*domain.EntityMetrics, error) {
			close(started)
			<-release
			return &domain.EntityMetrics{EntityID: entity.ID, EntityLevel: entity.Level}, nil
		})

	service := NewService(testConfig(), connectionRepo, adDataRepo, NewSyncerRegistry(syncer))

	_, err := service.SyncAccount(context.Background(), target())
	require.NoError(t, err)

	<-started
	service.CancelByConnection("conn-1")
	close(release)

	// O cancelamento vale a partir da próxima entidade; a primeira já
	// gravada permanece
	final := waitForCompletion(t, service, "conn-1", "act-1")
	assert.Equal(t, domain.SyncStatusCancelled, final.Status)
	assert.Equal(t, 1, final.RecordCount)
	assert.Equal(t, 1, adDataRepo.Len())
}

func TestStatus_Unknown(t *testing.T) {
	service := NewService(testConfig(), nil, nil, NewSyncerRegistry())

	_, err := service.Status("conn-x", "act-x")
	assert.ErrorIs(t, err, ErrSyncNotFound)
}
