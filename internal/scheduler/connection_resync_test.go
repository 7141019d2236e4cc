package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository/mocks"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/syncing"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// stubSyncService registra os alvos disparados e responde sempre concluído
type stubSyncService struct {
	mu       sync.Mutex
	synced   []*domain.SyncTarget
	failWith error
}

func (s *stubSyncService) SyncAccount(_ context.Context, target *domain.SyncTarget) (*domain.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, s.failWith
	}

	s.synced = append(s.synced, target)
	now := time.Now()
	return &domain.SyncResult{
		ConnectionID: target.ConnectionID,
		AdAccountID:  target.AdAccountID,
		Status:       domain.SyncStatusRunning,
		StartedAt:    now,
	}, nil
}

func (s *stubSyncService) Status(connectionID, adAccountID string) (*domain.SyncResult, error) {
	now := time.Now()
	return &domain.SyncResult{
		ConnectionID: connectionID,
		AdAccountID:  adAccountID,
		Status:       domain.SyncStatusCompleted,
		CompletedAt:  &now,
	}, nil
}

func (s *stubSyncService) CancelByConnection(string) {}

func (s *stubSyncService) syncedTargets() []*domain.SyncTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.SyncTarget(nil), s.synced...)
}

func TestConnectionResyncService_ResyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adDataRepo := mocks.NewMockAdDataRepository(ctrl)
	adDataRepo.EXPECT().
		ListSyncTargets().
		Return([]*domain.SyncTarget{
			{TenantID: "tenant-1", ConnectionID: "conn-1", AdAccountID: "act-1"},
			{TenantID: "tenant-1", ConnectionID: "conn-2", AdAccountID: "prop-1"},
		}, nil)

	syncService := &stubSyncService{}

	service := &ConnectionResyncService{
		config: ConnectionResyncConfig{
			Enabled:           true,
			MaxConcurrentJobs: 2,
		},
		adDataRepo:  adDataRepo,
		syncService: syncService,
	}

	service.resyncAll()

	targets := syncService.syncedTargets()
	assert.Len(t, targets, 2)

	status := service.GetStatus()
	assert.Equal(t, false, status["resync_running"])
	assert.NotZero(t, status["last_sync_completed_at"])
}

func TestConnectionResyncService_SkipsTargetAlreadyInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adDataRepo := mocks.NewMockAdDataRepository(ctrl)
	adDataRepo.EXPECT().
		ListSyncTargets().
		Return([]*domain.SyncTarget{
			{TenantID: "tenant-1", ConnectionID: "conn-1", AdAccountID: "act-1"},
		}, nil)

	// Sync em andamento não derruba a rodada inteira
	syncService := &stubSyncService{failWith: syncing.NewSyncError(
		syncing.ErrSyncAlreadyInProgress,
		apiErrors.ErrSyncInProgress,
		"conn-1",
		"act-1",
		"",
	)}

	service := &ConnectionResyncService{
		config: ConnectionResyncConfig{
			Enabled:           true,
			MaxConcurrentJobs: 1,
		},
		adDataRepo:  adDataRepo,
		syncService: syncService,
	}

	service.resyncAll()

	assert.Empty(t, syncService.syncedTargets())
}
