package syncing

import (
	"context"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

// ProviderSyncer é o contrato que cada provider implementa para a
// sincronização: enumerar entidades e buscar as métricas de cada uma.
type ProviderSyncer interface {
	Provider() domain.Provider
	ListEntities(ctx context.Context, accessToken, accountID string) ([]*domain.SyncEntity, error)
	FetchEntityMetrics(ctx context.Context, accessToken, accountID string, entity *domain.SyncEntity, filters *domain.InsightFilters) (*domain.EntityMetrics, error)
}

// SyncerRegistry resolve o syncer pelo provider da Connection
type SyncerRegistry map[domain.Provider]ProviderSyncer

func NewSyncerRegistry(syncers ...ProviderSyncer) SyncerRegistry {
	registry := make(SyncerRegistry, len(syncers))
	for _, syncer := range syncers {
		registry[syncer.Provider()] = syncer
	}
	return registry
}

func (r SyncerRegistry) Get(provider domain.Provider) (ProviderSyncer, bool) {
	syncer, ok := r[provider]
	return syncer, ok
}
