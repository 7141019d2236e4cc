package connecting

import (
	"context"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

// ProviderIntegrator é o contrato que cada provider implementa para o fluxo
// de conexão: URL de autorização, troca do code, checagem de identidade e
// enumeração de contas de anúncio.
type ProviderIntegrator interface {
	Provider() domain.Provider
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	Identity(ctx context.Context, accessToken string) (*domain.ProviderIdentity, error)
	ListAdAccounts(ctx context.Context, accessToken string) ([]*domain.AdAccount, error)
}

// SyncCanceller cancela syncs em andamento quando uma Connection é
// desabilitada. Implementado pelo coordenador de sincronização.
type SyncCanceller interface {
	CancelByConnection(connectionID string)
}

// Registry resolve o integrador pelo provider que veio na URL
type Registry map[domain.Provider]ProviderIntegrator

func NewRegistry(integrators ...ProviderIntegrator) Registry {
	registry := make(Registry, len(integrators))
	for _, integrator := range integrators {
		registry[integrator.Provider()] = integrator
	}
	return registry
}

func (r Registry) Get(provider domain.Provider) (ProviderIntegrator, bool) {
	integrator, ok := r[provider]
	return integrator, ok
}
