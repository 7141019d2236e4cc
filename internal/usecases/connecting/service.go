package connecting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/statestore"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

type ConnectionService interface {
	BeginAuthorization(provider domain.Provider, tenantID string) (*domain.BeginAuthorizationResponse, error)
	CompleteAuthorization(ctx context.Context, state, code string) (*domain.ConnectionResponse, error)
	ConnectWithToken(ctx context.Context, provider domain.Provider, tenantID, accessToken string) (*domain.ConnectionResponse, error)
	ListAdAccounts(ctx context.Context, connectionID string) (*domain.AdAccountListResponse, error)
	DisableConnection(ctx context.Context, connectionID string) error
}

type Service struct {
	states               statestore.Store
	integrators          Registry
	connectionRepository repository.ConnectionRepository
	syncCanceller        SyncCanceller
}

func NewService(
	states statestore.Store,
	integrators Registry,
	connectionRepository repository.ConnectionRepository,
	syncCanceller SyncCanceller,
) ConnectionService {
	return &Service{
		states:               states,
		integrators:          integrators,
		connectionRepository: connectionRepository,
		syncCanceller:        syncCanceller,
	}
}

// BeginAuthorization gera o state anti-CSRF amarrado ao par (provider,
// tenant) e devolve a URL de autorização do provider
func (s *Service) BeginAuthorization(provider domain.Provider, tenantID string) (*domain.BeginAuthorizationResponse, error) {
	integrator, ok := s.integrators.Get(provider)
	if !ok {
		return nil, NewConnectionError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, string(provider))
	}

	state, err := s.states.Create(provider, tenantID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao criar state OAuth")
		return nil, NewConnectionError(ErrCreateState, apiErrors.ErrInternalServer, "Falha ao gerar o state de autorização")
	}

	return &domain.BeginAuthorizationResponse{
		AuthURL: integrator.AuthorizationURL(state),
	}, nil
}

// CompleteAuthorization fecha o fluxo OAuth iniciado no BeginAuthorization.
// O state é verificado ANTES de qualquer chamada ao provider: state inválido,
// expirado ou reutilizado rejeita o callback sem trocar o code.
func (s *Service) CompleteAuthorization(ctx context.Context, state, code string) (*domain.ConnectionResponse, error) {
	binding, ok := s.states.Verify(state)
	if !ok {
		return nil, NewConnectionError(ErrInvalidState, apiErrors.ErrInvalidState, "State ausente, expirado ou já utilizado")
	}

	integrator, ok := s.integrators.Get(binding.Provider)
	if !ok {
		return nil, NewConnectionError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, string(binding.Provider))
	}

	accessToken, err := integrator.ExchangeCode(ctx, code)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": binding.Provider,
			"error":    err.Error(),
		}).Error("Erro ao trocar o code pelo access token")
		return nil, NewProviderError(ErrProviderAuth, apiErrors.ErrProviderAuth, string(binding.Provider), err.Error())
	}

	return s.saveConnection(ctx, integrator, binding.TenantID, accessToken)
}

// ConnectWithToken conecta com um token já existente (migração ou teste),
// passando pela mesma checagem de identidade do fluxo OAuth
func (s *Service) ConnectWithToken(ctx context.Context, provider domain.Provider, tenantID, accessToken string) (*domain.ConnectionResponse, error) {
	integrator, ok := s.integrators.Get(provider)
	if !ok {
		return nil, NewConnectionError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, string(provider))
	}

	if accessToken == "" {
		return nil, NewConnectionError(ErrProviderAuth, apiErrors.ErrMissingRequiredData, "O access token é obrigatório")
	}

	return s.saveConnection(ctx, integrator, tenantID, accessToken)
}

// saveConnection valida o token no provider e só então persiste. Token que
// falha na checagem de identidade nunca chega ao banco.
func (s *Service) saveConnection(ctx context.Context, integrator ProviderIntegrator, tenantID, accessToken string) (*domain.ConnectionResponse, error) {
	provider := integrator.Provider()

	identity, err := integrator.Identity(ctx, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": provider,
			"error":    err.Error(),
		}).Error("Erro na checagem de identidade do token")
		return nil, NewProviderError(ErrProviderAuth, apiErrors.ErrProviderAuth, string(provider), err.Error())
	}

	connectionID, err := utils.GenerateID()
	if err != nil {
		return nil, NewConnectionError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da connection")
	}

	connection := &domain.Connection{
		ID:                  connectionID,
		TenantID:            tenantID,
		Provider:            provider,
		ProviderAccountID:   identity.ID,
		ProviderAccountName: identity.Name,
		AccessToken:         accessToken,
		Status:              domain.ConnectionStatusActive,
	}

	// A transação desabilita a Connection ativa anterior do par
	// (tenant, provider) antes de inserir a nova
	if err := s.connectionRepository.SaveNewActive(ctx, connection); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"provider":  provider,
			"error":     err.Error(),
		}).Error("Erro ao salvar connection")
		return nil, NewConnectionError(ErrSaveConnection, apiErrors.ErrDatabaseOperation, "Falha ao salvar a connection no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"tenant_id":     tenantID,
		"provider":      provider,
	}).Info("Connection criada com sucesso")

	return connection.ToResponse(), nil
}

// ListAdAccounts enumera as contas de anúncio da Connection, já filtradas
// para as operáveis, e indica a conta padrão quando a escolha é inequívoca
func (s *Service) ListAdAccounts(ctx context.Context, connectionID string) (*domain.AdAccountListResponse, error) {
	connection, err := s.getActiveConnection(connectionID)
	if err != nil {
		return nil, err
	}

	integrator, ok := s.integrators.Get(connection.Provider)
	if !ok {
		return nil, NewConnectionError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, string(connection.Provider))
	}

	accounts, err := integrator.ListAdAccounts(ctx, connection.AccessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": connectionID,
			"provider":      connection.Provider,
			"error":         err.Error(),
		}).Error("Erro ao listar contas de anúncio no provider")
		return nil, NewProviderError(ErrAccountFetch, apiErrors.ErrAccountFetch, string(connection.Provider), err.Error())
	}

	return &domain.AdAccountListResponse{
		ConnectionID:   connectionID,
		Accounts:       domain.FilterActiveAdAccounts(accounts),
		DefaultAccount: domain.SelectDefaultAdAccount(accounts),
	}, nil
}

// DisableConnection é o desconectar do usuário: desabilita (nunca apaga) e
// cancela qualquer sync em andamento da Connection. Os AdDataRecords já
// sincronizados são mantidos.
func (s *Service) DisableConnection(ctx context.Context, connectionID string) error {
	connection, err := s.getActiveConnection(connectionID)
	if err != nil {
		return err
	}

	if err := s.connectionRepository.Disable(connection.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": connectionID,
			"error":         err.Error(),
		}).Error("Erro ao desabilitar connection")
		return NewConnectionError(ErrSaveConnection, apiErrors.ErrDatabaseOperation, "Falha ao desabilitar a connection")
	}

	if s.syncCanceller != nil {
		s.syncCanceller.CancelByConnection(connection.ID)
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connectionID,
		"tenant_id":     connection.TenantID,
		"provider":      connection.Provider,
	}).Info("Connection desabilitada")

	return nil
}

func (s *Service) getActiveConnection(connectionID string) (*domain.Connection, error) {
	connection, err := s.connectionRepository.GetByID(connectionID)
	if err != nil {
		return nil, NewConnectionError(ErrConnectionNotFound, apiErrors.ErrDatabaseOperation, "Falha ao consultar a connection")
	}

	if connection == nil || connection.Status != domain.ConnectionStatusActive {
		return nil, NewConnectionError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, connectionID)
	}

	return connection, nil
}
