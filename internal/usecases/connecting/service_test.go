package connecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository/mocks"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/connecting/mocks"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/statestore"
)

func newMetaIntegratorMock(ctrl *gomock.Controller) *mocks.MockProviderIntegrator {
	integrator := mocks.NewMockProviderIntegrator(ctrl)
	integrator.EXPECT().Provider().Return(domain.ProviderMeta).AnyTimes()
	return integrator
}

func TestBeginAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	var capturedState string
	integrator.EXPECT().
		AuthorizationURL(gomock.Any()).
		DoAndReturn(func(state string) string {
			capturedState = state
			return "https://provider.example/oauth?state=" + state
		})

	service := NewService(states, NewRegistry(integrator), nil, nil)

	response, err := service.BeginAuthorization(domain.ProviderMeta, "tenant-1")
	require.NoError(t, err)

	// O state da URL precisa ser verificável depois, amarrado ao par certo
	assert.Contains(t, response.AuthURL, capturedState)

	binding, ok := states.Verify(capturedState)
	require.True(t, ok)
	assert.Equal(t, domain.ProviderMeta, binding.Provider)
	assert.Equal(t, "tenant-1", binding.TenantID)
}

func TestBeginAuthorization_UnsupportedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	states := statestore.NewMemoryStore(statestore.DefaultTTL)
	service := NewService(states, NewRegistry(), nil, nil)

	_, err := service.BeginAuthorization(domain.Provider("tiktok"), "tenant-1")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestCompleteAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	state, err := states.Create(domain.ProviderMeta, "tenant-1")
	require.NoError(t, err)

	integrator.EXPECT().
		ExchangeCode(gomock.Any(), "auth-code").
		Return("long-lived-token", nil)

	integrator.EXPECT().
		Identity(gomock.Any(), "long-lived-token").
		Return(&domain.ProviderIdentity{ID: "meta-user-9", Name: "Gestor"}, nil)

	var saved *domain.Connection
	connectionRepo.EXPECT().
		SaveNewActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, connection *domain.Connection) error {
			saved = connection
			return nil
		})

	service := NewService(states, NewRegistry(integrator), connectionRepo, nil)

	response, err := service.CompleteAuthorization(context.Background(), state, "auth-code")
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "tenant-1", saved.TenantID)
	assert.Equal(t, domain.ProviderMeta, saved.Provider)
	assert.Equal(t, "meta-user-9", saved.ProviderAccountID)
	assert.Equal(t, "long-lived-token", saved.AccessToken)
	assert.Equal(t, domain.ConnectionStatusActive, saved.Status)

	assert.Equal(t, saved.ID, response.ID)
	assert.Equal(t, "Gestor", response.ProviderAccountName)
}

func TestCompleteAuthorization_InvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem EXPECT de ExchangeCode: state inválido rejeita antes de qualquer
	// chamada ao provider
	integrator := newMetaIntegratorMock(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	service := NewService(states, NewRegistry(integrator), nil, nil)

	_, err := service.CompleteAuthorization(context.Background(), "state-desconhecido", "auth-code")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteAuthorization_StateReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	state, err := states.Create(domain.ProviderMeta, "tenant-1")
	require.NoError(t, err)

	integrator.EXPECT().ExchangeCode(gomock.Any(), "auth-code").Return("token", nil)
	integrator.EXPECT().Identity(gomock.Any(), "token").Return(&domain.ProviderIdentity{ID: "u1"}, nil)
	connectionRepo.EXPECT().SaveNewActive(gomock.Any(), gomock.Any()).Return(nil)

	service := NewService(states, NewRegistry(integrator), connectionRepo, nil)

	_, err = service.CompleteAuthorization(context.Background(), state, "auth-code")
	require.NoError(t, err)

	// Replay do callback com o mesmo state: uso único
	_, err = service.CompleteAuthorization(context.Background(), state, "auth-code")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteAuthorization_ExpiredState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	states := statestore.NewMemoryStore(10 * time.Millisecond)

	state, err := states.Create(domain.ProviderMeta, "tenant-1")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	service := NewService(states, NewRegistry(integrator), nil, nil)

	_, err = service.CompleteAuthorization(context.Background(), state, "auth-code")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteAuthorization_ExchangeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	state, err := states.Create(domain.ProviderMeta, "tenant-1")
	require.NoError(t, err)

	integrator.EXPECT().
		ExchangeCode(gomock.Any(), "auth-code").
		Return("", errors.New("Error validating verification code"))

	service := NewService(states, NewRegistry(integrator), nil, nil)

	_, err = service.CompleteAuthorization(context.Background(), state, "auth-code")
	require.ErrorIs(t, err, ErrProviderAuth)

	// A mensagem crua do provider fica no erro tipado para o log
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Contains(t, connErr.ProviderMessage, "verification code")
}

func TestConnectWithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	integrator.EXPECT().
		Identity(gomock.Any(), "manual-token").
		Return(&domain.ProviderIdentity{ID: "meta-user-1", Name: "Conta Manual"}, nil)

	connectionRepo.EXPECT().SaveNewActive(gomock.Any(), gomock.Any()).Return(nil)

	service := NewService(states, NewRegistry(integrator), connectionRepo, nil)

	response, err := service.ConnectWithToken(context.Background(), domain.ProviderMeta, "tenant-1", "manual-token")
	require.NoError(t, err)
	assert.Equal(t, "meta-user-1", response.ProviderAccountID)
}

func TestConnectWithToken_IdentityCheckFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem EXPECT de SaveNewActive: token rejeitado nunca é persistido
	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	states := statestore.NewMemoryStore(statestore.DefaultTTL)

	integrator.EXPECT().
		Identity(gomock.Any(), "token-invalido").
		Return(nil, errors.New("Invalid OAuth access token"))

	service := NewService(states, NewRegistry(integrator), connectionRepo, nil)

	_, err := service.ConnectWithToken(context.Background(), domain.ProviderMeta, "tenant-1", "token-invalido")
	assert.ErrorIs(t, err, ErrProviderAuth)
}

func TestListAdAccounts_FiltersToOperableStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)

	connectionRepo.EXPECT().
		GetByID("conn-1").
		Return(&domain.Connection{
			ID:          "conn-1",
			Provider:    domain.ProviderMeta,
			AccessToken: "token",
			Status:      domain.ConnectionStatusActive,
		}, nil)

	// Status codes do Meta: 1 e 2 operáveis, 3 desabilitada, 101 pendente
	integrator.EXPECT().
		ListAdAccounts(gomock.Any(), "token").
		Return([]*domain.AdAccount{
			{ID: "a1", Status: domain.MapMetaAccountStatus(1)},
			{ID: "a2", Status: domain.MapMetaAccountStatus(2)},
			{ID: "a3", Status: domain.MapMetaAccountStatus(3)},
			{ID: "a4", Status: domain.MapMetaAccountStatus(101)},
		}, nil)

	service := NewService(nil, NewRegistry(integrator), connectionRepo, nil)

	response, err := service.ListAdAccounts(context.Background(), "conn-1")
	require.NoError(t, err)

	require.Len(t, response.Accounts, 2)
	assert.Equal(t, "a1", response.Accounts[0].ID)
	assert.Equal(t, "a2", response.Accounts[1].ID)

	// Duas contas ativas: a escolha padrão fica com o usuário
	assert.Nil(t, response.DefaultAccount)
}

func TestListAdAccounts_SingleActiveIsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)

	connectionRepo.EXPECT().
		GetByID("conn-1").
		Return(&domain.Connection{
			ID:          "conn-1",
			Provider:    domain.ProviderMeta,
			AccessToken: "token",
			Status:      domain.ConnectionStatusActive,
		}, nil)

	integrator.EXPECT().
		ListAdAccounts(gomock.Any(), "token").
		Return([]*domain.AdAccount{
			{ID: "a1", Status: domain.AdAccountStatusActive},
			{ID: "a2", Status: domain.AdAccountStatusDisabled},
		}, nil)

	service := NewService(nil, NewRegistry(integrator), connectionRepo, nil)

	response, err := service.ListAdAccounts(context.Background(), "conn-1")
	require.NoError(t, err)

	require.NotNil(t, response.DefaultAccount)
	assert.Equal(t, "a1", response.DefaultAccount.ID)
}

func TestListAdAccounts_DisabledConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := newMetaIntegratorMock(ctrl)
	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)

	connectionRepo.EXPECT().
		GetByID("conn-1").
		Return(&domain.Connection{ID: "conn-1", Status: domain.ConnectionStatusDisabled}, nil)

	service := NewService(nil, NewRegistry(integrator), connectionRepo, nil)

	_, err := service.ListAdAccounts(context.Background(), "conn-1")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestDisableConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	syncCanceller := mocks.NewMockSyncCanceller(ctrl)

	connectionRepo.EXPECT().
		GetByID("conn-1").
		Return(&domain.Connection{
			ID:       "conn-1",
			TenantID: "tenant-1",
			Provider: domain.ProviderMeta,
			Status:   domain.ConnectionStatusActive,
		}, nil)

	connectionRepo.EXPECT().Disable("conn-1").Return(nil)
	syncCanceller.EXPECT().CancelByConnection("conn-1")

	service := NewService(nil, NewRegistry(), connectionRepo, syncCanceller)

	err := service.DisableConnection(context.Background(), "conn-1")
	assert.NoError(t, err)
}
