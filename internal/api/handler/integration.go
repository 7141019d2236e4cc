package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/connecting"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
)

// BeginAuthorization inicia o fluxo OAuth: devolve a URL de autorização do
// provider com o state anti-CSRF embutido
func BeginAuthorization(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		provider, err := domain.ParseProvider(params.ByName("provider"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedProvider, "Provider não suportado", nil)
			return
		}

		tenantID := params.ByName("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da empresa não informado", nil)
			return
		}

		response, err := service.BeginAuthorization(provider, tenantID)
		if err != nil {
			writeConnectingError(w, err, "Erro ao iniciar autorização")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// OAuthCallback é o alvo do redirect do provider. O provider e o tenant vêm
// do binding do state, nunca da URL.
func OAuthCallback(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")

		if state == "" || code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros state e code são obrigatórios", nil)
			return
		}

		connection, err := service.CompleteAuthorization(r.Context(), state, code)
		if err != nil {
			writeConnectingError(w, err, "Erro ao concluir autorização")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(connection); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ConnectWithToken conecta com um access token já existente
func ConnectWithToken(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		provider, err := domain.ParseProvider(params.ByName("provider"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedProvider, "Provider não suportado", nil)
			return
		}

		tenantID := params.ByName("tenant_id")

		var request domain.ConnectWithTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		connection, err := service.ConnectWithToken(r.Context(), provider, tenantID, request.AccessToken)
		if err != nil {
			writeConnectingError(w, err, "Erro ao conectar com token")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(connection); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListConnectionAdAccounts enumera as contas de anúncio da Connection
func ListConnectionAdAccounts(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		connectionID := params.ByName("connection_id")
		if connectionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da connection não informado", nil)
			return
		}

		accounts, err := service.ListAdAccounts(r.Context(), connectionID)
		if err != nil {
			writeConnectingError(w, err, "Erro ao listar contas de anúncio")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DisconnectConnection desabilita a Connection (nunca apaga) e cancela
// syncs em andamento
func DisconnectConnection(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		connectionID := params.ByName("connection_id")
		if connectionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da connection não informado", nil)
			return
		}

		if err := service.DisableConnection(r.Context(), connectionID); err != nil {
			writeConnectingError(w, err, "Erro ao desconectar")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"connection_id": connectionID,
			"status":        domain.ConnectionStatusDisabled,
		}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeConnectingError traduz os erros do usecase para o envelope da API.
// Mensagens cruas do provider ficam só no log.
func writeConnectingError(w http.ResponseWriter, err error, logMessage string) {
	logrus.Error(logMessage, ": ", err)

	var connErr *connecting.ConnectionError
	if errors.As(err, &connErr) {
		message := connErr.Err.Error()
		apiErrors.WriteError(w, connErr.Code, message, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, logMessage, nil)
}
