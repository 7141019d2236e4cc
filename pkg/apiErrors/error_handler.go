package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos para a UI
const (
	// Erros do fluxo OAuth (OAUTH_*)
	ErrInvalidState        = "OAUTH_001" // State CSRF ausente, expirado ou reutilizado
	ErrProviderAuth        = "OAUTH_002" // Credencial rejeitada pelo provider
	ErrAccountFetch        = "OAUTH_003" // Falha ao listar contas de anúncio
	ErrUnsupportedProvider = "OAUTH_004" // Provider desconhecido na URL
	ErrConnectionNotFound  = "OAUTH_005" // Connection inexistente ou desabilitada

	// Erros de sincronização (SYNC_*)
	ErrSyncInProgress = "SYNC_001" // Sync já em andamento para a conta
	ErrSyncNotFound   = "SYNC_002" // Nenhum sync conhecido para a conta

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (SRV_*)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidState:        http.StatusUnauthorized,
	ErrProviderAuth:        http.StatusUnauthorized,
	ErrAccountFetch:        http.StatusBadGateway,
	ErrUnsupportedProvider: http.StatusBadRequest,
	ErrConnectionNotFound:  http.StatusNotFound,
	ErrSyncInProgress:      http.StatusConflict,
	ErrSyncNotFound:        http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
