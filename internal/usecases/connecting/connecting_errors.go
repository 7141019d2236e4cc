package connecting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conexão de providers
var (
	// Erros do fluxo OAuth
	ErrInvalidState        = errors.New("invalid or expired state token")
	ErrProviderAuth        = errors.New("provider rejected the credential")
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// Erros de contas e conexões
	ErrAccountFetch       = errors.New("error fetching ad accounts from provider")
	ErrConnectionNotFound = errors.New("connection not found")

	// Erros de infraestrutura
	ErrSaveConnection = errors.New("error saving connection")
	ErrGenerateID     = errors.New("error generating connection ID")
	ErrCreateState    = errors.New("error creating state token")
)

// ConnectionError é um erro com contexto adicional para o fluxo de conexão.
// ProviderMessage carrega a mensagem crua do provider sem vazar para a UI.
type ConnectionError struct {
	Err             error
	Code            string // Código de erro para API
	Provider        string
	ProviderMessage string
	Details         string
}

func (e *ConnectionError) Error() string {
	if e.ProviderMessage != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.ProviderMessage)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(err error, code string, details string) *ConnectionError {
	return &ConnectionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewProviderError cria um ConnectionError preservando a mensagem crua do
// provider para o log
func NewProviderError(err error, code string, provider string, providerMessage string) *ConnectionError {
	return &ConnectionError{
		Err:             err,
		Code:            code,
		Provider:        provider,
		ProviderMessage: providerMessage,
	}
}
