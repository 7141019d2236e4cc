package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de sincronização
var (
	ErrSyncAlreadyInProgress = errors.New("sync already in progress for this account")
	ErrSyncNotFound          = errors.New("no sync known for this account")
	ErrConnectionNotFound    = errors.New("connection not found or disabled")
	ErrUnsupportedProvider   = errors.New("unsupported provider")
	ErrGenerateID            = errors.New("error generating sync ID")
)

// SyncError é um erro com contexto adicional para a sincronização
type SyncError struct {
	Err          error
	Code         string // Código de erro para API
	ConnectionID string
	AdAccountID  string
	Details      string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, connectionID, adAccountID string, details string) *SyncError {
	return &SyncError{
		Err:          err,
		Code:         code,
		ConnectionID: connectionID,
		AdAccountID:  adAccountID,
		Details:      details,
	}
}
