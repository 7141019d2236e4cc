package aggregating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de agregação de métricas
var (
	ErrInvalidPeriod       = errors.New("invalid date range")
	ErrNoConnection        = errors.New("no active connection for provider")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrFetchRecords        = errors.New("error fetching synced records")
	ErrProviderFetch       = errors.New("error fetching live metrics from provider")
)

// MetricsError é um erro com contexto adicional para a leitura de métricas
type MetricsError struct {
	Err     error
	Code    string // Código de erro para API
	Details string
}

func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

func NewMetricsError(err error, code string, details string) *MetricsError {
	return &MetricsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
