package domain

import "fmt"

// Provider identifica a origem dos dados de marketing
type Provider string

const (
	ProviderMeta   Provider = "meta"
	ProviderGoogle Provider = "google"
)

// ParseProvider valida o identificador de provider recebido na URL
func ParseProvider(raw string) (Provider, error) {
	switch Provider(raw) {
	case ProviderMeta:
		return ProviderMeta, nil
	case ProviderGoogle:
		return ProviderGoogle, nil
	default:
		return "", fmt.Errorf("provider não suportado: %s", raw)
	}
}

// ProviderIdentity é a identidade retornada pelo endpoint "who am I" do provider
type ProviderIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
