package domain

import "time"

type ConnectionStatus string

const (
	ConnectionStatusActive   ConnectionStatus = "ACTIVE"
	ConnectionStatusDisabled ConnectionStatus = "DISABLED"
)

// Connection vincula uma empresa (tenant) a uma conta autenticada em um provider.
// Invariante: no máximo uma Connection ativa por (tenant, provider).
type Connection struct {
	ID                  string           `json:"id"`
	TenantID            string           `json:"tenant_id"`
	Provider            Provider         `json:"provider"`
	ProviderAccountID   string           `json:"provider_account_id"`
	ProviderAccountName string           `json:"provider_account_name"`
	AccessToken         string           `json:"-"`
	Status              ConnectionStatus `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type ConnectionResponse struct {
	ID                  string           `json:"id"`
	TenantID            string           `json:"tenant_id"`
	Provider            Provider         `json:"provider"`
	ProviderAccountID   string           `json:"provider_account_id"`
	ProviderAccountName string           `json:"provider_account_name"`
	Status              ConnectionStatus `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
}

// ToResponse remove o access token antes da serialização para a UI
func (c *Connection) ToResponse() *ConnectionResponse {
	return &ConnectionResponse{
		ID:                  c.ID,
		TenantID:            c.TenantID,
		Provider:            c.Provider,
		ProviderAccountID:   c.ProviderAccountID,
		ProviderAccountName: c.ProviderAccountName,
		Status:              c.Status,
		CreatedAt:           c.CreatedAt,
	}
}

type ConnectWithTokenRequest struct {
	AccessToken string `json:"access_token"`
}

type BeginAuthorizationResponse struct {
	AuthURL string `json:"auth_url"`
}
