package domain

import "time"

// AdDataRecord é a linha normalizada de métricas persistida pelo sync.
// Chave natural: (connection_id, ad_account_id, entity_id, date_start,
// date_end) — re-sincronizações fazem upsert, nunca duplicam.
type AdDataRecord struct {
	ID                string    `json:"id"`
	ConnectionID      string    `json:"connection_id"`
	AdAccountID       string    `json:"ad_account_id"`
	EntityID          string    `json:"entity_id"`
	EntityName        string    `json:"entity_name"`
	EntityLevel       string    `json:"entity_level"`
	DateStart         time.Time `json:"date_start"`
	DateEnd           time.Time `json:"date_end"`
	Impressions       int       `json:"impressions"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	Reach             int       `json:"reach"`
	Frequency         float64   `json:"frequency"`
	CPC               float64   `json:"cpc"`
	CPM               float64   `json:"cpm"`
	CTR               float64   `json:"ctr"`
	Conversions       int       `json:"conversions"`
	CostPerConversion float64   `json:"cost_per_conversion"`
	RawData           []byte    `json:"-"`
	LastSyncedAt      time.Time `json:"last_synced_at"`
}

// SyncTarget identifica um par (connection, ad account) já sincronizado,
// usado pelo agendador de re-sincronização diária.
type SyncTarget struct {
	TenantID     string
	ConnectionID string
	AdAccountID  string
}
