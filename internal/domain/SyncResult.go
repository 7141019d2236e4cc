package domain

import "time"

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "RUNNING"
	SyncStatusCompleted SyncStatus = "COMPLETED"
	SyncStatusPartial   SyncStatus = "PARTIAL"
	SyncStatusFailed    SyncStatus = "FAILED"
	SyncStatusCancelled SyncStatus = "CANCELLED"
)

// SyncResult é o handle observável de uma sincronização. A requisição que
// dispara o sync recebe o estado RUNNING e acompanha por polling.
type SyncResult struct {
	SyncID          string     `json:"sync_id"`
	TenantID        string     `json:"tenant_id"`
	ConnectionID    string     `json:"connection_id"`
	AdAccountID     string     `json:"ad_account_id"`
	Status          SyncStatus `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	RecordCount     int        `json:"record_count"`
	FailedEntityIDs []string   `json:"failed_entity_ids,omitempty"`
	Error           string     `json:"error,omitempty"`
}

// Clone devolve uma cópia para leitura fora do lock do coordenador
func (r *SyncResult) Clone() *SyncResult {
	cp := *r
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		cp.CompletedAt = &t
	}
	cp.FailedEntityIDs = append([]string(nil), r.FailedEntityIDs...)
	return &cp
}
