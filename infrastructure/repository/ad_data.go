package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/database/postgres"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

const (
	adDataTable = "ad_data_records r"
)

type AdDataRepository interface {
	// Upsert grava pela chave natural (connection_id, ad_account_id,
	// entity_id, date_start, date_end): re-sincronizar nunca duplica.
	Upsert(record *domain.AdDataRecord) error
	GetByRange(connectionID, adAccountID string, startDate, endDate time.Time) ([]*domain.AdDataRecord, error)
	GetByAccountRange(adAccountID string, startDate, endDate time.Time) ([]*domain.AdDataRecord, error)
	GetByConnectionRange(connectionID string, startDate, endDate time.Time) ([]*domain.AdDataRecord, error)
	CountByAccount(connectionID, adAccountID string) (int, error)
	ListSyncTargets() ([]*domain.SyncTarget, error)
	DeleteOlderThan(days int) (int64, error)
}

type adDataRepository struct {
	conn *postgres.Connection
}

func NewAdDataRepository(conn *postgres.Connection) AdDataRepository {
	return &adDataRepository{
		conn: conn,
	}
}

const adDataColumns = "r.id, r.connection_id, r.ad_account_id, r.entity_id, r.entity_name, r.entity_level, " +
	"r.date_start, r.date_end, r.impressions, r.clicks, r.spend, r.reach, r.frequency, r.cpc, r.cpm, r.ctr, " +
	"r.conversions, r.cost_per_conversion, r.raw_data, r.last_synced_at"

func (r *adDataRepository) Upsert(record *domain.AdDataRecord) error {
	query := squirrel.StatementBuilder.
		Insert("ad_data_records").
		Columns(
			"id", "connection_id", "ad_account_id", "entity_id", "entity_name", "entity_level",
			"date_start", "date_end", "impressions", "clicks", "spend", "reach", "frequency",
			"cpc", "cpm", "ctr", "conversions", "cost_per_conversion", "raw_data",
		).
		Values(
			record.ID,
			record.ConnectionID,
			record.AdAccountID,
			record.EntityID,
			record.EntityName,
			record.EntityLevel,
			record.DateStart.Format("2006-01-02"),
			record.DateEnd.Format("2006-01-02"),
			record.Impressions,
			record.Clicks,
			record.Spend,
			record.Reach,
			record.Frequency,
			record.CPC,
			record.CPM,
			record.CTR,
			record.Conversions,
			record.CostPerConversion,
			record.RawData,
		).
		Suffix(`
			ON CONFLICT (connection_id, ad_account_id, entity_id, date_start, date_end) DO UPDATE SET
				entity_name = EXCLUDED.entity_name,
				entity_level = EXCLUDED.entity_level,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				reach = EXCLUDED.reach,
				frequency = EXCLUDED.frequency,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				ctr = EXCLUDED.ctr,
				conversions = EXCLUDED.conversions,
				cost_per_conversion = EXCLUDED.cost_per_conversion,
				raw_data = EXCLUDED.raw_data,
				last_synced_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adDataRepository) GetByRange(connectionID, adAccountID string, startDate, endDate time.Time) ([]*domain.AdDataRecord, error) {
	return r.listRecords(squirrel.Eq{
		"r.connection_id": connectionID,
		"r.ad_account_id": adAccountID,
	}, startDate, endDate)
}

func (r *adDataRepository) GetByAccountRange(adAccountID string, startDate, endDate time.Time) ([]*domain.AdDataRecord, error) {
	return r.listRecords(squirrel.Eq{
		"r.ad_account_id": adAccountID,
	}, startDate, endDate)
}

func (r *adDataRepository) GetByConnectionRange(connectionID string, startDate, endDate time.Time) ([]*domain.AdDataRecord, error) {
	return r.listRecords(squirrel.Eq{
		"r.connection_id": connectionID,
	}, startDate, endDate)
}

func (r *adDataRepository) listRecords(whereClause map[string]interface{}, startDate, endDate time.Time) ([]*domain.AdDataRecord, error) {
	query, args, err := squirrel.
		Select(adDataColumns).
		From(adDataTable).
		Where(whereClause).
		Where(squirrel.GtOrEq{"r.date_start": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"r.date_end": endDate.Format("2006-01-02")}).
		OrderBy("r.date_start ASC", "r.entity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AdDataRecord, 0)
	for rows.Next() {
		record, err := scanAdDataRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad data records: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *adDataRepository) CountByAccount(connectionID, adAccountID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(adDataTable).
		Where(squirrel.Eq{
			"r.connection_id": connectionID,
			"r.ad_account_id": adAccountID,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return count, nil
}

// ListSyncTargets retorna os pares (connection, conta) já sincronizados de
// connections ainda ativas, para o agendador de re-sincronização
func (r *adDataRepository) ListSyncTargets() ([]*domain.SyncTarget, error) {
	query, args, err := squirrel.
		Select("DISTINCT c.tenant_id, r.connection_id, r.ad_account_id").
		From(adDataTable).
		Join("connections c ON c.id = r.connection_id").
		Where(squirrel.Eq{"c.status": string(domain.ConnectionStatusActive)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.SyncTarget, 0)
	for rows.Next() {
		target := &domain.SyncTarget{}
		if err := rows.Scan(&target.TenantID, &target.ConnectionID, &target.AdAccountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear sync targets: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func (r *adDataRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("ad_data_records").
		Where(squirrel.Lt{"date_end": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanAdDataRecord(rows *sql.Rows) (*domain.AdDataRecord, error) {
	record := &domain.AdDataRecord{}
	err := rows.Scan(
		&record.ID,
		&record.ConnectionID,
		&record.AdAccountID,
		&record.EntityID,
		&record.EntityName,
		&record.EntityLevel,
		&record.DateStart,
		&record.DateEnd,
		&record.Impressions,
		&record.Clicks,
		&record.Spend,
		&record.Reach,
		&record.Frequency,
		&record.CPC,
		&record.CPM,
		&record.CTR,
		&record.Conversions,
		&record.CostPerConversion,
		&record.RawData,
		&record.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
