package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/database/postgres"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

const (
	connectionsTable = "connections c"
)

type ConnectionRepository interface {
	GetByID(connectionID string) (*domain.Connection, error)
	ListByTenant(tenantID string) ([]*domain.Connection, error)
	GetActiveByTenantAndProvider(tenantID string, provider domain.Provider) (*domain.Connection, error)
	FindActiveByProvider(provider domain.Provider) (*domain.Connection, error)
	// SaveNewActive desabilita a Connection ativa anterior do par
	// (tenant, provider) e insere a nova, na mesma transação.
	SaveNewActive(ctx context.Context, connection *domain.Connection) error
	Disable(connectionID string) error
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

const connectionColumns = "c.id, c.tenant_id, c.provider, c.provider_account_id, c.provider_account_name, c.access_token, c.status, c.created_at, c.updated_at"

func (r *connectionRepository) GetByID(connectionID string) (*domain.Connection, error) {
	return r.getConnection(squirrel.Eq{"c.id": connectionID})
}

func (r *connectionRepository) GetActiveByTenantAndProvider(tenantID string, provider domain.Provider) (*domain.Connection, error) {
	return r.getConnection(squirrel.Eq{
		"c.tenant_id": tenantID,
		"c.provider":  string(provider),
		"c.status":    string(domain.ConnectionStatusActive),
	})
}

func (r *connectionRepository) FindActiveByProvider(provider domain.Provider) (*domain.Connection, error) {
	return r.getConnection(squirrel.Eq{
		"c.provider": string(provider),
		"c.status":   string(domain.ConnectionStatusActive),
	})
}

func (r *connectionRepository) getConnection(whereClause map[string]interface{}) (*domain.Connection, error) {
	query, args, err := squirrel.
		Select(connectionColumns).
		From(connectionsTable).
		Where(whereClause).
		OrderBy("c.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	connection, err := scanConnection(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear connection: %w", err)
	}

	return connection, nil
}

func (r *connectionRepository) ListByTenant(tenantID string) ([]*domain.Connection, error) {
	query, args, err := squirrel.
		Select(connectionColumns).
		From(connectionsTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		OrderBy("c.created_at ASC").
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

	connections := make([]*domain.Connection, 0)
	for rows.Next() {
		connection := &domain.Connection{}
		err := rows.Scan(
			&connection.ID,
			&connection.TenantID,
			&connection.Provider,
			&connection.ProviderAccountID,
			&connection.ProviderAccountName,
			&connection.AccessToken,
			&connection.Status,
			&connection.CreatedAt,
			&connection.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear connections: %w", err)
		}
		connections = append(connections, connection)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

func (r *connectionRepository) SaveNewActive(ctx context.Context, connection *domain.Connection) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Desabilita a Connection ativa anterior do mesmo par (tenant, provider)
		disableQuery, disableArgs, err := squirrel.
			Update("connections").
			Set("status", string(domain.ConnectionStatusDisabled)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{
				"tenant_id": connection.TenantID,
				"provider":  string(connection.Provider),
				"status":    string(domain.ConnectionStatusActive),
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, disableQuery, disableArgs...); err != nil {
			return fmt.Errorf("erro ao desabilitar connection anterior: %w", err)
		}

		insertQuery, insertArgs, err := squirrel.
			Insert("connections").
			Columns("id", "tenant_id", "provider", "provider_account_id", "provider_account_name", "access_token", "status").
			Values(
				connection.ID,
				connection.TenantID,
				string(connection.Provider),
				connection.ProviderAccountID,
				connection.ProviderAccountName,
				connection.AccessToken,
				string(connection.Status),
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir connection: %w", err)
		}

		return nil
	})
}

func (r *connectionRepository) Disable(connectionID string) error {
	query, args, err := squirrel.
		Update("connections").
		Set("status", string(domain.ConnectionStatusDisabled)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanConnection(row *sql.Row) (*domain.Connection, error) {
	connection := &domain.Connection{}
	err := row.Scan(
		&connection.ID,
		&connection.TenantID,
		&connection.Provider,
		&connection.ProviderAccountID,
		&connection.ProviderAccountName,
		&connection.AccessToken,
		&connection.Status,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return connection, nil
}
