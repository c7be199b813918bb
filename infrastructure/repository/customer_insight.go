package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const customerInsightsTable = "customer_insights ci"

// CustomerInsightRepository guarda snapshots diários dos insights de
// clientes calculados por conta, para evitar reprocessar as APIs das
// origens a cada consulta do painel.
type CustomerInsightRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.CustomerInsightEntry, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.CustomerInsightEntry, error)
	SaveOrUpdate(entry *domain.CustomerInsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type customerInsightRepository struct {
	conn *postgres.Connection
}

func NewCustomerInsightRepository(conn *postgres.Connection) CustomerInsightRepository {
	return &customerInsightRepository{
		conn: conn,
	}
}

func (r *customerInsightRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.CustomerInsightEntry, error) {
	query, args, err := squirrel.
		Select("ci.id, ci.account_id, ci.date, ci.insights, ci.created_at, ci.updated_at").
		From(customerInsightsTable).
		Where(squirrel.Eq{"ci.account_id": accountID, "ci.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry, err := scanInsightEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return entry, nil
}

func (r *customerInsightRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.CustomerInsightEntry, error) {
	query, args, err := squirrel.
		Select("ci.id, ci.account_id, ci.date, ci.insights, ci.created_at, ci.updated_at").
		From(customerInsightsTable).
		Where(squirrel.Eq{"ci.account_id": accountID}).
		Where(squirrel.GtOrEq{"ci.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ci.date": endDate.Format(time.DateOnly)}).
		OrderBy("ci.date ASC").
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

	entries := make([]*domain.CustomerInsightEntry, 0)
	for rows.Next() {
		entry, err := scanInsightEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insights: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *customerInsightRepository) SaveOrUpdate(entry *domain.CustomerInsightEntry) error {
	var insightsJSON []byte
	var err error

	if entry.Insights != nil {
		insightsJSON, err = json.Marshal(entry.Insights)
		if err != nil {
			return fmt.Errorf("erro ao serializar insights para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("customer_insights").
		Columns("account_id", "date", "insights").
		Values(
			entry.AccountID,
			entry.Date.Format(time.DateOnly),
			insightsJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				insights = EXCLUDED.insights,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *customerInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("customer_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
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

// scanInsightEntry funciona tanto para *sql.Row quanto para *sql.Rows.
func scanInsightEntry(scan func(dest ...any) error) (*domain.CustomerInsightEntry, error) {
	entry := &domain.CustomerInsightEntry{}
	var insightsJSON []byte

	err := scan(
		&entry.ID,
		&entry.AccountID,
		&entry.Date,
		&insightsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if insightsJSON != nil {
		insights := &domain.CustomerInsights{}
		if err := json.Unmarshal(insightsJSON, insights); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de insights: %w", err)
		}
		entry.Insights = insights
	}

	return entry, nil
}
