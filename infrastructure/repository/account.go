package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const accountsTable = "accounts a"

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	SaveOrUpdate(account *domain.Account) error
	UpdateAccount(account *domain.UpdateAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.nickname, a.cnpj, a.secret_name, a.store_id, a.status, a.history_days, a.b2b_sellers").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := a.conn.QueryRow(query, args...)

	account := &domain.Account{}
	err = row.Scan(
		&account.ID,
		&account.Name,
		&account.Nickname,
		&account.CNPJ,
		&account.SecretName,
		&account.StoreID,
		&account.Status,
		&account.HistoryDays,
		pq.Array(&account.B2BSellers),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select("a.id, a.name, a.nickname, a.cnpj, a.secret_name, a.store_id, a.status, a.history_days, a.b2b_sellers").
		From(accountsTable).
		OrderBy("a.nickname ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		statuses := make([]string, 0, len(availableStatus))
		for _, status := range availableStatus {
			statuses = append(statuses, string(status))
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account := &domain.Account{}
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Nickname,
			&account.CNPJ,
			&account.SecretName,
			&account.StoreID,
			&account.Status,
			&account.HistoryDays,
			pq.Array(&account.B2BSellers),
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear contas: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) SaveOrUpdate(account *domain.Account) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "name", "nickname", "cnpj", "secret_name", "store_id", "status", "history_days", "b2b_sellers").
		Values(
			account.ID,
			account.Name,
			account.Nickname,
			account.CNPJ,
			account.SecretName,
			account.StoreID,
			account.Status,
			account.HistoryDays,
			pq.Array(account.B2BSellers),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				nickname = EXCLUDED.nickname,
				cnpj = EXCLUDED.cnpj,
				secret_name = EXCLUDED.secret_name,
				store_id = EXCLUDED.store_id,
				status = EXCLUDED.status,
				history_days = EXCLUDED.history_days,
				b2b_sellers = EXCLUDED.b2b_sellers,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAccountRequest) error {
	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}
	if account.CNPJ != nil {
		queryBuilder = queryBuilder.Set("cnpj", *account.CNPJ)
	}
	if account.SecretName != nil {
		queryBuilder = queryBuilder.Set("secret_name", *account.SecretName)
	}
	if account.StoreID != nil {
		queryBuilder = queryBuilder.Set("store_id", *account.StoreID)
	}
	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
