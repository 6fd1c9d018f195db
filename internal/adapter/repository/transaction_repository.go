package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrTransactionNotFound = errors.New("transação não encontrada")
)

// TransactionRepository implementa a interface transaction.Repository
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository cria uma nova instância de TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) transaction.Repository {
	return &TransactionRepository{
		db: db,
	}
}

const transactionColumns = `id, tenant_id, client_id, invoice_id, type, amount,
	date, notes, created_at`

// Create implementa transaction.Repository.Create
func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO transactions (
			id, tenant_id, client_id, invoice_id, type, amount, date, notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`,
		t.ID, t.TenantID, t.ClientID, nullString(t.InvoiceID), t.Type, t.Amount,
		t.Date, t.Notes, t.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar transação: %w", err)
	}

	return nil
}

// FindByID implementa transaction.Repository.FindByID
func (r *TransactionRepository) FindByID(ctx context.Context, tenantID, id string) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)

	return scanTransaction(row)
}

// List implementa transaction.Repository.List
func (r *TransactionRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE tenant_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

// ListByClient implementa transaction.Repository.ListByClient
func (r *TransactionRepository) ListByClient(ctx context.Context, tenantID, clientID string, limit, offset int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE tenant_id = $1 AND client_id = $2
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`,
		tenantID, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações do cliente: %w", err)
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

// ListByInvoice implementa transaction.Repository.ListByInvoice
func (r *TransactionRepository) ListByInvoice(ctx context.Context, tenantID, invoiceID string) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE tenant_id = $1 AND invoice_id = $2
		ORDER BY date ASC`,
		tenantID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações da fatura: %w", err)
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

// SumPaymentsByInvoice implementa transaction.Repository.SumPaymentsByInvoice
func (r *TransactionRepository) SumPaymentsByInvoice(ctx context.Context, tenantID, invoiceID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE tenant_id = $1 AND invoice_id = $2 AND type = 'payment'`,
		tenantID, invoiceID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos da fatura: %w", err)
	}

	return total, nil
}

// SumPaymentsByClient implementa transaction.Repository.SumPaymentsByClient
func (r *TransactionRepository) SumPaymentsByClient(ctx context.Context, tenantID, clientID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE tenant_id = $1 AND client_id = $2 AND type = 'payment'`,
		tenantID, clientID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos do cliente: %w", err)
	}

	return total, nil
}

// SumPaymentsByTenant implementa transaction.Repository.SumPaymentsByTenant
func (r *TransactionRepository) SumPaymentsByTenant(ctx context.Context, tenantID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE tenant_id = $1 AND type = 'payment'`,
		tenantID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos do tenant: %w", err)
	}

	return total, nil
}

// SumPaymentsByTenantSince implementa transaction.Repository.SumPaymentsByTenantSince
func (r *TransactionRepository) SumPaymentsByTenantSince(ctx context.Context, tenantID string, since int64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE tenant_id = $1 AND type = 'payment' AND date >= $2`,
		tenantID, time.Unix(since, 0)).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos do período: %w", err)
	}

	return total, nil
}

// scanTransaction lê uma transação de uma linha de resultado
func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var t transaction.Transaction
	var invoiceID *string

	err := row.Scan(
		&t.ID, &t.TenantID, &t.ClientID, &invoiceID, &t.Type, &t.Amount,
		&t.Date, &t.Notes, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("erro ao buscar transação: %w", err)
	}

	if invoiceID != nil {
		t.InvoiceID = *invoiceID
	}

	return &t, nil
}

// scanTransactionRows processa resultados de consultas que retornam múltiplas transações
func scanTransactionRows(rows pgx.Rows) ([]*transaction.Transaction, error) {
	transactions := make([]*transaction.Transaction, 0)

	for rows.Next() {
		var t transaction.Transaction
		var invoiceID *string

		err := rows.Scan(
			&t.ID, &t.TenantID, &t.ClientID, &invoiceID, &t.Type, &t.Amount,
			&t.Date, &t.Notes, &t.CreatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler transação: %w", err)
		}

		if invoiceID != nil {
			t.InvoiceID = *invoiceID
		}

		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return transactions, nil
}
