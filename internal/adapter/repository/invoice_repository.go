package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrInvoiceNotFound = errors.New("fatura não encontrada")
)

// InvoiceRepository implementa a interface invoice.Repository
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *pgxpool.Pool) invoice.Repository {
	return &InvoiceRepository{
		db: db,
	}
}

const invoiceColumns = `id, tenant_id, client_id, product_id, number, amount,
	status, due_date, notes, created_at, updated_at`

// Create implementa invoice.Repository.Create
func (r *InvoiceRepository) Create(ctx context.Context, i *invoice.Invoice) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invoices (
			id, tenant_id, client_id, product_id, number, amount,
			status, due_date, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		i.ID, i.TenantID, i.ClientID, nullString(i.ProductID), i.Number, i.Amount,
		i.Status, i.DueDate, i.Notes, i.CreatedAt, i.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar fatura: %w", err)
	}

	return nil
}

// FindByID implementa invoice.Repository.FindByID
func (r *InvoiceRepository) FindByID(ctx context.Context, tenantID, id string) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)

	return scanInvoice(row)
}

// List implementa invoice.Repository.List
func (r *InvoiceRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// ListByClient implementa invoice.Repository.ListByClient
func (r *InvoiceRepository) ListByClient(ctx context.Context, tenantID, clientID string) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		WHERE tenant_id = $1 AND client_id = $2
		ORDER BY created_at DESC`,
		tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas do cliente: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// ListByStatus implementa invoice.Repository.ListByStatus
func (r *InvoiceRepository) ListByStatus(ctx context.Context, tenantID string, status invoice.Status, limit, offset int) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas por status: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// Update implementa invoice.Repository.Update
func (r *InvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	result, err := r.db.Exec(ctx,
		`UPDATE invoices SET
			product_id = $1, amount = $2, status = $3, due_date = $4,
			notes = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`,
		nullString(i.ProductID), i.Amount, i.Status, i.DueDate, i.Notes,
		i.UpdatedAt, i.ID, i.TenantID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar fatura: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// UpdateStatus implementa invoice.Repository.UpdateStatus
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, tenantID, id string, status invoice.Status) error {
	result, err := r.db.Exec(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now(), tenantID, id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status da fatura: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// Delete implementa invoice.Repository.Delete
func (r *InvoiceRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM invoices WHERE tenant_id = $1 AND id = $2",
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fatura: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// CountByTenant implementa invoice.Repository.CountByTenant
func (r *InvoiceRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM invoices WHERE tenant_id = $1",
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar faturas: %w", err)
	}

	return count, nil
}

// CountByTenantSince implementa invoice.Repository.CountByTenantSince
func (r *InvoiceRepository) CountByTenantSince(ctx context.Context, tenantID string, since int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM invoices WHERE tenant_id = $1 AND created_at >= $2",
		tenantID, time.Unix(since, 0)).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar faturas do período: %w", err)
	}

	return count, nil
}

// SumAmountByClient implementa invoice.Repository.SumAmountByClient
func (r *InvoiceRepository) SumAmountByClient(ctx context.Context, tenantID, clientID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE tenant_id = $1 AND client_id = $2",
		tenantID, clientID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar faturas do cliente: %w", err)
	}

	return total, nil
}

// SumAmountByTenant implementa invoice.Repository.SumAmountByTenant
func (r *InvoiceRepository) SumAmountByTenant(ctx context.Context, tenantID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE tenant_id = $1",
		tenantID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar faturas do tenant: %w", err)
	}

	return total, nil
}

// CountByStatus implementa invoice.Repository.CountByStatus
func (r *InvoiceRepository) CountByStatus(ctx context.Context, tenantID string) (map[invoice.Status]int, error) {
	rows, err := r.db.Query(ctx,
		"SELECT status, COUNT(*) FROM invoices WHERE tenant_id = $1 GROUP BY status",
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar faturas por status: %w", err)
	}
	defer rows.Close()

	counts := make(map[invoice.Status]int)
	for rows.Next() {
		var status invoice.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("erro ao ler contagem: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return counts, nil
}

// scanInvoice lê uma fatura de uma linha de resultado
func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var i invoice.Invoice
	var productID *string

	err := row.Scan(
		&i.ID, &i.TenantID, &i.ClientID, &productID, &i.Number, &i.Amount,
		&i.Status, &i.DueDate, &i.Notes, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fatura: %w", err)
	}

	if productID != nil {
		i.ProductID = *productID
	}

	return &i, nil
}

// scanInvoiceRows processa resultados de consultas que retornam múltiplas faturas
func scanInvoiceRows(rows pgx.Rows) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)

	for rows.Next() {
		var i invoice.Invoice
		var productID *string

		err := rows.Scan(
			&i.ID, &i.TenantID, &i.ClientID, &productID, &i.Number, &i.Amount,
			&i.Status, &i.DueDate, &i.Notes, &i.CreatedAt, &i.UpdatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler fatura: %w", err)
		}

		if productID != nil {
			i.ProductID = *productID
		}

		invoices = append(invoices, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return invoices, nil
}

// nullString converte string vazia em NULL para colunas opcionais
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
