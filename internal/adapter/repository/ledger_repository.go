package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/product"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	"github.com/hugohenrick/credit-manager/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository implementa a interface ledger.Repository. Todas as
// escritas de cada operação acontecem dentro de uma única transação de
// banco: ou todas persistem, ou nenhuma.
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository cria uma nova instância de LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &LedgerRepository{
		db: db,
	}
}

// RecordSale implementa ledger.Repository.RecordSale
func (r *LedgerRepository) RecordSale(ctx context.Context, in ledger.SaleInput) (*ledger.SaleResult, error) {
	result := &ledger.SaleResult{}

	productID := in.ProductID

	// Validar os dados antes de abrir a transação
	if in.NewProduct != nil {
		productID = in.NewProduct.ID
		result.Product = in.NewProduct
	}

	inv, err := invoice.NewInvoice(in.TenantID, in.ClientID, productID, in.Amount, in.DueDate, in.Notes)
	if err != nil {
		return nil, err
	}

	sale, err := transaction.NewTransaction(in.TenantID, in.ClientID, inv.ID,
		transaction.TypeSale, in.Amount, in.Date, in.Notes)
	if err != nil {
		return nil, err
	}

	err = database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		// O produto criado inline precisa existir antes da fatura referenciá-lo
		if in.NewProduct != nil {
			if err := insertProduct(ctx, tx, in.NewProduct); err != nil {
				return err
			}
		}

		if err := insertInvoice(ctx, tx, inv); err != nil {
			return err
		}

		if err := insertTransaction(ctx, tx, sale); err != nil {
			return err
		}

		// Incrementar o saldo em cache do cliente
		return bumpClientBalance(ctx, tx, in.TenantID, in.ClientID, in.Amount)
	})
	if err != nil {
		return nil, err
	}

	result.Invoice = inv
	result.Transaction = sale
	return result, nil
}

// RecordPayment implementa ledger.Repository.RecordPayment
func (r *LedgerRepository) RecordPayment(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error) {
	var result *ledger.PaymentResult

	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		// Carregar a fatura com lock para serializar pagamentos concorrentes
		inv, err := lockInvoice(ctx, tx, in.TenantID, in.InvoiceID)
		if err != nil {
			return err
		}

		if in.RejectOverpayment && inv.IsPaid() {
			return ledger.ErrInvoiceAlreadyPaid
		}

		paidBefore, err := sumPayments(ctx, tx, in.TenantID, in.InvoiceID)
		if err != nil {
			return err
		}

		if in.RejectOverpayment && paidBefore+in.Amount > inv.Amount {
			return ledger.ErrOverpayment
		}

		payment, err := transaction.NewTransaction(in.TenantID, inv.ClientID, inv.ID,
			transaction.TypePayment, in.Amount, in.Date, in.Notes)
		if err != nil {
			return err
		}

		if err := insertTransaction(ctx, tx, payment); err != nil {
			return err
		}

		// Recalcular o total pago já com o novo pagamento incluído
		totalPaid, err := sumPayments(ctx, tx, in.TenantID, in.InvoiceID)
		if err != nil {
			return err
		}

		newStatus := ledger.StatusFor(inv.Amount, totalPaid, inv.DueDate, time.Now())
		if newStatus != inv.Status {
			if err := updateInvoiceStatus(ctx, tx, in.TenantID, inv.ID, newStatus); err != nil {
				return err
			}
			inv.Status = newStatus
		}

		// Reduzir o saldo em cache do cliente
		if err := bumpClientBalance(ctx, tx, in.TenantID, inv.ClientID, -in.Amount); err != nil {
			return err
		}

		newBalance, err := clientBalance(ctx, tx, in.TenantID, inv.ClientID)
		if err != nil {
			return err
		}

		result = &ledger.PaymentResult{
			Transaction: payment,
			Invoice:     inv,
			TotalPaid:   totalPaid,
			Remaining:   ledger.RemainingOnInvoice(inv.Amount, totalPaid),
			NewBalance:  newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockInvoice carrega a fatura com SELECT FOR UPDATE dentro da transação
func lockInvoice(ctx context.Context, tx pgx.Tx, tenantID, invoiceID string) (*invoice.Invoice, error) {
	var i invoice.Invoice
	var productID *string

	err := tx.QueryRow(ctx,
		`SELECT id, tenant_id, client_id, product_id, number, amount,
			status, due_date, notes, created_at, updated_at
		FROM invoices
		WHERE tenant_id = $1 AND id = $2
		FOR UPDATE`,
		tenantID, invoiceID).Scan(
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

// sumPayments soma os pagamentos de uma fatura dentro da transação
func sumPayments(ctx context.Context, tx pgx.Tx, tenantID, invoiceID string) (float64, error) {
	var total float64
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE tenant_id = $1 AND invoice_id = $2 AND type = 'payment'`,
		tenantID, invoiceID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos da fatura: %w", err)
	}

	return total, nil
}

// insertProduct insere um produto dentro da transação
func insertProduct(ctx context.Context, tx pgx.Tx, p *product.Product) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO products (
			id, tenant_id, name, description, price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.TenantID, p.Name, p.Description, p.Price, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// insertInvoice insere uma fatura dentro da transação
func insertInvoice(ctx context.Context, tx pgx.Tx, i *invoice.Invoice) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO invoices (
			id, tenant_id, client_id, product_id, number, amount,
			status, due_date, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		i.ID, i.TenantID, i.ClientID, nullString(i.ProductID), i.Number, i.Amount,
		i.Status, i.DueDate, i.Notes, i.CreatedAt, i.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar fatura: %w", err)
	}

	return nil
}

// insertTransaction insere um lançamento dentro da transação
func insertTransaction(ctx context.Context, tx pgx.Tx, t *transaction.Transaction) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO transactions (
			id, tenant_id, client_id, invoice_id, type, amount, date, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.TenantID, t.ClientID, nullString(t.InvoiceID), t.Type, t.Amount,
		t.Date, t.Notes, t.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar transação: %w", err)
	}

	return nil
}

// updateInvoiceStatus atualiza o status da fatura dentro da transação
func updateInvoiceStatus(ctx context.Context, tx pgx.Tx, tenantID, invoiceID string, status invoice.Status) error {
	_, err := tx.Exec(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now(), tenantID, invoiceID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status da fatura: %w", err)
	}

	return nil
}

// bumpClientBalance ajusta o saldo em cache do cliente dentro da transação
func bumpClientBalance(ctx context.Context, tx pgx.Tx, tenantID, clientID string, delta float64) error {
	result, err := tx.Exec(ctx,
		`UPDATE clients SET total_balance = total_balance + $1, updated_at = $2
		WHERE tenant_id = $3 AND id = $4`,
		delta, time.Now(), tenantID, clientID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar saldo do cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// clientBalance lê o saldo em cache do cliente dentro da transação
func clientBalance(ctx context.Context, tx pgx.Tx, tenantID, clientID string) (float64, error) {
	var balance float64
	err := tx.QueryRow(ctx,
		"SELECT total_balance FROM clients WHERE tenant_id = $1 AND id = $2",
		tenantID, clientID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrClientNotFound
		}
		return 0, fmt.Errorf("erro ao buscar saldo do cliente: %w", err)
	}

	return balance, nil
}
