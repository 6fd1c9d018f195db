package ledger

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
)

// StatusFor deriva o status de uma fatura a partir do total pago.
// Regra: paid se total pago >= valor; partial se 0 < total pago < valor;
// overdue somente para fatura vencida sem nenhum pagamento; senão pending.
func StatusFor(amount, totalPaid float64, dueDate *time.Time, now time.Time) invoice.Status {
	if totalPaid >= amount {
		return invoice.StatusPaid
	}

	if totalPaid > 0 {
		return invoice.StatusPartial
	}

	if dueDate != nil && now.After(*dueDate) {
		return invoice.StatusOverdue
	}

	return invoice.StatusPending
}

// Outstanding calcula o saldo devedor efetivo: total faturado menos total pago.
// Todas as telas (dashboard, lista de clientes, extrato) devem usar esta função.
func Outstanding(invoiceTotal, paymentTotal float64) float64 {
	return invoiceTotal - paymentTotal
}

// OutstandingFor calcula o saldo devedor a partir das faturas e lançamentos
// de um cliente. Somente transações do tipo payment reduzem o saldo.
func OutstandingFor(invoices []*invoice.Invoice, transactions []*transaction.Transaction) float64 {
	var invoiceTotal, paymentTotal float64

	for _, i := range invoices {
		invoiceTotal += i.Amount
	}

	for _, t := range transactions {
		if t.IsPayment() {
			paymentTotal += t.Amount
		}
	}

	return Outstanding(invoiceTotal, paymentTotal)
}

// RemainingOnInvoice calcula o saldo restante de uma fatura, nunca negativo
// (crédito excedente conta para o saldo do cliente, não da fatura)
func RemainingOnInvoice(amount, totalPaid float64) float64 {
	remaining := amount - totalPaid
	if remaining < 0 {
		return 0
	}
	return remaining
}
