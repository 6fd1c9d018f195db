package ledger

import (
	"testing"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
)

func TestStatusFor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name      string
		amount    float64
		totalPaid float64
		dueDate   *time.Time
		want      invoice.Status
	}{
		{"sem pagamento", 1000, 0, nil, invoice.StatusPending},
		{"pagamento parcial", 1000, 400, nil, invoice.StatusPartial},
		{"quitada exata", 1000, 1000, nil, invoice.StatusPaid},
		{"pagamento excedente", 1000, 1200, nil, invoice.StatusPaid},
		{"vencida sem pagamento", 1000, 0, &past, invoice.StatusOverdue},
		{"vencida com pagamento parcial", 1000, 400, &past, invoice.StatusPartial},
		{"vencida mas quitada", 1000, 1000, &past, invoice.StatusPaid},
		{"vencimento futuro parcial", 1000, 400, &future, invoice.StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusFor(tt.amount, tt.totalPaid, tt.dueDate, now)
			if got != tt.want {
				t.Errorf("StatusFor(%v, %v) = %v, esperado %v", tt.amount, tt.totalPaid, got, tt.want)
			}
		})
	}
}

func TestOutstanding(t *testing.T) {
	if got := Outstanding(1000, 400); got != 600 {
		t.Errorf("Outstanding(1000, 400) = %v, esperado 600", got)
	}

	if got := Outstanding(1000, 1200); got != -200 {
		t.Errorf("Outstanding(1000, 1200) = %v, esperado -200 (crédito)", got)
	}

	if got := Outstanding(0, 0); got != 0 {
		t.Errorf("Outstanding(0, 0) = %v, esperado 0", got)
	}
}

func TestRemainingOnInvoice(t *testing.T) {
	if got := RemainingOnInvoice(1000, 400); got != 600 {
		t.Errorf("RemainingOnInvoice(1000, 400) = %v, esperado 600", got)
	}

	// Crédito excedente não gera saldo negativo na fatura
	if got := RemainingOnInvoice(1000, 1500); got != 0 {
		t.Errorf("RemainingOnInvoice(1000, 1500) = %v, esperado 0", got)
	}
}

// TestPaymentReconciliationSequence verifica a sequência completa de
// reconciliação: fatura de 1000, pagamento de 400, depois de 600.
func TestPaymentReconciliationSequence(t *testing.T) {
	now := time.Now()
	amount := 1000.0

	// Pagamento de 400
	totalPaid := 400.0
	if got := StatusFor(amount, totalPaid, nil, now); got != invoice.StatusPartial {
		t.Errorf("status após pagamento de 400 = %v, esperado partial", got)
	}
	if got := RemainingOnInvoice(amount, totalPaid); got != 600 {
		t.Errorf("restante após pagamento de 400 = %v, esperado 600", got)
	}

	// O vencimento no passado não esconde o pagamento parcial
	past := now.Add(-24 * time.Hour)
	if got := StatusFor(amount, totalPaid, &past, now); got != invoice.StatusPartial {
		t.Errorf("status parcial de fatura vencida = %v, esperado partial", got)
	}

	// Pagamento de 600
	totalPaid += 600
	if got := StatusFor(amount, totalPaid, nil, now); got != invoice.StatusPaid {
		t.Errorf("status após quitação = %v, esperado paid", got)
	}
	if got := RemainingOnInvoice(amount, totalPaid); got != 0 {
		t.Errorf("restante após quitação = %v, esperado 0", got)
	}
}

func TestOutstandingFor(t *testing.T) {
	i1, err := invoice.NewInvoice("t1", "c1", "", 1000, nil, "")
	if err != nil {
		t.Fatalf("erro ao criar fatura: %v", err)
	}
	i2, err := invoice.NewInvoice("t1", "c1", "", 500, nil, "")
	if err != nil {
		t.Fatalf("erro ao criar fatura: %v", err)
	}

	sale, err := transaction.NewTransaction("t1", "c1", i1.ID, transaction.TypeSale, 1000, time.Now(), "")
	if err != nil {
		t.Fatalf("erro ao criar transação: %v", err)
	}
	payment, err := transaction.NewTransaction("t1", "c1", i1.ID, transaction.TypePayment, 400, time.Now(), "")
	if err != nil {
		t.Fatalf("erro ao criar transação: %v", err)
	}

	// Somente pagamentos reduzem o saldo; vendas não contam duas vezes
	got := OutstandingFor(
		[]*invoice.Invoice{i1, i2},
		[]*transaction.Transaction{sale, payment},
	)
	if got != 1100 {
		t.Errorf("OutstandingFor = %v, esperado 1100", got)
	}
}
