package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/notification"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	"github.com/hugohenrick/credit-manager/pkg/config"
	"github.com/hugohenrick/credit-manager/pkg/logger"
)

// setupLedgerRouter monta um router de teste com o contexto autenticado
// que o middleware preencheria em produção
func setupLedgerRouter(c *LedgerController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("tenant_id", "tenant-1")
		ctx.Set("user_id", "user-1")
	})
	router.POST("/sales", c.RecordSale)
	router.POST("/invoices/:id/payments", c.RecordPayment)
	return router
}

func openClient() *client.Client {
	cl, _ := client.NewClient("tenant-1", "Maria", "0912345678")
	return cl
}

func activeTenant() *tenant.Tenant {
	t, _ := tenant.NewTenant("Mercearia", "12345678900", "", "")
	t.Activate()
	return t
}

func newPaymentResult(amount, totalPaid float64) *ledger.PaymentResult {
	inv, _ := invoice.NewInvoice("tenant-1", "client-1", "", 1000, nil, "")
	inv.Status = ledger.StatusFor(inv.Amount, totalPaid, nil, time.Now())
	tx, _ := transaction.NewTransaction("tenant-1", "client-1", inv.ID, transaction.TypePayment, amount, time.Now(), "")

	return &ledger.PaymentResult{
		Transaction: tx,
		Invoice:     inv,
		TotalPaid:   totalPaid,
		Remaining:   ledger.RemainingOnInvoice(inv.Amount, totalPaid),
		NewBalance:  inv.Amount - totalPaid,
	}
}

func TestRecordPayment(t *testing.T) {
	ledgerRepo := &mockLedgerRepository{
		RecordPaymentFunc: func(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error) {
			if in.TenantID != "tenant-1" {
				t.Errorf("tenant do pagamento = %q, esperado tenant-1", in.TenantID)
			}
			if in.Amount != 400 {
				t.Errorf("valor do pagamento = %v, esperado 400", in.Amount)
			}
			return newPaymentResult(400, 400), nil
		},
	}
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			return openClient(), nil
		},
	}

	ctrl := NewLedgerController(ledgerRepo, clientRepo, &mockInvoiceRepository{}, &mockTenantRepository{},
		&mockNotificationRepository{}, &mockSmsSender{}, &config.Config{}, logger.NewNopLogger())
	router := setupLedgerRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{"amount": 400})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/invoices/inv-1/payments", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", w.Code, w.Body.String())
	}

	var response struct {
		TotalPaid  float64 `json:"total_paid"`
		Remaining  float64 `json:"remaining"`
		NewBalance float64 `json:"new_balance"`
		Invoice    struct {
			Status string `json:"status"`
		} `json:"invoice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}

	if response.TotalPaid != 400 {
		t.Errorf("total_paid = %v, esperado 400", response.TotalPaid)
	}
	if response.Remaining != 600 {
		t.Errorf("remaining = %v, esperado 600", response.Remaining)
	}
	if response.Invoice.Status != "partial" {
		t.Errorf("status da fatura = %q, esperado partial", response.Invoice.Status)
	}
}

func TestRecordPaymentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"fatura inexistente", repository.ErrInvoiceNotFound, http.StatusNotFound},
		{"fatura quitada", ledger.ErrInvoiceAlreadyPaid, http.StatusUnprocessableEntity},
		{"pagamento excedente", ledger.ErrOverpayment, http.StatusUnprocessableEntity},
		{"erro interno", errors.New("falha no banco"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgerRepo := &mockLedgerRepository{
				RecordPaymentFunc: func(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error) {
					return nil, tt.err
				},
			}
			ctrl := NewLedgerController(ledgerRepo, &mockClientRepository{}, &mockInvoiceRepository{},
				&mockTenantRepository{}, &mockNotificationRepository{}, &mockSmsSender{},
				&config.Config{}, logger.NewNopLogger())
			router := setupLedgerRouter(ctrl)

			body, _ := json.Marshal(map[string]interface{}{"amount": 400})
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/invoices/inv-1/payments", bytes.NewReader(body))
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, esperado %d", w.Code, tt.wantStatus)
			}
		})
	}
}

// O pagamento já persistido nunca é desfeito por falha de efeito colateral:
// SMS indisponível e cliente não encontrado ainda retornam 201.
func TestRecordPaymentSideEffectFailureTolerated(t *testing.T) {
	ledgerRepo := &mockLedgerRepository{
		RecordPaymentFunc: func(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error) {
			return newPaymentResult(400, 400), nil
		},
	}
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			return openClient(), nil
		},
	}
	smsSender := &mockSmsSender{
		SendFunc: func(ctx context.Context, phoneNumber, message string) error {
			return errors.New("gateway de SMS indisponível")
		},
	}
	notifRepo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			return errors.New("falha ao gravar notificação")
		},
	}

	ctrl := NewLedgerController(ledgerRepo, clientRepo, &mockInvoiceRepository{}, &mockTenantRepository{},
		notifRepo, smsSender, &config.Config{}, logger.NewNopLogger())
	router := setupLedgerRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{"amount": 400})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/invoices/inv-1/payments", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, esperado 201 mesmo com efeitos colaterais falhando", w.Code)
	}
}

func TestRecordPaymentRejectPolicy(t *testing.T) {
	var captured ledger.PaymentInput
	ledgerRepo := &mockLedgerRepository{
		RecordPaymentFunc: func(ctx context.Context, in ledger.PaymentInput) (*ledger.PaymentResult, error) {
			captured = in
			return newPaymentResult(400, 400), nil
		},
	}
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			return openClient(), nil
		},
	}

	cfg := &config.Config{Overpayment: config.OverpaymentReject}
	ctrl := NewLedgerController(ledgerRepo, clientRepo, &mockInvoiceRepository{}, &mockTenantRepository{},
		&mockNotificationRepository{}, &mockSmsSender{}, cfg, logger.NewNopLogger())
	router := setupLedgerRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{"amount": 400})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/invoices/inv-1/payments", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if !captured.RejectOverpayment {
		t.Error("política reject deveria ser propagada para o ledger")
	}
}

func TestRecordSale(t *testing.T) {
	ledgerRepo := &mockLedgerRepository{
		RecordSaleFunc: func(ctx context.Context, in ledger.SaleInput) (*ledger.SaleResult, error) {
			inv, _ := invoice.NewInvoice(in.TenantID, in.ClientID, in.ProductID, in.Amount, in.DueDate, in.Notes)
			tx, _ := transaction.NewTransaction(in.TenantID, in.ClientID, inv.ID, transaction.TypeSale, in.Amount, time.Now(), in.Notes)
			return &ledger.SaleResult{Invoice: inv, Transaction: tx}, nil
		},
	}
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			return openClient(), nil
		},
	}
	tenantRepo := &mockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*tenant.Tenant, error) {
			return activeTenant(), nil
		},
	}

	ctrl := NewLedgerController(ledgerRepo, clientRepo, &mockInvoiceRepository{}, tenantRepo,
		&mockNotificationRepository{}, &mockSmsSender{}, &config.Config{}, logger.NewNopLogger())
	router := setupLedgerRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{"client_id": "client-1", "amount": 250.0})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", w.Code, w.Body.String())
	}
}

func TestRecordSaleClosedAccount(t *testing.T) {
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			cl := openClient()
			cl.Close()
			return cl, nil
		},
	}

	ctrl := NewLedgerController(&mockLedgerRepository{}, clientRepo, &mockInvoiceRepository{},
		&mockTenantRepository{}, &mockNotificationRepository{}, &mockSmsSender{},
		&config.Config{}, logger.NewNopLogger())
	router := setupLedgerRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{"client_id": "client-1", "amount": 250.0})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, esperado 422 para conta encerrada", w.Code)
	}
}

func TestRecordSalePlanLimitReached(t *testing.T) {
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			return openClient(), nil
		},
	}
	tenantRepo := &mockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*tenant.Tenant, error) {
			return activeTenant(), nil
		},
	}
	invoiceRepo := &mockInvoiceRepository{
		CountByTenantSinceFunc: func(ctx context.Context, tenantID string, since int64) (int, error) {
			return tenant.DefaultLimits(tenant.PlanFree).MaxInvoicesPerMonth, nil
		},
	}

	ctrl := NewLedgerController(&mockLedgerRepository{}, clientRepo, invoiceRepo, tenantRepo,
		&mockNotificationRepository{}, &mockSmsSender{}, &config.Config{}, logger.NewNopLogger())
	router := setupLedgerRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{"client_id": "client-1", "amount": 250.0})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403 para limite mensal atingido", w.Code)
	}
}
