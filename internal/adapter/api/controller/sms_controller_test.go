package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/pkg/logger"
)

func setupSmsRouter(c *SmsController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("tenant_id", "tenant-1")
	})
	router.POST("/functions/send-transaction-sms", c.SendTransactionSms)
	return router
}

func TestSendTransactionSms(t *testing.T) {
	clientRepo := &mockClientRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, id string) (*client.Client, error) {
			if tenantID != "tenant-1" {
				t.Errorf("busca fora do tenant do chamador: %q", tenantID)
			}
			return openClient(), nil
		},
	}
	smsSender := &mockSmsSender{}

	ctrl := NewSmsController(clientRepo, smsSender, logger.NewNopLogger())
	router := setupSmsRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{
		"clientId": "client-1",
		"type":     "payment",
		"amount":   400.0,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-transaction-sms", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}

	var response dto.TransactionSmsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	if !response.Success || !response.SmsSent {
		t.Errorf("resposta = %+v, esperado success e sms_sent", response)
	}
	if smsSender.sentCount() != 1 {
		t.Errorf("SMS enviados = %d, esperado 1", smsSender.sentCount())
	}
}

// Cliente de outro tenant aparece como não encontrado e a chamada é negada.
func TestSendTransactionSmsCrossTenantForbidden(t *testing.T) {
	ctrl := NewSmsController(&mockClientRepository{}, &mockSmsSender{}, logger.NewNopLogger())
	router := setupSmsRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{
		"clientId": "client-de-outro-tenant",
		"type":     "sale",
		"amount":   100.0,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-transaction-sms", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403", w.Code)
	}
}

func TestSendTransactionSmsInvalidType(t *testing.T) {
	ctrl := NewSmsController(&mockClientRepository{}, &mockSmsSender{}, logger.NewNopLogger())
	router := setupSmsRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{
		"clientId": "client-1",
		"type":     "refund",
		"amount":   100.0,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-transaction-sms", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para tipo inválido", w.Code)
	}
}

// Gateway indisponível não falha a chamada: a resposta reporta sms_sent=false.
func TestSendTransactionSmsGatewayDown(t *testing.T) {
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

	ctrl := NewSmsController(clientRepo, smsSender, logger.NewNopLogger())
	router := setupSmsRouter(ctrl)

	body, _ := json.Marshal(map[string]interface{}{
		"clientId": "client-1",
		"type":     "sale",
		"amount":   100.0,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-transaction-sms", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}

	var response dto.TransactionSmsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	if !response.Success {
		t.Error("success deveria ser true mesmo com gateway indisponível")
	}
	if response.SmsSent {
		t.Error("sms_sent deveria ser false com gateway indisponível")
	}
	if response.Reason == "" {
		t.Error("reason deveria descrever a falha")
	}
}
