package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Erros específicos do webhook de notificações
var (
	ErrWebhookNotConfigured = errors.New("webhook de notificações não configurado")
	ErrWebhookFailure       = errors.New("webhook de notificações retornou erro")
)

// Notifier define a interface para envio de alertas externos
type Notifier interface {
	Notify(ctx context.Context, title, markdown string) error
}

// WebhookNotifier envia alertas em Markdown via HTTP POST com bearer token
type WebhookNotifier struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewWebhookNotifier cria um novo notificador de webhook
func NewWebhookNotifier(url, token string) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// webhookPayload é o corpo enviado ao serviço externo
type webhookPayload struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// Notify envia um alerta formatado em Markdown
func (n *WebhookNotifier) Notify(ctx context.Context, title, markdown string) error {
	if n.url == "" {
		return ErrWebhookNotConfigured
	}

	payload, err := json.Marshal(webhookPayload{Title: title, Markdown: markdown})
	if err != nil {
		return fmt.Errorf("erro ao montar payload do webhook: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição do webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrWebhookFailure, resp.StatusCode)
	}

	return nil
}
