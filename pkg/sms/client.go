package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Erros específicos do envio de SMS
var (
	ErrGatewayNotConfigured = errors.New("gateway de SMS não configurado")
	ErrGatewayFailure       = errors.New("gateway de SMS retornou erro")
)

// Sender define a interface para envio de SMS
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// Client envia SMS através do gateway HTTP com autenticação por API key
type Client struct {
	gatewayURL string
	apiKey     string
	sender     string
	httpClient *http.Client
}

// NewClient cria um novo cliente do gateway de SMS
func NewClient(gatewayURL, apiKey, sender string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		sender:     sender,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// smsRequest é o payload enviado ao gateway
type smsRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// Send envia um SMS para o número informado
func (c *Client) Send(ctx context.Context, phoneNumber, message string) error {
	if c.gatewayURL == "" || c.apiKey == "" {
		return ErrGatewayNotConfigured
	}

	payload, err := json.Marshal(smsRequest{
		To:      phoneNumber,
		From:    c.sender,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("erro ao montar payload do SMS: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição para o gateway: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar gateway de SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrGatewayFailure, resp.StatusCode)
	}

	return nil
}
