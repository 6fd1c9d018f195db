package config

import (
	"os"
)

// OverpaymentPolicy define como tratar pagamentos acima do saldo da fatura
type OverpaymentPolicy string

const (
	// OverpaymentAllow registra o pagamento e deixa o crédito a favor do cliente
	OverpaymentAllow OverpaymentPolicy = "allow"

	// OverpaymentReject recusa o pagamento antes de qualquer escrita
	OverpaymentReject OverpaymentPolicy = "reject"
)

// Config concentra as configurações de ambiente da aplicação
type Config struct {
	ServerPort string

	// Política para pagamentos que excedem o saldo restante da fatura
	Overpayment OverpaymentPolicy

	// Gateway de SMS
	SmsGatewayURL string
	SmsAPIKey     string
	SmsSender     string

	// Webhook de notificações externas
	WebhookURL   string
	WebhookToken string
}

// Load monta a configuração a partir das variáveis de ambiente
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Overpayment:   overpaymentFromEnv(),
		SmsGatewayURL: getEnv("SMS_GATEWAY_URL", ""),
		SmsAPIKey:     getEnv("SMS_API_KEY", ""),
		SmsSender:     getEnv("SMS_SENDER", "CREDITO"),
		WebhookURL:    getEnv("NOTIFY_WEBHOOK_URL", ""),
		WebhookToken:  getEnv("NOTIFY_WEBHOOK_TOKEN", ""),
	}
}

// overpaymentFromEnv lê a política de pagamento excedente (padrão: allow)
func overpaymentFromEnv() OverpaymentPolicy {
	switch os.Getenv("PAYMENT_OVERPAYMENT_POLICY") {
	case "reject":
		return OverpaymentReject
	default:
		return OverpaymentAllow
	}
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
