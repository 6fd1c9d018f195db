package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas HTTP e de negócio expostas em /metrics
var (
	// Métricas de requisições HTTP
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_manager_http_requests_total",
			Help: "Total de requisições HTTP processadas",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credit_manager_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Métricas do ledger
	SalesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_manager_sales_recorded_total",
			Help: "Total de vendas registradas (fatura + transação de venda)",
		},
	)

	PaymentsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_manager_payments_recorded_total",
			Help: "Total de pagamentos registrados no ledger",
		},
	)

	// Métricas de envio de SMS (best-effort)
	SmsSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_manager_sms_sent_total",
			Help: "Total de SMS enviados com sucesso",
		},
	)

	SmsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_manager_sms_failed_total",
			Help: "Total de falhas no envio de SMS",
		},
	)
)
