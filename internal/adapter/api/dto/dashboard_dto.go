package dto

import (
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
)

// DashboardResponse agrega os números do painel de um tenant
type DashboardResponse struct {
	TotalClients       int                    `json:"total_clients"`
	TotalInvoices      int                    `json:"total_invoices"`
	InvoicesByStatus   map[invoice.Status]int `json:"invoices_by_status"`
	PaymentsThisMonth  float64                `json:"payments_this_month"`
	OutstandingBalance float64                `json:"outstanding_balance"`
}
