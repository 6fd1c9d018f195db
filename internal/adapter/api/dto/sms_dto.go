package dto

// TransactionSmsRequest representa a requisição de envio de SMS de transação
type TransactionSmsRequest struct {
	ClientID      string  `json:"clientId" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	InvoiceNumber string  `json:"invoiceNumber"`
	ProductName   string  `json:"productName"`
	NewBalance    float64 `json:"newBalance"`
}

// TransactionSmsResponse representa a resposta do envio de SMS de transação
type TransactionSmsResponse struct {
	Success bool   `json:"success"`
	SmsSent bool   `json:"sms_sent"`
	Reason  string `json:"reason,omitempty"`
}
