package dto

// PasswordResetRequest representa a requisição de reset de senha por telefone
type PasswordResetRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// PasswordResetResponse representa a resposta do reset de senha
type PasswordResetResponse struct {
	Pin          string `json:"pin"`
	Message      string `json:"message"`
	AccountCount int    `json:"accountCount"`
	SmsSent      bool   `json:"sms_sent"`
}
