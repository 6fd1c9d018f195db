package dto

// ClientUserRequest representa a requisição de provisionamento de acesso
// ao portal para um cliente
type ClientUserRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	TenantID    string `json:"tenant_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=4"`
}

// ClientUserResponse representa a resposta de provisionamento
type ClientUserResponse struct {
	UserID        string `json:"user_id"`
	ClientID      string `json:"client_id"`
	Email         string `json:"email"`
	AlreadyExists bool   `json:"already_exists"`
	SmsSent       bool   `json:"sms_sent"`
}
