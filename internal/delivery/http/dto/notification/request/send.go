package request

type SendEmailRequest struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	FromEmail string `json:"from_email"`
}

type SendMessageRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
