package response

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
