package dto

// UserItem represents a user in API responses.
// It deliberately omits the password field.
type UserItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignupResponse is the body returned on successful signup.
type SignupResponse struct {
	Message string   `json:"message"`
	User    UserItem `json:"user"`
}

// LoginResponse is the body returned on successful login.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserItem `json:"user"`
}
