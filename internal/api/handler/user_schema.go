package handler

// --- Request / Response types for the user routes ---

type signUpRequest struct {
	Name     string `json:"name"     validate:"required,person_name"`
	Surname  string `json:"surname"  validate:"required,person_name"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// showUserResponse is the public projection of an account; the password
// hash and role set never leave the server.
type showUserResponse struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type roleUpdateResponse struct {
	UpdatedUserID string `json:"updated_user_id"`
}
