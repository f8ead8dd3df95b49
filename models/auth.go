package models

// Token is the reply of a successful login.
type Token struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}

// UserLogin is the login request body.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreate is the registration request body.
type UserCreate struct {
	Email    string   `json:"email" validate:"required,email"`
	Name     string   `json:"name" validate:"required"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=freelancer admin"`
	Password string   `json:"password" validate:"required,min=6"`
}
