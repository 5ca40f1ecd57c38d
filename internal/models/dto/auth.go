package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5,max=25"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// AuthResponse is the shared payload returned by both register and login.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
