package dto

// LoginRequest payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors the shape the admin panel expects.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
