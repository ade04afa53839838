package dto

// ContactRequest payload for POST /api/contacto.
type ContactRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Message string `json:"mensaje"`
}
