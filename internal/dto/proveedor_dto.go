package dto

type ProveedorRequest struct {
	Nombre   string `json:"nombre"   validate:"required,max=120"`
	Telefono string `json:"telefono" validate:"max=40"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

type ProveedorResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}
