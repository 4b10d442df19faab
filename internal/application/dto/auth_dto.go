package dto

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"` // "admin" | "user"; por defecto "user"
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
