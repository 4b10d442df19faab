package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User usuario de la aplicación. Los admin ven todos los snapshots;
// los demás solo los propios.
type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Role         string // "admin" | "user"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
