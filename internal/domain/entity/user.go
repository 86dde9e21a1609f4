package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleCervecero = "cervecero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, cervecero, vendedor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
