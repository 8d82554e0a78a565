package entity

import "time"

// User representa un cliente de la tienda. IsAdmin habilita el acceso al
// panel de administración desde la vitrina.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	IsAdmin      bool
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
