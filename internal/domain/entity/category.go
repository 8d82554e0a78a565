package entity

import "time"

// Category representa una categoría navegable de la vitrina. Name es único.
// La pseudo-categoría "All" no existe en DB: se inyecta en la capa de aplicación.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
