package entity

import "time"

// Customer representa un cliente (bar, restaurante, distribuidor).
type Customer struct {
	ID        string
	Name      string
	TaxID     string // NIT o Cédula (Colombia)
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
