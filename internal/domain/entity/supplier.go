package entity

import "time"

// Supplier representa un proveedor de materias primas o insumos de empaque.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	LeadTimeDays int // días estimados entre envío de la orden y recepción
	CreatedAt time.Time
	UpdatedAt time.Time
}
