package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VesselStatus estado operativo de un tanque (fermentador, madurador, brite).
type VesselStatus string

const (
	VesselAvailable   VesselStatus = "available"
	VesselOccupied    VesselStatus = "occupied"
	VesselCleaning    VesselStatus = "cleaning"
	VesselMaintenance VesselStatus = "maintenance"
)

// ParseVesselStatus valida un estado de tanque recibido del borde.
func ParseVesselStatus(s string) (VesselStatus, error) {
	switch VesselStatus(s) {
	case VesselAvailable, VesselOccupied, VesselCleaning, VesselMaintenance:
		return VesselStatus(s), nil
	}
	return "", fmt.Errorf("estado de tanque desconocido: %q", s)
}

// Vessel representa un tanque de la planta. Un lote activo lo posee en exclusiva
// mientras su estado ocupe tanque (ver BatchStatus.OccupiesVessel).
type Vessel struct {
	ID        string
	Name      string // ej. "FV-01", "BT-02"
	Type      string // fermenter, conditioning, brite
	Capacity  decimal.Decimal // litros
	Status    VesselStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
