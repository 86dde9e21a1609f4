package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus estado del ciclo de vida de un lote de producción.
// Enumeración cerrada: cualquier valor desconocido se rechaza en el borde (ParseBatchStatus).
type BatchStatus string

const (
	BatchPlanned        BatchStatus = "planned"
	BatchBrewing        BatchStatus = "brewing"
	BatchFermenting     BatchStatus = "fermenting"
	BatchConditioning   BatchStatus = "conditioning"
	BatchReadyToPackage BatchStatus = "ready_to_package"
	BatchPackaged       BatchStatus = "packaged"
	BatchCompleted      BatchStatus = "completed"
	BatchCancelled      BatchStatus = "cancelled"
	BatchDumped         BatchStatus = "dumped"
)

// ParseBatchStatus valida un estado recibido del borde (HTTP, DB). Rechaza valores desconocidos.
func ParseBatchStatus(s string) (BatchStatus, error) {
	switch BatchStatus(s) {
	case BatchPlanned, BatchBrewing, BatchFermenting, BatchConditioning,
		BatchReadyToPackage, BatchPackaged, BatchCompleted, BatchCancelled, BatchDumped:
		return BatchStatus(s), nil
	}
	return "", fmt.Errorf("estado de lote desconocido: %q", s)
}

// OccupiesVessel indica si el estado mantiene el tanque asignado.
// Fuera de este rango el tanque debe estar liberado (VesselID nil).
func (s BatchStatus) OccupiesVessel() bool {
	switch s {
	case BatchBrewing, BatchFermenting, BatchConditioning, BatchReadyToPackage:
		return true
	}
	return false
}

// Batch representa un lote de producción de una receta.
// Nunca se elimina físicamente: los estados terminales cancelled/dumped lo sacan de circulación.
type Batch struct {
	ID          string
	Number      string // asignado por el generador de consecutivos, opaco una vez creado
	RecipeID    string
	VesselID    *string // no nil solo mientras Status.OccupiesVessel()
	Status      BatchStatus
	BatchSize   decimal.Decimal // litros planeados
	PlannedDate *time.Time
	BrewDate    *time.Time
	ReadyDate   *time.Time // fecha estimada de disponibilidad
	CompletedAt *time.Time
	PackagedAt  *time.Time

	// Mediciones reales del proceso.
	ActualVolume *decimal.Decimal // litros
	OriginalGravity *decimal.Decimal
	FinalGravity    *decimal.Decimal
	ABV             *decimal.Decimal

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
