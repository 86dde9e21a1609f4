package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBatchRequest body para POST /api/batches. Si BatchSize es nil se usa
// el tamaño estándar de la receta.
type CreateBatchRequest struct {
	RecipeID    string           `json:"recipe_id" validate:"required,uuid4"`
	BatchSize   *decimal.Decimal `json:"batch_size,omitempty"`
	PlannedDate *time.Time       `json:"planned_date,omitempty"`
	ReadyDate   *time.Time       `json:"ready_date,omitempty"`
	Notes       string           `json:"notes"`
}

// AssignVesselRequest body para asignar un tanque a un lote.
type AssignVesselRequest struct {
	VesselID string `json:"vessel_id" validate:"required,uuid4"`
}

// BatchMeasurementsRequest mediciones reales del proceso. Campos nil no se tocan.
type BatchMeasurementsRequest struct {
	ActualVolume    *decimal.Decimal `json:"actual_volume,omitempty"`
	OriginalGravity *decimal.Decimal `json:"original_gravity,omitempty"`
	FinalGravity    *decimal.Decimal `json:"final_gravity,omitempty"`
	ABV             *decimal.Decimal `json:"abv,omitempty"`
}
