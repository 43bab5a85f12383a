package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandLine necesidad bruta de una elaboración para una fecha.
type DemandLine struct {
	ProductRef  string          `json:"product_ref" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0,dec3"`
	Unit        string          `json:"unit"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Station     string          `json:"station" validate:"omitempty,oneof=FRIO CALIENTE PASTELERIA EXPEDICION"`
}

// NeedsRequest entrada del cálculo de necesidades. as_of vacío = hoy.
type NeedsRequest struct {
	Demand []DemandLine `json:"demand" validate:"required,min=1,dive"`
	AsOf   string       `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

// NetRequirementResponse necesidad neta por (producto, fecha).
type NetRequirementResponse struct {
	ProductRef      string          `json:"product_ref"`
	ProductName     string          `json:"product_name,omitempty"`
	Unit            string          `json:"unit,omitempty"`
	Station         string          `json:"station,omitempty"`
	Date            string          `json:"date"`
	Demand          decimal.Decimal `json:"demand"`
	StockApplied    decimal.Decimal `json:"stock_applied"`
	PlannedInOrders decimal.Decimal `json:"planned_in_orders"`
	Net             decimal.Decimal `json:"net"`
}

// NeedsResponse necesidades pendientes y cubiertas.
type NeedsResponse struct {
	Needs   []NetRequirementResponse `json:"needs"`
	Covered []NetRequirementResponse `json:"covered"`
}

// CreateManufacturingOrderRequest alta manual de una OF.
type CreateManufacturingOrderRequest struct {
	ProductRef      string          `json:"product_ref" validate:"required"`
	ProductName     string          `json:"product_name"`
	PlannedQuantity decimal.Decimal `json:"planned_quantity" validate:"gt=0,dec3"`
	Unit            string          `json:"unit" validate:"required"`
	ScheduledDate   string          `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Station         string          `json:"station" validate:"required,oneof=FRIO CALIENTE PASTELERIA EXPEDICION"`
}

// CreateFromNeedsRequest genera OFs a partir de necesidades netas. scheduled_date
// sustituye la fecha de cada necesidad si viene informada; station es la partida por defecto.
type CreateFromNeedsRequest struct {
	Needs         []DemandLine `json:"needs" validate:"required,min=1,dive"`
	ScheduledDate string       `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Station       string       `json:"station" validate:"omitempty,oneof=FRIO CALIENTE PASTELERIA EXPEDICION"`
}

// BatchFailure necesidad que no generó OF.
type BatchFailure struct {
	ProductRef string `json:"product_ref"`
	Date       string `json:"date"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// CreateFromNeedsResponse resultado por elemento.
type CreateFromNeedsResponse struct {
	Created []ManufacturingOrderResponse `json:"created"`
	Failed  []BatchFailure               `json:"failed"`
}

// AssignManufacturingOrderRequest asignación (o reasignación) a un operario.
type AssignManufacturingOrderRequest struct {
	Assignee string `json:"assignee" validate:"required"`
	Station  string `json:"station" validate:"omitempty,oneof=FRIO CALIENTE PASTELERIA EXPEDICION"`
}

// ReportIncidentRequest incidencia sobre una OF.
type ReportIncidentRequest struct {
	Notes string `json:"notes" validate:"required"`
}

// CompleteManufacturingOrderRequest cierre de la OF con la cantidad real producida.
type CompleteManufacturingOrderRequest struct {
	ActualQuantity decimal.Decimal `json:"actual_quantity" validate:"gt=0,dec3"`
	ExpirationDate string          `json:"expiration_date" validate:"required,datetime=2006-01-02"`
}

// ListManufacturingOrdersQuery filtros del listado.
type ListManufacturingOrdersQuery struct {
	Status     string `query:"status" json:"status" validate:"omitempty,oneof=Pendiente Asignado Completado Incidencia"`
	Station    string `query:"station" json:"station" validate:"omitempty,oneof=FRIO CALIENTE PASTELERIA EXPEDICION"`
	ProductRef string `query:"product_ref" json:"product_ref"`
	From       string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ManufacturingOrderResponse salida de una OF.
type ManufacturingOrderResponse struct {
	ID              string           `json:"id"`
	Code            string           `json:"code"`
	ProductRef      string           `json:"product_ref"`
	ProductName     string           `json:"product_name,omitempty"`
	PlannedQuantity decimal.Decimal  `json:"planned_quantity"`
	Unit            string           `json:"unit"`
	ScheduledDate   string           `json:"scheduled_date"`
	Station         string           `json:"station"`
	Assignee        *string          `json:"assignee,omitempty"`
	Status          string           `json:"status"`
	IncidentNotes   *string          `json:"incident_notes,omitempty"`
	ActualQuantity  *decimal.Decimal `json:"actual_quantity,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	AssignedAt      *time.Time       `json:"assigned_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CompleteManufacturingOrderResponse OF cerrada y lote generado.
type CompleteManufacturingOrderResponse struct {
	Order ManufacturingOrderResponse `json:"order"`
	Lot   StockLotResponse           `json:"lot"`
}
