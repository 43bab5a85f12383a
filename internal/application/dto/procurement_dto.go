package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineDTO línea de artículo de un sub-pedido o pedido.
type OrderLineDTO struct {
	ItemRef     string          `json:"item_ref" validate:"required"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0,dec3"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// CreateFragmentRequest alta de un sub-pedido (Sala o Cocina).
type CreateFragmentRequest struct {
	ServiceOrderRef  string         `json:"service_order_ref"`
	DeliveryDate     string         `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	DeliveryTime     string         `json:"delivery_time" validate:"omitempty,clock"`
	DeliveryLocation string         `json:"delivery_location" validate:"required"`
	RequestContext   string         `json:"request_context" validate:"required,oneof=Sala Cocina"`
	SupplierRef      string         `json:"supplier_ref"`
	Items            []OrderLineDTO `json:"items" validate:"dive"`
}

// UpdateFragmentItemsRequest sustituye las líneas del sub-pedido.
type UpdateFragmentItemsRequest struct {
	Items []OrderLineDTO `json:"items" validate:"dive"`
}

// ChangeFragmentContextRequest mueve el sub-pedido de ranura. Campos nil no cambian.
type ChangeFragmentContextRequest struct {
	DeliveryDate     *string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryLocation *string `json:"delivery_location" validate:"omitempty,min=1"`
	RequestContext   *string `json:"request_context" validate:"omitempty,oneof=Sala Cocina"`
}

// ChangeFragmentStatusRequest cambio de estado.
type ChangeFragmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pendiente Revisar Confirmado Enviado Cancelado"`
}

// ListFragmentsQuery rango de fechas de entrega.
type ListFragmentsQuery struct {
	From string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// FragmentResponse salida de un sub-pedido.
type FragmentResponse struct {
	ID               string          `json:"id"`
	ServiceOrderRef  string          `json:"service_order_ref,omitempty"`
	DeliveryDate     string          `json:"delivery_date"`
	DeliveryTime     string          `json:"delivery_time,omitempty"`
	DeliveryLocation string          `json:"delivery_location"`
	RequestContext   string          `json:"request_context"`
	SupplierRef      string          `json:"supplier_ref,omitempty"`
	Items            []OrderLineDTO  `json:"items"`
	ItemCount        int             `json:"item_count"`
	UnitCount        decimal.Decimal `json:"unit_count"`
	Status           string          `json:"status"`
	CreatedBy        string          `json:"created_by,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ConsolidateRequest sub-pedidos seleccionados para consolidar.
type ConsolidateRequest struct {
	FragmentIDs []string `json:"fragment_ids" validate:"required,min=1,dive,required"`
	Comment     string   `json:"comment" validate:"max=2000"`
}

// ConsolidatedOrderResponse salida de un pedido consolidado.
type ConsolidatedOrderResponse struct {
	ID                string         `json:"id"`
	OrderNumber       string         `json:"order_number"`
	DeliveryDate      string         `json:"delivery_date"`
	DeliveryLocation  string         `json:"delivery_location"`
	Items             []OrderLineDTO `json:"items"`
	SourceFragmentIDs []string       `json:"source_fragment_ids"`
	Comment           string         `json:"comment,omitempty"`
	Status            string         `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
}

// ConsolidateResponse pedidos generados en una consolidación.
type ConsolidateResponse struct {
	Orders []ConsolidatedOrderResponse `json:"orders"`
}

// DuplicateGroupResponse grupo de duplicados: fila conservada y filas borradas.
type DuplicateGroupResponse struct {
	OrderNumber string   `json:"order_number"`
	KeptID      string   `json:"kept_id"`
	DeletedIDs  []string `json:"deleted_ids"`
}

// ReconcileResponse resultado de la limpieza. En dry_run nada se borra y
// deleted_ids lista lo que se borraría.
type ReconcileResponse struct {
	DryRun       bool                     `json:"dry_run"`
	DeletedCount int                      `json:"deleted_count"`
	DeletedIDs   []string                 `json:"deleted_ids"`
	Groups       []DuplicateGroupResponse `json:"groups"`
}
