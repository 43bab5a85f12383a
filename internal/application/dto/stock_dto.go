package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositRequest alta de un lote (ajuste manual; las OFs depositan al completarse).
type DepositRequest struct {
	ProductRef     string          `json:"product_ref" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity" validate:"gt=0,dec3"`
	Unit           string          `json:"unit" validate:"required"`
	ExpirationDate string          `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	SourceMOID     string          `json:"source_mo_id"`
}

// AllocateRequest consumo FEFO. exclude_expired_at descarta lotes caducados a esa fecha.
type AllocateRequest struct {
	ProductRef       string          `json:"product_ref" validate:"required"`
	Quantity         decimal.Decimal `json:"quantity" validate:"gt=0,dec3"`
	ExcludeExpiredAt string          `json:"exclude_expired_at" validate:"omitempty,datetime=2006-01-02"`
}

// ReleaseRequest devolución de una asignación.
type ReleaseRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0,dec3"`
}

// StockLotResponse salida de un lote.
type StockLotResponse struct {
	ID               string          `json:"id"`
	ProductRef       string          `json:"product_ref"`
	SourceMOID       *string         `json:"source_mo_id,omitempty"`
	QuantityProduced decimal.Decimal `json:"quantity_produced"`
	QuantityAssigned decimal.Decimal `json:"quantity_assigned"`
	Available        decimal.Decimal `json:"available"`
	Unit             string          `json:"unit"`
	ExpirationDate   string          `json:"expiration_date"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LotAllocationResponse cantidad tomada de un lote.
type LotAllocationResponse struct {
	LotID          string          `json:"lot_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
}

// AllocationResponse reparto de una petición. shortfall > 0 = stock insuficiente.
type AllocationResponse struct {
	ProductRef  string                  `json:"product_ref"`
	Requested   decimal.Decimal         `json:"requested"`
	Allocations []LotAllocationResponse `json:"allocations"`
	Allocated   decimal.Decimal         `json:"allocated"`
	Shortfall   decimal.Decimal         `json:"shortfall"`
}
