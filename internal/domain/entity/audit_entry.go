package entity

import "time"

// AuditAction tipo de mutación registrada.
type AuditAction string

const (
	AuditActionCreate   AuditAction = "create"
	AuditActionUpdate   AuditAction = "update"
	AuditActionDelete   AuditAction = "delete"
	AuditActionAllocate AuditAction = "allocate"
	AuditActionRelease  AuditAction = "release"
)

// Tipos de entidad auditados.
const (
	EntityManufacturingOrder = "manufacturing_order"
	EntityStockLot           = "stock_lot"
	EntityOrderFragment      = "pending_order_fragment"
	EntityConsolidatedOrder  = "consolidated_order"
)

// AuditEntry una entrada por mutación: quién, qué, sobre qué y estado antes/después.
type AuditEntry struct {
	ID         string
	Actor      string
	Action     AuditAction
	EntityType string
	EntityID   string
	Before     any
	After      any
	CreatedAt  time.Time
}
