package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// RequestContext origen interno que solicita el material.
type RequestContext string

const (
	RequestContextSala   RequestContext = "Sala"
	RequestContextCocina RequestContext = "Cocina"
)

// Valid indica si el origen pertenece a la enumeración.
func (c RequestContext) Valid() bool {
	return c == RequestContextSala || c == RequestContextCocina
}

// FragmentStatus estado de un sub-pedido pendiente.
type FragmentStatus string

const (
	FragmentStatusPendiente  FragmentStatus = "Pendiente"
	FragmentStatusRevisar    FragmentStatus = "Revisar"
	FragmentStatusConfirmado FragmentStatus = "Confirmado"
	FragmentStatusEnviado    FragmentStatus = "Enviado"
	FragmentStatusCancelado  FragmentStatus = "Cancelado"
)

var fragmentTransitions = map[FragmentStatus][]FragmentStatus{
	FragmentStatusPendiente:  {FragmentStatusRevisar, FragmentStatusConfirmado, FragmentStatusCancelado},
	FragmentStatusRevisar:    {FragmentStatusPendiente, FragmentStatusConfirmado, FragmentStatusCancelado},
	FragmentStatusConfirmado: {FragmentStatusEnviado, FragmentStatusCancelado},
}

// Valid indica si el estado pertenece a la enumeración.
func (s FragmentStatus) Valid() bool {
	switch s {
	case FragmentStatusPendiente, FragmentStatusRevisar, FragmentStatusConfirmado,
		FragmentStatusEnviado, FragmentStatusCancelado:
		return true
	}
	return false
}

// Terminal: Enviado y Cancelado no admiten más cambios.
func (s FragmentStatus) Terminal() bool {
	return s == FragmentStatusEnviado || s == FragmentStatusCancelado
}

// Live: todo lo que no está cancelado ocupa su (fecha, localización, origen).
func (s FragmentStatus) Live() bool {
	return s != FragmentStatusCancelado
}

// CanTransitionTo consulta la tabla de transiciones.
func (s FragmentStatus) CanTransitionTo(next FragmentStatus) bool {
	for _, t := range fragmentTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// OrderLine línea de material solicitada.
type OrderLine struct {
	ItemRef     string          `json:"item_ref"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PendingOrderFragment sub-pedido creado de forma independiente por un origen
// para una entrega concreta. Se conserva tras consolidarse.
type PendingOrderFragment struct {
	ID               string
	ServiceOrderRef  string
	DeliveryDate     time.Time
	DeliveryTime     string // HH:MM, opcional
	DeliveryLocation string
	RequestContext   RequestContext
	SupplierRef      string
	Items            []OrderLine
	ItemCount        int
	UnitCount        decimal.Decimal
	Status           FragmentStatus
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RecomputeTotals recalcula número de artículos y unidades.
func (f *PendingOrderFragment) RecomputeTotals() {
	f.ItemCount = len(f.Items)
	units := decimal.Zero
	for _, it := range f.Items {
		units = units.Add(it.Quantity)
	}
	f.UnitCount = units
}

// Clone copia el fragmento con sus líneas.
func (f *PendingOrderFragment) Clone() *PendingOrderFragment {
	if f == nil {
		return nil
	}
	c := *f
	c.Items = append([]OrderLine(nil), f.Items...)
	return &c
}

// SlotKey clave de unicidad (fecha, localización normalizada, origen).
func (f *PendingOrderFragment) SlotKey() string {
	return SlotKey(f.DeliveryDate, f.DeliveryLocation, f.RequestContext)
}

// SlotKey construye la clave de unicidad de un fragmento.
func SlotKey(date time.Time, location string, ctx RequestContext) string {
	return DateOnly(date).Format(DateLayout) + "|" + NormalizeLocation(location) + "|" + string(ctx)
}

// NormalizeLocation recorta espacios y aplica NFC para que "Almacén" escrito con
// tilde compuesta o combinada sea la misma localización.
func NormalizeLocation(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
