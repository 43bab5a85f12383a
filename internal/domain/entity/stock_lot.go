package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLot lote producido con caducidad propia y contador de cantidad asignada.
// Invariante: 0 <= QuantityAssigned <= QuantityProduced.
type StockLot struct {
	ID               string
	ProductRef       string
	SourceMOID       *string // nil si es un ajuste manual
	QuantityProduced decimal.Decimal
	QuantityAssigned decimal.Decimal
	Unit             string
	ExpirationDate   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Available cantidad aún no asignada a logística.
func (l *StockLot) Available() decimal.Decimal {
	return l.QuantityProduced.Sub(l.QuantityAssigned)
}

// ExpiredAt indica si el lote ya no sirve para la fecha dada.
func (l *StockLot) ExpiredAt(day time.Time) bool {
	return DateOnly(l.ExpirationDate).Before(DateOnly(day))
}

// Clone copia el lote.
func (l *StockLot) Clone() *StockLot {
	if l == nil {
		return nil
	}
	c := *l
	if l.SourceMOID != nil {
		v := *l.SourceMOID
		c.SourceMOID = &v
	}
	return &c
}
