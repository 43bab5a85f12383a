package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandEntry necesidad bruta de una elaboración para una fecha (derivada de los
// servicios contratados).
type DemandEntry struct {
	ProductRef  string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	Date        time.Time
	Station     Station // partida sugerida para la OF, opcional
}

// NetRequirement necesidad neta por (producto, fecha). Derivada, no se persiste.
type NetRequirement struct {
	ProductRef      string
	ProductName     string
	Unit            string
	Station         Station
	Date            time.Time
	Demand          decimal.Decimal
	StockApplied    decimal.Decimal
	PlannedInOrders decimal.Decimal
	Net             decimal.Decimal
}
