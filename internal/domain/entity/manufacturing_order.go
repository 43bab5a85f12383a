package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MOStatus estado de una orden de fabricación (OF).
type MOStatus string

// Estados de la OF. Completado e Incidencia son terminales.
const (
	MOStatusPendiente  MOStatus = "Pendiente"
	MOStatusAsignado   MOStatus = "Asignado"
	MOStatusCompletado MOStatus = "Completado"
	MOStatusIncidencia MOStatus = "Incidencia"
)

// moTransitions tabla de transiciones permitidas (origen -> destinos).
var moTransitions = map[MOStatus][]MOStatus{
	MOStatusPendiente: {MOStatusAsignado, MOStatusIncidencia},
	MOStatusAsignado:  {MOStatusAsignado, MOStatusCompletado, MOStatusIncidencia},
}

// Valid indica si el valor pertenece a la enumeración.
func (s MOStatus) Valid() bool {
	switch s {
	case MOStatusPendiente, MOStatusAsignado, MOStatusCompletado, MOStatusIncidencia:
		return true
	}
	return false
}

// Terminal indica que ninguna transición sale de este estado.
func (s MOStatus) Terminal() bool {
	return s == MOStatusCompletado || s == MOStatusIncidencia
}

// Open indica que la cantidad de la OF cuenta como producción comprometida.
func (s MOStatus) Open() bool {
	return s == MOStatusPendiente || s == MOStatusAsignado
}

// CanTransitionTo consulta la tabla de transiciones.
func (s MOStatus) CanTransitionTo(next MOStatus) bool {
	for _, t := range moTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Station partida de producción del CPR.
type Station string

const (
	StationFrio       Station = "FRIO"
	StationCaliente   Station = "CALIENTE"
	StationPasteleria Station = "PASTELERIA"
	StationExpedicion Station = "EXPEDICION"
)

// Stations lista cerrada de partidas.
var Stations = []Station{StationFrio, StationCaliente, StationPasteleria, StationExpedicion}

// Valid indica si la partida existe.
func (s Station) Valid() bool {
	for _, st := range Stations {
		if st == s {
			return true
		}
	}
	return false
}

// ManufacturingOrder orden de fabricación de una elaboración para una fecha.
// Nunca se borra: solo cambia de estado (auditoría).
type ManufacturingOrder struct {
	ID              string
	Code            string // OF-YYYYMMDD-XXXXXX, único
	ProductRef      string
	ProductName     string
	PlannedQuantity decimal.Decimal
	Unit            string
	ScheduledDate   time.Time
	Station         Station
	Assignee        *string
	Status          MOStatus
	IncidentNotes   *string
	ActualQuantity  *decimal.Decimal
	CreatedAt       time.Time
	AssignedAt      *time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

// Clone copia la orden incluyendo punteros, para diffs de auditoría.
func (mo *ManufacturingOrder) Clone() *ManufacturingOrder {
	if mo == nil {
		return nil
	}
	c := *mo
	if mo.Assignee != nil {
		v := *mo.Assignee
		c.Assignee = &v
	}
	if mo.IncidentNotes != nil {
		v := *mo.IncidentNotes
		c.IncidentNotes = &v
	}
	if mo.ActualQuantity != nil {
		v := *mo.ActualQuantity
		c.ActualQuantity = &v
	}
	if mo.AssignedAt != nil {
		v := *mo.AssignedAt
		c.AssignedAt = &v
	}
	if mo.CompletedAt != nil {
		v := *mo.CompletedAt
		c.CompletedAt = &v
	}
	return &c
}
