package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ConsolidatedOrderStatus estado del pedido enviado al proveedor.
type ConsolidatedOrderStatus string

const (
	ConsolidatedStatusEnPreparacion ConsolidatedOrderStatus = "En preparación"
	ConsolidatedStatusListo         ConsolidatedOrderStatus = "Listo"
)

// ConsolidatedOrder pedido consolidado por (fecha de entrega, localización),
// sin distinguir el origen de cada línea.
type ConsolidatedOrder struct {
	ID                string
	OrderNumber       string // A0001, A0002, ...
	DeliveryDate      time.Time
	DeliveryLocation  string
	Items             []OrderLine
	SourceFragmentIDs []string
	Comment           string
	CreatedAt         time.Time
	Status            ConsolidatedOrderStatus
}

var orderNumberRe = regexp.MustCompile(`^A(\d+)$`)

// ParseOrderNumber extrae la parte numérica de un número de pedido (A0042 -> 42).
func ParseOrderNumber(s string) (int, bool) {
	m := orderNumberRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatOrderNumber formatea el secuencial (42 -> A0042).
func FormatOrderNumber(n int) string {
	return fmt.Sprintf("A%04d", n)
}

// NextOrderNumber devuelve el siguiente número tras el mayor de los existentes.
func NextOrderNumber(existing []string) string {
	max := 0
	for _, s := range existing {
		if n, ok := ParseOrderNumber(s); ok && n > max {
			max = n
		}
	}
	return FormatOrderNumber(max + 1)
}

// Clone copia el pedido con sus líneas y orígenes.
func (o *ConsolidatedOrder) Clone() *ConsolidatedOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = append([]OrderLine(nil), o.Items...)
	c.SourceFragmentIDs = append([]string(nil), o.SourceFragmentIDs...)
	return &c
}
