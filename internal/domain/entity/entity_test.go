package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMOStatus_Transiciones(t *testing.T) {
	cases := []struct {
		from, to MOStatus
		ok       bool
	}{
		{MOStatusPendiente, MOStatusAsignado, true},
		{MOStatusPendiente, MOStatusIncidencia, true},
		{MOStatusPendiente, MOStatusCompletado, false},
		{MOStatusAsignado, MOStatusAsignado, true},
		{MOStatusAsignado, MOStatusCompletado, true},
		{MOStatusAsignado, MOStatusIncidencia, true},
		{MOStatusCompletado, MOStatusAsignado, false},
		{MOStatusCompletado, MOStatusIncidencia, false},
		{MOStatusIncidencia, MOStatusAsignado, false},
		{MOStatusIncidencia, MOStatusCompletado, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
	assert.True(t, MOStatusCompletado.Terminal())
	assert.True(t, MOStatusIncidencia.Terminal())
	assert.False(t, MOStatusAsignado.Terminal())
	assert.False(t, MOStatus("Borrador").Valid())
}

func TestFragmentStatus_Transiciones(t *testing.T) {
	assert.True(t, FragmentStatusPendiente.CanTransitionTo(FragmentStatusRevisar))
	assert.True(t, FragmentStatusRevisar.CanTransitionTo(FragmentStatusPendiente))
	assert.True(t, FragmentStatusRevisar.CanTransitionTo(FragmentStatusConfirmado))
	assert.True(t, FragmentStatusConfirmado.CanTransitionTo(FragmentStatusEnviado))
	assert.True(t, FragmentStatusConfirmado.CanTransitionTo(FragmentStatusCancelado))
	assert.False(t, FragmentStatusPendiente.CanTransitionTo(FragmentStatusEnviado))
	assert.False(t, FragmentStatusEnviado.CanTransitionTo(FragmentStatusCancelado))
	assert.False(t, FragmentStatusCancelado.CanTransitionTo(FragmentStatusPendiente))
	assert.False(t, FragmentStatusCancelado.Live())
	assert.True(t, FragmentStatusEnviado.Live())
}

func TestSlotKey_NormalizaLocalizacion(t *testing.T) {
	d := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	composed := "Almacén"
	decomposed := "  Almace\u0301n "
	assert.Equal(t, SlotKey(d, composed, RequestContextSala), SlotKey(DateOnly(d), decomposed, RequestContextSala))
	assert.NotEqual(t, SlotKey(d, composed, RequestContextSala), SlotKey(d, composed, RequestContextCocina))
}

func TestOrderNumbers(t *testing.T) {
	n, ok := ParseOrderNumber("A0042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)
	_, ok = ParseOrderNumber("B0001")
	assert.False(t, ok)
	assert.Equal(t, "A0001", NextOrderNumber(nil))
	assert.Equal(t, "A0043", NextOrderNumber([]string{"A0007", "A0042", "basura"}))
	assert.Equal(t, "A12345", FormatOrderNumber(12345))
}

func TestStockLot_Available(t *testing.T) {
	exp := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	l := &StockLot{ExpirationDate: exp}
	assert.True(t, l.Available().IsZero())
	assert.False(t, l.ExpiredAt(exp))
	assert.True(t, l.ExpiredAt(exp.AddDate(0, 0, 1)))
}
