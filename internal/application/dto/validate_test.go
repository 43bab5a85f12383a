package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/domain"
)

func TestValidate_CantidadConMasDeTresDecimales(t *testing.T) {
	err := dto.Validate(dto.AllocateRequest{ProductRef: "CROQ", Quantity: decimal.RequireFromString("0.0004")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "máximo 3 decimales", verr.Fields["quantity"])

	assert.NoError(t, dto.Validate(dto.AllocateRequest{ProductRef: "CROQ", Quantity: decimal.RequireFromString("0.125")}))
	assert.NoError(t, dto.Validate(dto.AllocateRequest{ProductRef: "CROQ", Quantity: decimal.RequireFromString("2.5000")}),
		"los ceros a la derecha no cuentan")
}

func TestValidate_DecimalesEnLineasAnidadas(t *testing.T) {
	err := dto.Validate(dto.CreateFromNeedsRequest{Needs: []dto.DemandLine{
		{ProductRef: "CROQ", Quantity: decimal.RequireFromString("1.5"), Date: "2024-06-10"},
		{ProductRef: "TARTA", Quantity: decimal.RequireFromString("1.00000000000000000001"), Date: "2024-06-10"},
	}})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "needs[1].quantity")
	assert.NotContains(t, verr.Fields, "needs[0].quantity")
}

func TestValidate_CamposConNombreJSON(t *testing.T) {
	err := dto.Validate(dto.DepositRequest{Quantity: decimal.NewFromInt(1), Unit: "ud", ExpirationDate: "01/02/2024"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "obligatorio", verr.Fields["product_ref"])
	assert.Contains(t, verr.Fields, "expiration_date")
}
