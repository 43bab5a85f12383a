package planning_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
)

func fragment(id, date, location string, ctx entity.RequestContext, items ...entity.OrderLine) *entity.PendingOrderFragment {
	return &entity.PendingOrderFragment{
		ID:               id,
		DeliveryDate:     day(date),
		DeliveryLocation: location,
		RequestContext:   ctx,
		Items:            items,
		Status:           entity.FragmentStatusPendiente,
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func line(ref string, qty int64, price string) entity.OrderLine {
	return entity.OrderLine{ItemRef: ref, Quantity: dec(qty), UnitPrice: decimal.RequireFromString(price)}
}

func TestConsolidate_FusionaSalaYCocinaMismaEntrega(t *testing.T) {
	groups, err := planning.Consolidate([]*entity.PendingOrderFragment{
		fragment("f1", "2024-05-01", "Kitchen", entity.RequestContextSala, line("VASO", 10, "0.50"), line("MANTEL", 2, "3")),
		fragment("f2", "2024-05-01", "Kitchen", entity.RequestContextCocina, line("VASO", 5, "0.50"), line("BANDEJA", 1, "4")),
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, []string{"f1", "f2"}, g.SourceFragmentIDs)
	require.Len(t, g.Items, 3)
	assert.Equal(t, "BANDEJA", g.Items[0].ItemRef)
	assert.Equal(t, "MANTEL", g.Items[1].ItemRef)
	assert.Equal(t, "VASO", g.Items[2].ItemRef)
	assert.True(t, g.Items[2].Quantity.Equal(dec(15)))
	assert.True(t, g.TotalUnits().Equal(dec(18)))
}

func TestConsolidate_GruposOrdenadosPorFechaYLocalizacion(t *testing.T) {
	groups, err := planning.Consolidate([]*entity.PendingOrderFragment{
		fragment("a", "2024-05-02", "Almacén", entity.RequestContextSala, line("X", 1, "1")),
		fragment("b", "2024-05-01", "Zaragoza", entity.RequestContextSala, line("X", 1, "1")),
		fragment("c", "2024-05-01", "Barcelona", entity.RequestContextSala, line("X", 1, "1")),
	})
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Barcelona", groups[0].DeliveryLocation)
	assert.Equal(t, "Zaragoza", groups[1].DeliveryLocation)
	assert.Equal(t, day("2024-05-02"), groups[2].DeliveryDate)
}

func TestConsolidate_PrecioDelPrimerFragmento(t *testing.T) {
	f1 := fragment("f1", "2024-05-01", "K", entity.RequestContextSala, line("X", 1, "1.00"))
	f2 := fragment("f2", "2024-05-01", "K", entity.RequestContextCocina, line("X", 1, "9.00"))
	f2.CreatedAt = f1.CreatedAt.Add(time.Hour)

	groups, err := planning.Consolidate([]*entity.PendingOrderFragment{f2, f1})
	require.NoError(t, err)
	assert.Equal(t, "1", groups[0].Items[0].UnitPrice.String())
}

func TestConsolidate_RechazaVacioYSinArticulos(t *testing.T) {
	_, err := planning.Consolidate(nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = planning.Consolidate([]*entity.PendingOrderFragment{
		fragment("ok", "2024-05-01", "K", entity.RequestContextSala, line("X", 1, "1")),
		fragment("vacio", "2024-05-01", "K", entity.RequestContextCocina),
	})
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "fragments.vacio")
}

func randomFragments(rng *rand.Rand, n int) []*entity.PendingOrderFragment {
	dates := []string{"2024-05-01", "2024-05-02", "2024-05-03"}
	locations := []string{"Kitchen", "Finca", "Hotel"}
	refs := []string{"VASO", "PLATO", "MANTEL", "SILLA", "COPA"}
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*entity.PendingOrderFragment, 0, n)
	for i := 0; i < n; i++ {
		ctx := entity.RequestContextSala
		if rng.Intn(2) == 0 {
			ctx = entity.RequestContextCocina
		}
		var items []entity.OrderLine
		for j := 0; j < 1+rng.Intn(4); j++ {
			items = append(items, line(refs[rng.Intn(len(refs))], int64(1+rng.Intn(50)), "1.25"))
		}
		f := fragment(fmt.Sprintf("f%03d", i), dates[rng.Intn(len(dates))], locations[rng.Intn(len(locations))], ctx, items...)
		f.CreatedAt = base.Add(time.Duration(rng.Intn(1000)) * time.Minute)
		out = append(out, f)
	}
	return out
}

func TestConsolidate_ConservaSumas(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		frags := randomFragments(rng, 1+rng.Intn(12))
		expected := make(map[string]decimal.Decimal)
		for _, f := range frags {
			for _, it := range f.Items {
				k := f.DeliveryDate.Format(entity.DateLayout) + "|" + f.DeliveryLocation + "|" + it.ItemRef
				expected[k] = expected[k].Add(it.Quantity)
			}
		}
		groups, err := planning.Consolidate(frags)
		require.NoError(t, err)
		got := make(map[string]decimal.Decimal)
		for _, g := range groups {
			for _, it := range g.Items {
				got[g.DeliveryDate.Format(entity.DateLayout)+"|"+g.DeliveryLocation+"|"+it.ItemRef] = it.Quantity
			}
		}
		require.Len(t, got, len(expected))
		for k, v := range expected {
			assert.True(t, v.Equal(got[k]), "%s: esperado %s, obtenido %s", k, v, got[k])
		}
	}
}

func TestConsolidate_IndependienteDelOrden(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 30; round++ {
		frags := randomFragments(rng, 2+rng.Intn(10))
		want, err := planning.Consolidate(frags)
		require.NoError(t, err)

		shuffled := append([]*entity.PendingOrderFragment(nil), frags...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := planning.Consolidate(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
