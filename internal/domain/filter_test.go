package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestFloorPrice(t *testing.T) {
	assert.Equal(t, 50000, FloorPrice(OperationSale))
	assert.Equal(t, 300, FloorPrice(OperationRent))
}

func TestPropertyFilter_EffectiveSort(t *testing.T) {
	f := NewPropertyFilter(OperationSale)
	assert.Equal(t, SortNewest, f.EffectiveSort())

	f = f.WithSortBy(SortPriceAsc)
	assert.Equal(t, SortPriceAsc, f.EffectiveSort())
}

func TestPropertyFilter_Signature(t *testing.T) {
	t.Run("default filter", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale)
		assert.Equal(t, "op=Venta|pmin=-|pmax=-|beds=-|baths=-|feat=|sort=newest", f.Signature())
	})

	t.Run("feature order does not matter", func(t *testing.T) {
		a := NewPropertyFilter(OperationRent).WithFeatures([]string{"terraza", "ascensor"})
		b := NewPropertyFilter(OperationRent).WithFeatures([]string{"ascensor", "terraza"})
		assert.Equal(t, a.Signature(), b.Signature())
	})

	t.Run("duplicate features collapse", func(t *testing.T) {
		a := NewPropertyFilter(OperationRent).WithFeatures([]string{"piscina", "piscina"})
		b := NewPropertyFilter(OperationRent).WithFeatures([]string{"piscina"})
		assert.Equal(t, a.Signature(), b.Signature())
	})

	t.Run("studio is distinct from zero bedrooms minimum", func(t *testing.T) {
		studio := NewPropertyFilter(OperationSale)
		studio.StudioOnly = true

		zero := NewPropertyFilter(OperationSale)
		zero.BedroomsAtLeast = intPtr(0)

		assert.NotEqual(t, studio.Signature(), zero.Signature())
		assert.Contains(t, studio.Signature(), "beds=studio")
	})

	t.Run("price sentinels are part of the signature", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale)
		f.PriceMin = intPtr(PriceBelowFloor)
		f.PriceMax = intPtr(PriceNoLimit)
		assert.Contains(t, f.Signature(), "pmin=-1")
		assert.Contains(t, f.Signature(), "pmax=-1")
	})

	t.Run("semantically different filters differ", func(t *testing.T) {
		a := NewPropertyFilter(OperationSale)
		b := NewPropertyFilter(OperationRent)
		assert.NotEqual(t, a.Signature(), b.Signature())

		c := a.WithSortBy(SortPriceDrop)
		assert.NotEqual(t, a.Signature(), c.Signature())
	})
}

func TestPropertyFilter_With(t *testing.T) {
	t.Run("WithSortBy does not share features slice", func(t *testing.T) {
		base := NewPropertyFilter(OperationSale).WithFeatures([]string{"terraza"})
		derived := base.WithSortBy(SortPriceAsc)

		derived.Features[0] = "garaje"
		assert.Equal(t, "terraza", base.Features[0])
	})
}
