package domain

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func saleProperty(price, bedrooms int) *Property {
	return &Property{
		OperationType: OperationSale,
		Price:         price,
		Bedrooms:      bedrooms,
		Bathrooms:     1,
	}
}

func TestCompile_Predicate(t *testing.T) {
	t.Run("price range with bedrooms minimum", func(t *testing.T) {
		props := []*Property{
			saleProperty(100000, 1),
			saleProperty(300000, 3),
			saleProperty(500000, 2),
		}

		f := NewPropertyFilter(OperationSale)
		f.PriceMin = intPtr(150000)
		f.PriceMax = intPtr(400000)
		f.BedroomsAtLeast = intPtr(2)

		pred, _ := Compile(f)

		var matched []*Property
		for _, p := range props {
			if pred(p) {
				matched = append(matched, p)
			}
		}
		require.Len(t, matched, 1)
		assert.Equal(t, 300000, matched[0].Price)
	})

	t.Run("operation type must match", func(t *testing.T) {
		pred, _ := Compile(NewPropertyFilter(OperationRent))
		assert.False(t, pred(saleProperty(900, 2)))
	})

	t.Run("inverted range matches nothing", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale)
		f.PriceMin = intPtr(400000)
		f.PriceMax = intPtr(150000)
		pred, _ := Compile(f)

		for _, price := range []int{100000, 200000, 300000, 500000} {
			assert.False(t, pred(saleProperty(price, 2)), "price %d", price)
		}
	})

	t.Run("below floor sentinel", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale)
		f.PriceMin = intPtr(PriceBelowFloor)
		pred, _ := Compile(f)

		assert.True(t, pred(saleProperty(49999, 1)))
		assert.False(t, pred(saleProperty(50000, 1)))
	})

	t.Run("no limit sentinel in max", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale)
		f.PriceMax = intPtr(PriceNoLimit)
		pred, _ := Compile(f)

		assert.True(t, pred(saleProperty(99999999, 1)))
	})

	t.Run("studio only", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale)
		f.StudioOnly = true
		pred, _ := Compile(f)

		assert.True(t, pred(saleProperty(100000, 0)))
		assert.False(t, pred(saleProperty(100000, 1)))
	})

	t.Run("features require every tag", func(t *testing.T) {
		f := NewPropertyFilter(OperationSale).WithFeatures([]string{"terraza", "ascensor"})
		pred, _ := Compile(f)

		both := saleProperty(100000, 1)
		both.Features = []string{"ascensor", "terraza", "garaje"}
		assert.True(t, pred(both))

		one := saleProperty(100000, 1)
		one.Features = []string{"terraza"}
		assert.False(t, pred(one))
	})
}

func TestCompile_Less(t *testing.T) {
	t.Run("newest is the default order", func(t *testing.T) {
		old := saleProperty(100, 1)
		old.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		fresh := saleProperty(200, 1)
		fresh.CreatedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		_, less := Compile(NewPropertyFilter(OperationSale))
		assert.True(t, less(fresh, old))
		assert.False(t, less(old, fresh))
	})

	t.Run("price ascending", func(t *testing.T) {
		_, less := Compile(NewPropertyFilter(OperationSale).WithSortBy(SortPriceAsc))
		assert.True(t, less(saleProperty(100, 1), saleProperty(200, 1)))
	})

	t.Run("price per area sorts missing area last", func(t *testing.T) {
		cheap := saleProperty(100000, 1)
		cheap.Area = floatPtr(100) // 1000 €/м²
		dear := saleProperty(300000, 1)
		dear.Area = floatPtr(100) // 3000 €/м²
		noArea := saleProperty(50000, 1)
		zeroArea := saleProperty(50000, 1)
		zeroArea.Area = floatPtr(0)

		_, less := Compile(NewPropertyFilter(OperationSale).WithSortBy(SortPricePerArea))

		props := []*Property{noArea, dear, zeroArea, cheap}
		sort.SliceStable(props, func(i, j int) bool { return less(props[i], props[j]) })

		assert.Same(t, cheap, props[0])
		assert.Same(t, dear, props[1])
		// Объекты без площади в хвосте в исходном относительном порядке
		assert.Same(t, noArea, props[2])
		assert.Same(t, zeroArea, props[3])
	})

	t.Run("price drop descending treats missing previous price as zero", func(t *testing.T) {
		big := saleProperty(50000, 1)
		big.PreviousPrice = intPtr(100000) // -50%
		small := saleProperty(90000, 1)
		small.PreviousPrice = intPtr(100000) // -10%
		none := saleProperty(10000, 1)

		_, less := Compile(NewPropertyFilter(OperationSale).WithSortBy(SortPriceDrop))

		props := []*Property{none, small, big}
		sort.SliceStable(props, func(i, j int) bool { return less(props[i], props[j]) })

		assert.Same(t, big, props[0])
		assert.Same(t, small, props[1])
		assert.Same(t, none, props[2])
	})
}

func TestProperty_Derived(t *testing.T) {
	t.Run("price per area", func(t *testing.T) {
		p := saleProperty(200000, 2)
		_, ok := p.PricePerArea()
		assert.False(t, ok)

		p.Area = floatPtr(80)
		v, ok := p.PricePerArea()
		require.True(t, ok)
		assert.InDelta(t, 2500, v, 0.001)
	})

	t.Run("price drop percent", func(t *testing.T) {
		p := saleProperty(80000, 2)
		assert.Zero(t, p.PriceDropPercent())

		p.PreviousPrice = intPtr(100000)
		assert.InDelta(t, 20, p.PriceDropPercent(), 0.001)
	})
}
