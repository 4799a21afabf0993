package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitaclick/search-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestSQLBuilder_Where(t *testing.T) {
	t.Run("empty builder", func(t *testing.T) {
		b := &sqlBuilder{}
		assert.Empty(t, b.where())
	})

	t.Run("conditions joined with numbered placeholders", func(t *testing.T) {
		b := &sqlBuilder{}
		b.add("operation_type = $%d", "Venta")
		b.add("price >= $%d", 150000)

		assert.Equal(t, " WHERE operation_type = $1 AND price >= $2", b.where())
		assert.Equal(t, []interface{}{"Venta", 150000}, b.args)
	})
}

func TestLocationClause(t *testing.T) {
	t.Run("no locations adds nothing", func(t *testing.T) {
		b := &sqlBuilder{}
		locationClause(b, nil)
		assert.Empty(t, b.where())
	})

	t.Run("neighborhood selection", func(t *testing.T) {
		b := &sqlBuilder{}
		locationClause(b, []domain.LocationFilter{
			{City: "Madrid", District: "Salamanca", Neighborhood: "Goya"},
		})
		assert.Equal(t, " WHERE ((city = $1 AND neighborhood = $2))", b.where())
		assert.Equal(t, []interface{}{"Madrid", "Goya"}, b.args)
	})

	t.Run("district selection", func(t *testing.T) {
		b := &sqlBuilder{}
		locationClause(b, []domain.LocationFilter{
			{City: "Madrid", District: "Centro"},
		})
		assert.Equal(t, " WHERE ((city = $1 AND district = $2))", b.where())
	})

	t.Run("sentinel and bare city both cover the whole city", func(t *testing.T) {
		all := &sqlBuilder{}
		locationClause(all, []domain.LocationFilter{{City: "Madrid", AllNeighborhoods: true}})

		bare := &sqlBuilder{}
		locationClause(bare, []domain.LocationFilter{{City: "Madrid"}})

		assert.Equal(t, bare.where(), all.where())
		assert.Equal(t, " WHERE (city = $1)", all.where())
	})

	t.Run("multiple locations form a disjunction", func(t *testing.T) {
		b := &sqlBuilder{}
		locationClause(b, []domain.LocationFilter{
			{City: "Madrid", District: "Salamanca", Neighborhood: "Goya"},
			{City: "Madrid", District: "Centro"},
			{City: "Valencia"},
		})
		assert.Equal(t,
			" WHERE ((city = $1 AND neighborhood = $2) OR (city = $3 AND district = $4) OR city = $5)",
			b.where())
		assert.Equal(t, []interface{}{"Madrid", "Goya", "Madrid", "Centro", "Valencia"}, b.args)
	})
}

func TestFilterClause(t *testing.T) {
	t.Run("default filter constrains only the operation", func(t *testing.T) {
		b := &sqlBuilder{}
		filterClause(b, domain.NewPropertyFilter(domain.OperationSale))
		assert.Equal(t, " WHERE operation_type = $1", b.where())
	})

	t.Run("price range", func(t *testing.T) {
		f := domain.NewPropertyFilter(domain.OperationSale)
		f.PriceMin = intPtr(150000)
		f.PriceMax = intPtr(400000)

		b := &sqlBuilder{}
		filterClause(b, f)
		assert.Equal(t, " WHERE operation_type = $1 AND price >= $2 AND price <= $3", b.where())
		assert.Equal(t, []interface{}{"Venta", 150000, 400000}, b.args)
	})

	t.Run("below floor sentinel uses the catalog floor", func(t *testing.T) {
		f := domain.NewPropertyFilter(domain.OperationRent)
		f.PriceMin = intPtr(domain.PriceBelowFloor)

		b := &sqlBuilder{}
		filterClause(b, f)
		assert.Equal(t, " WHERE operation_type = $1 AND price < $2", b.where())
		assert.Equal(t, []interface{}{"Alquiler", domain.FloorPrice(domain.OperationRent)}, b.args)
	})

	t.Run("no limit sentinel adds no max condition", func(t *testing.T) {
		f := domain.NewPropertyFilter(domain.OperationSale)
		f.PriceMax = intPtr(domain.PriceNoLimit)

		b := &sqlBuilder{}
		filterClause(b, f)
		assert.Equal(t, " WHERE operation_type = $1", b.where())
	})

	t.Run("studio overrides bedrooms minimum", func(t *testing.T) {
		f := domain.NewPropertyFilter(domain.OperationSale)
		f.StudioOnly = true
		f.BedroomsAtLeast = intPtr(2)

		b := &sqlBuilder{}
		filterClause(b, f)
		assert.Contains(t, b.where(), "bedrooms = 0")
		assert.NotContains(t, b.where(), "bedrooms >=")
	})

	t.Run("features use array containment", func(t *testing.T) {
		f := domain.NewPropertyFilter(domain.OperationSale).WithFeatures([]string{"terraza", "ascensor"})

		b := &sqlBuilder{}
		filterClause(b, f)
		assert.Contains(t, b.where(), "features @> $2")
		require.Len(t, b.args, 2)
	})
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, " ORDER BY created_at DESC", orderClause(domain.SortNewest))
	assert.Equal(t, " ORDER BY created_at DESC", orderClause(""))
	assert.Equal(t, " ORDER BY price ASC", orderClause(domain.SortPriceAsc))
	assert.Contains(t, orderClause(domain.SortPricePerArea), "NULLIF(area, 0)")
	assert.Contains(t, orderClause(domain.SortPriceDrop), "previous_price")
}
