package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy_Load(t *testing.T) {
	t.Run("default catalog", func(t *testing.T) {
		tax, err := Default()
		require.NoError(t, err)
		assert.Equal(t, []string{"Madrid", "Barcelona", "Valencia"}, tax.CitiesAvailable())
		assert.Equal(t, "Madrid", tax.DefaultCity())
	})

	t.Run("empty catalog rejected", func(t *testing.T) {
		_, err := Load([]byte(`{"cities": []}`))
		assert.Error(t, err)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := Load([]byte(`{not json`))
		assert.Error(t, err)
	})
}

func TestTaxonomy_Lookups(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	t.Run("canonical city is fold insensitive", func(t *testing.T) {
		city, ok := tax.CanonicalCity("  madrid ")
		require.True(t, ok)
		assert.Equal(t, "Madrid", city)

		city, ok = tax.CanonicalCity("VALENCIA")
		require.True(t, ok)
		assert.Equal(t, "Valencia", city)

		_, ok = tax.CanonicalCity("Sevilla")
		assert.False(t, ok)
	})

	t.Run("districts in catalog order", func(t *testing.T) {
		districts := tax.DistrictsOf("Madrid")
		require.Len(t, districts, 7)
		assert.Equal(t, "Centro", districts[0])
		assert.Equal(t, "Moncloa-Aravaca", districts[6])
	})

	t.Run("unknown city yields empty lists", func(t *testing.T) {
		assert.Empty(t, tax.DistrictsOf("Sevilla"))
		assert.Empty(t, tax.AllNeighborhoodsOf("Sevilla"))
		assert.Empty(t, tax.NeighborhoodsOf("Centro", "Sevilla"))
	})

	t.Run("neighborhoods of district", func(t *testing.T) {
		ns := tax.NeighborhoodsOf("Salamanca", "Madrid")
		assert.Equal(t, []string{"Recoletos", "Goya", "Fuente del Berro", "Guindalera", "Lista", "Castellana"}, ns)
	})

	t.Run("all neighborhoods expand district by district", func(t *testing.T) {
		all := tax.AllNeighborhoodsOf("Madrid")
		require.NotEmpty(t, all)
		assert.Equal(t, "Palacio", all[0]) // первый баррио первого района
		assert.Contains(t, all, "Goya")
		assert.Contains(t, all, "Aravaca")
	})

	t.Run("reverse index resolves district of neighborhood", func(t *testing.T) {
		d, ok := tax.DistrictOf("Goya", "Madrid")
		require.True(t, ok)
		assert.Equal(t, "Salamanca", d)

		d, ok = tax.DistrictOf("el viso", "Madrid")
		require.True(t, ok)
		assert.Equal(t, "Chamartín", d)

		_, ok = tax.DistrictOf("Goya", "Barcelona")
		assert.False(t, ok)
	})

	t.Run("accent folding on neighborhood lookup", func(t *testing.T) {
		n, ok := tax.CanonicalNeighborhood("pacifico", "Madrid")
		require.True(t, ok)
		assert.Equal(t, "Pacífico", n)

		_, ok = tax.CanonicalNeighborhood("CHAMARTIN", "Madrid")
		assert.False(t, ok) // район, не баррио

		d, ok := tax.CanonicalDistrict("chamartin", "Madrid")
		require.True(t, ok)
		assert.Equal(t, "Chamartín", d)
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, "chamberi", Fold("  Chamberí "))
	assert.Equal(t, "sants-montjuic", Fold("Sants-Montjuïc"))
	assert.Equal(t, "nino jesus", Fold("Niño Jesús"))
	assert.Equal(t, "", Fold("   "))
}
