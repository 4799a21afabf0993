package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_Encode(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	t.Run("full triple", func(t *testing.T) {
		token := tax.Encode("Madrid", "Salamanca", "Goya")
		assert.Equal(t, Token("Goya, Salamanca, Madrid"), token)
	})

	t.Run("district resolved from reverse index", func(t *testing.T) {
		token := tax.Encode("Madrid", "", "Goya")
		assert.Equal(t, Token("Goya, Salamanca, Madrid"), token)
	})

	t.Run("district only", func(t *testing.T) {
		token := tax.Encode("Madrid", "Centro", "")
		assert.Equal(t, Token("Centro, Madrid"), token)
	})

	t.Run("city only", func(t *testing.T) {
		token := tax.Encode("Madrid", "", "")
		assert.Equal(t, Token("Madrid"), token)
	})

	t.Run("casing and accents canonicalized", func(t *testing.T) {
		token := tax.Encode("madrid", "chamartin", "el viso")
		assert.Equal(t, Token("El Viso, Chamartín, Madrid"), token)
	})

	t.Run("all neighborhoods sentinel", func(t *testing.T) {
		token := tax.EncodeAllNeighborhoods("barcelona")
		assert.Equal(t, Token("Barcelona (Todos los barrios)"), token)
	})
}

func TestCodec_Decode(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	t.Run("sentinel", func(t *testing.T) {
		sel := tax.Decode("Madrid (Todos los barrios)")
		assert.Equal(t, Selection{City: "Madrid", AllNeighborhoods: true}, sel)
	})

	t.Run("triple", func(t *testing.T) {
		sel := tax.Decode("Goya, Salamanca, Madrid")
		assert.Equal(t, Selection{City: "Madrid", District: "Salamanca", Neighborhood: "Goya"}, sel)
	})

	t.Run("pair", func(t *testing.T) {
		sel := tax.Decode("Eixample, Barcelona")
		assert.Equal(t, Selection{City: "Barcelona", District: "Eixample"}, sel)
	})

	t.Run("city alone", func(t *testing.T) {
		sel := tax.Decode("Valencia")
		assert.Equal(t, Selection{City: "Valencia"}, sel)
	})

	t.Run("bare neighborhood resolves city and district", func(t *testing.T) {
		sel := tax.Decode("Goya")
		assert.Equal(t, Selection{City: "Madrid", District: "Salamanca", Neighborhood: "Goya"}, sel)
	})

	t.Run("neighborhood in wrong district falls back to free text", func(t *testing.T) {
		// Goya лежит в Salamanca, не в Centro - тройка невалидна
		sel := tax.Decode("Goya, Centro, Madrid")
		assert.Equal(t, "Madrid", sel.City)
		assert.Equal(t, "Goya, Centro, Madrid", sel.Neighborhood)
	})

	t.Run("empty and whitespace give default city", func(t *testing.T) {
		assert.Equal(t, Selection{City: "Madrid"}, tax.Decode(""))
		assert.Equal(t, Selection{City: "Madrid"}, tax.Decode("   "))
	})

	t.Run("junk is kept as free text neighborhood", func(t *testing.T) {
		sel := tax.Decode("zona fantasma")
		assert.Equal(t, Selection{City: "Madrid", Neighborhood: "zona fantasma"}, sel)
	})

	t.Run("sentinel with unknown city falls through", func(t *testing.T) {
		sel := tax.Decode("Sevilla (Todos los barrios)")
		assert.False(t, sel.AllNeighborhoods)
		assert.Equal(t, "Madrid", sel.City)
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	// Каждая каталожная тройка должна пережить encode -> decode -> encode
	for _, city := range tax.CitiesAvailable() {
		sentinel := tax.EncodeAllNeighborhoods(city)
		assert.Equal(t, sentinel, tax.Decode(sentinel).Token(tax))

		cityToken := tax.Encode(city, "", "")
		assert.Equal(t, cityToken, tax.Decode(cityToken).Token(tax))

		for _, district := range tax.DistrictsOf(city) {
			dToken := tax.Encode(city, district, "")
			assert.Equal(t, dToken, tax.Decode(dToken).Token(tax), "district token %q", dToken)

			for _, n := range tax.NeighborhoodsOf(district, city) {
				nToken := tax.Encode(city, district, n)
				assert.Equal(t, nToken, tax.Decode(nToken).Token(tax), "neighborhood token %q", nToken)
			}
		}
	}
}

func TestParseTokenList(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	t.Run("empty gives default city token", func(t *testing.T) {
		assert.Equal(t, []Token{"Madrid"}, tax.ParseTokenList(""))
	})

	t.Run("single full token wins over splitting", func(t *testing.T) {
		tokens := tax.ParseTokenList("Goya, Salamanca, Madrid")
		assert.Equal(t, []Token{"Goya, Salamanca, Madrid"}, tokens)
	})

	t.Run("greedy grouping of mixed widths", func(t *testing.T) {
		tokens := tax.ParseTokenList("Goya, Salamanca, Madrid, Centro, Madrid, Valencia")
		assert.Equal(t, []Token{
			"Goya, Salamanca, Madrid",
			"Centro, Madrid",
			"Valencia",
		}, tokens)
	})

	t.Run("bare neighborhoods normalized to full tokens", func(t *testing.T) {
		tokens := tax.ParseTokenList("Goya, Sol")
		assert.Equal(t, []Token{
			"Goya, Salamanca, Madrid",
			"Sol, Centro, Madrid",
		}, tokens)
	})

	t.Run("sentinel token in a list", func(t *testing.T) {
		tokens := tax.ParseTokenList("Barcelona (Todos los barrios)")
		assert.Equal(t, []Token{"Barcelona (Todos los barrios)"}, tokens)
	})

	t.Run("unknown segment kept as free text token", func(t *testing.T) {
		tokens := tax.ParseTokenList("zona fantasma, Goya")
		require.Len(t, tokens, 2)
		assert.Equal(t, Token("zona fantasma, Madrid"), tokens[0])
		assert.Equal(t, Token("Goya, Salamanca, Madrid"), tokens[1])
	})
}
