package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/habitaclick/search-service/internal/pkg/errors"
	"github.com/habitaclick/search-service/internal/taxonomy"
	"github.com/habitaclick/search-service/internal/usecase"
)

func newLocationUseCase(t *testing.T) *usecase.LocationUseCase {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	return usecase.NewLocationUseCase(tax, zap.NewNop())
}

func TestLocationUseCase_Districts(t *testing.T) {
	uc := newLocationUseCase(t)

	t.Run("known city", func(t *testing.T) {
		resp, err := uc.Districts("madrid")
		require.NoError(t, err)
		assert.Equal(t, "Madrid", resp.City)
		assert.Contains(t, resp.Districts, "Salamanca")
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := uc.Districts("Sevilla")
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCityNotFound.Code, appErr.Code)
	})
}

func TestLocationUseCase_Neighborhoods(t *testing.T) {
	uc := newLocationUseCase(t)

	t.Run("whole city without district", func(t *testing.T) {
		resp, err := uc.Neighborhoods("Madrid", "")
		require.NoError(t, err)
		assert.Empty(t, resp.District)
		assert.Contains(t, resp.Neighborhoods, "Goya")
		assert.Contains(t, resp.Neighborhoods, "Aravaca")
	})

	t.Run("single district", func(t *testing.T) {
		resp, err := uc.Neighborhoods("Madrid", "salamanca")
		require.NoError(t, err)
		assert.Equal(t, "Salamanca", resp.District)
		assert.Equal(t, []string{"Recoletos", "Goya", "Fuente del Berro", "Guindalera", "Lista", "Castellana"}, resp.Neighborhoods)
	})

	t.Run("unknown district is empty not an error", func(t *testing.T) {
		resp, err := uc.Neighborhoods("Madrid", "Triana")
		require.NoError(t, err)
		assert.Empty(t, resp.Neighborhoods)
	})
}

func TestLocationUseCase_Resolve(t *testing.T) {
	uc := newLocationUseCase(t)

	t.Run("canonicalizes messy input", func(t *testing.T) {
		resp := uc.Resolve("el viso")
		assert.Equal(t, "El Viso, Chamartín, Madrid", resp.Token)
		assert.Equal(t, "Madrid", resp.City)
		assert.Equal(t, "Chamartín", resp.District)
		assert.Equal(t, "El Viso", resp.Neighborhood)
	})

	t.Run("sentinel", func(t *testing.T) {
		resp := uc.Resolve("Barcelona (Todos los barrios)")
		assert.True(t, resp.AllNeighborhoods)
		assert.Equal(t, "Barcelona", resp.City)
	})

	t.Run("junk never fails", func(t *testing.T) {
		resp := uc.Resolve("zona fantasma")
		assert.Equal(t, "Madrid", resp.City)
		assert.Equal(t, "zona fantasma", resp.Neighborhood)
	})
}
