package repository

import (
	"context"

	"github.com/habitaclick/search-service/internal/domain"
)

// GeocodeRepository определяет внешний геокодер. Поиск никогда не зависит
// от успеха геокодирования - координаты нужны только для маркеров на карте.
type GeocodeRepository interface {
	// Geocode возвращает координаты адреса; (nil, nil) если адрес не найден
	Geocode(ctx context.Context, address string) (*domain.LatLng, error)
}
