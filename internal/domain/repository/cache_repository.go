package repository

import (
	"context"
	"time"

	"github.com/habitaclick/search-service/internal/domain"
)

// CacheRepository определяет методы для работы с внешним кешем (Redis)
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRating получает агрегат оценок района; (nil, nil) при промахе
	GetRating(ctx context.Context, city, neighborhood string) (*domain.NeighborhoodRating, error)

	// SetRating сохраняет агрегат оценок района
	SetRating(ctx context.Context, rating *domain.NeighborhoodRating, ttl time.Duration) error

	// GetGeocode получает координаты по нормализованному адресу; (nil, nil) при промахе
	GetGeocode(ctx context.Context, address string) (*domain.LatLng, error)

	// SetGeocode сохраняет координаты по адресу и по geohash-ячейке
	SetGeocode(ctx context.Context, address string, point *domain.LatLng, ttl time.Duration) error

	// GetGeocodeCell получает координаты общего маркера geohash-ячейки,
	// в которую попадает точка; (nil, nil) при промахе
	GetGeocodeCell(ctx context.Context, point domain.LatLng) (*domain.LatLng, error)
}
