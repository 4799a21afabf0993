package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
	"github.com/habitaclick/search-service/internal/taxonomy"
)

// geohashPrecision - размер ячейки для кеша геокодирования (~150 м):
// адреса в одной ячейке делят один маркер на карте
const geohashPrecision = 7

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetRating получает агрегат оценок района из кеша
func (r *cacheRepository) GetRating(ctx context.Context, city, neighborhood string) (*domain.NeighborhoodRating, error) {
	data, err := r.Get(ctx, ratingKey(city, neighborhood))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var rating domain.NeighborhoodRating
	if err := json.Unmarshal(data, &rating); err != nil {
		r.logger.Error("Failed to unmarshal rating from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal rating: %w", err)
	}
	return &rating, nil
}

// SetRating сохраняет агрегат оценок района в кеше
func (r *cacheRepository) SetRating(ctx context.Context, rating *domain.NeighborhoodRating, ttl time.Duration) error {
	data, err := json.Marshal(rating)
	if err != nil {
		r.logger.Error("Failed to marshal rating", zap.Error(err))
		return fmt.Errorf("marshal rating: %w", err)
	}
	return r.Set(ctx, ratingKey(rating.City, rating.Neighborhood), data, ttl)
}

// GetGeocode получает координаты по нормализованному адресу
func (r *cacheRepository) GetGeocode(ctx context.Context, address string) (*domain.LatLng, error) {
	data, err := r.Get(ctx, geocodeKey(address))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var point domain.LatLng
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Error("Failed to unmarshal geocode from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}
	return &point, nil
}

// SetGeocode сохраняет координаты дважды: по адресу и по geohash-ячейке,
// чтобы соседние адреса переиспользовали маркер
func (r *cacheRepository) SetGeocode(ctx context.Context, address string, point *domain.LatLng, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		r.logger.Error("Failed to marshal geocode", zap.Error(err))
		return fmt.Errorf("marshal geocode: %w", err)
	}

	if err := r.Set(ctx, geocodeKey(address), data, ttl); err != nil {
		return err
	}

	return r.Set(ctx, cellKey(point.Lat, point.Lng), data, ttl)
}

// GetGeocodeCell получает координаты общего маркера по geohash-ячейке точки
func (r *cacheRepository) GetGeocodeCell(ctx context.Context, point domain.LatLng) (*domain.LatLng, error) {
	data, err := r.Get(ctx, cellKey(point.Lat, point.Lng))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var marker domain.LatLng
	if err := json.Unmarshal(data, &marker); err != nil {
		r.logger.Error("Failed to unmarshal cell marker from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal cell marker: %w", err)
	}
	return &marker, nil
}

func ratingKey(city, neighborhood string) string {
	return fmt.Sprintf("rating:%s:%s", taxonomy.Fold(city), taxonomy.Fold(neighborhood))
}

func geocodeKey(address string) string {
	return "geocode:addr:" + taxonomy.Fold(address)
}

func cellKey(lat, lng float64) string {
	return "geocode:cell:" + geohash.EncodeWithPrecision(lat, lng, geohashPrecision)
}
