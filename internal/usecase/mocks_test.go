package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/habitaclick/search-service/internal/domain"
)

// MockPropertyRepository is a mock of PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FetchProperties(ctx context.Context, locations []domain.LocationFilter, filter domain.PropertyFilter, limit, offset int) ([]domain.Property, error) {
	args := m.Called(ctx, locations, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

// MockAgencyRepository is a mock of AgencyRepository
type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) FetchAgencies(ctx context.Context, locations []domain.LocationFilter, limit, offset int) ([]domain.Agency, error) {
	args := m.Called(ctx, locations, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Agency), args.Error(1)
}

// MockAgentRepository is a mock of AgentRepository
type MockAgentRepository struct {
	mock.Mock
}

func (m *MockAgentRepository) FetchAgents(ctx context.Context, locations []domain.LocationFilter, limit, offset int) ([]domain.Agent, error) {
	args := m.Called(ctx, locations, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Agent), args.Error(1)
}

// MockRatingRepository is a mock of RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) GetNeighborhoodRating(ctx context.Context, city, neighborhood string) (*domain.NeighborhoodRating, error) {
	args := m.Called(ctx, city, neighborhood)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NeighborhoodRating), args.Error(1)
}

// MockGeocodeRepository is a mock of GeocodeRepository
type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) Geocode(ctx context.Context, address string) (*domain.LatLng, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LatLng), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetRating(ctx context.Context, city, neighborhood string) (*domain.NeighborhoodRating, error) {
	args := m.Called(ctx, city, neighborhood)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NeighborhoodRating), args.Error(1)
}

func (m *MockCacheRepository) SetRating(ctx context.Context, rating *domain.NeighborhoodRating, ttl time.Duration) error {
	args := m.Called(ctx, rating, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, address string) (*domain.LatLng, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LatLng), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, address string, point *domain.LatLng, ttl time.Duration) error {
	args := m.Called(ctx, address, point, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocodeCell(ctx context.Context, point domain.LatLng) (*domain.LatLng, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LatLng), args.Error(1)
}
