package repository

import (
	"context"

	"github.com/habitaclick/search-service/internal/domain"
)

// PropertyRepository определяет методы выборки объявлений
type PropertyRepository interface {
	// FetchProperties возвращает объявления по локациям и фильтру.
	// Семантика выборки и сортировки совпадает со скомпилированным
	// предикатом/компаратором domain.Compile.
	FetchProperties(ctx context.Context, locations []domain.LocationFilter, filter domain.PropertyFilter, limit, offset int) ([]domain.Property, error)
}

// AgencyRepository определяет методы выборки агентств
type AgencyRepository interface {
	// FetchAgencies возвращает агентства, работающие в локациях,
	// по убыванию рейтинга
	FetchAgencies(ctx context.Context, locations []domain.LocationFilter, limit, offset int) ([]domain.Agency, error)
}

// AgentRepository определяет методы выборки агентов
type AgentRepository interface {
	// FetchAgents возвращает агентов, работающих в локациях,
	// по убыванию рейтинга
	FetchAgents(ctx context.Context, locations []domain.LocationFilter, limit, offset int) ([]domain.Agent, error)
}

// RatingRepository определяет методы чтения агрегатов оценок районов
type RatingRepository interface {
	// GetNeighborhoodRating возвращает агрегат по отзывам района;
	// (nil, nil) если отзывов нет
	GetNeighborhoodRating(ctx context.Context, city, neighborhood string) (*domain.NeighborhoodRating, error)
}
