package dto

import (
	"github.com/habitaclick/search-service/internal/domain"
)

// Виды маршрутизации результата. Ровно один лист в выборе ведёт на
// детальную страницу, больше одного - на плоский список.
const (
	RouteNeighborhoodDetail = "neighborhood-detail"
	RouteDistrictDetail     = "district-detail"
	RouteCityDetail         = "city-detail"
	RouteResultsList        = "results-list"
)

// RouteDTO - решение навигации для выбора локаций
type RouteDTO struct {
	Kind  string `json:"kind"`
	Token string `json:"token,omitempty"`
}

// DomainStateDTO - состояние одного домена поиска
type DomainStateDTO struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

// SearchResponse - ответ /search: результат активного домена, состояния
// всех трёх доменов и решение маршрутизации
type SearchResponse struct {
	Route  RouteDTO                  `json:"route"`
	Tokens []string                  `json:"tokens"`
	Result *domain.SearchResultSet   `json:"result"`
	States map[string]DomainStateDTO `json:"states"`
	Cache  string                    `json:"cache"` // fresh | stale | miss
	Query  string                    `json:"query"` // канонический query-string для закладки
}

// AutocompleteResponse - ответ /autocomplete
type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ResolveResponse - ответ /locations/resolve
type ResolveResponse struct {
	Token            string `json:"token"`
	City             string `json:"city"`
	District         string `json:"district,omitempty"`
	Neighborhood     string `json:"neighborhood,omitempty"`
	AllNeighborhoods bool   `json:"all_neighborhoods,omitempty"`
}

// CitiesResponse - ответ /locations/cities
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// DistrictsResponse - ответ /locations/districts
type DistrictsResponse struct {
	City      string   `json:"city"`
	Districts []string `json:"districts"`
}

// NeighborhoodsResponse - ответ /locations/neighborhoods
type NeighborhoodsResponse struct {
	City          string   `json:"city"`
	District      string   `json:"district,omitempty"`
	Neighborhoods []string `json:"neighborhoods"`
}

// GeocodeResponse - ответ /geocode
type GeocodeResponse struct {
	Address string        `json:"address"`
	Point   domain.LatLng `json:"point"`
}

// MarkerResponse - ответ /geocode/marker. Snapped - точка заменена общим
// маркером своей geohash-ячейки
type MarkerResponse struct {
	Point   domain.LatLng `json:"point"`
	Snapped bool          `json:"snapped"`
}

// RatingResponse - ответ /neighborhoods/:city/:name/rating
type RatingResponse struct {
	Rating *domain.NeighborhoodRating `json:"rating"`
}
