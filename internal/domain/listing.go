package domain

import (
	"time"

	"github.com/google/uuid"
)

// LatLng - географическая точка для маркеров на карте
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property представляет объявление о продаже или аренде недвижимости
type Property struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	OperationType string     `json:"operation_type" db:"operation_type"`
	Price         int        `json:"price" db:"price"`
	PreviousPrice *int       `json:"previous_price,omitempty" db:"previous_price"`
	Area          *float64   `json:"area,omitempty" db:"area"`
	Bedrooms      int        `json:"bedrooms" db:"bedrooms"`
	Bathrooms     int        `json:"bathrooms" db:"bathrooms"`
	Features      []string   `json:"features" db:"-"`
	City          string     `json:"city" db:"city"`
	District      string     `json:"district" db:"district"`
	Neighborhood  string     `json:"neighborhood" db:"neighborhood"`
	Address       string     `json:"address,omitempty" db:"address"`
	Lat           *float64   `json:"lat,omitempty" db:"lat"`
	Lng           *float64   `json:"lng,omitempty" db:"lng"`
	AgencyID      *uuid.UUID `json:"agency_id,omitempty" db:"agency_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// PricePerArea - цена за квадратный метр; false если площадь неизвестна или нулевая
func (p *Property) PricePerArea() (float64, bool) {
	if p.Area == nil || *p.Area <= 0 {
		return 0, false
	}
	return float64(p.Price) / *p.Area, true
}

// PriceDropPercent - процент снижения цены относительно предыдущей
func (p *Property) PriceDropPercent() float64 {
	if p.PreviousPrice == nil || *p.PreviousPrice <= 0 {
		return 0
	}
	return float64(*p.PreviousPrice-p.Price) / float64(*p.PreviousPrice) * 100
}

// HasFeature проверяет наличие тега характеристики
func (p *Property) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// Agency представляет агентство недвижимости
type Agency struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	City          string    `json:"city" db:"city"`
	District      string    `json:"district" db:"district"`
	Neighborhood  string    `json:"neighborhood" db:"neighborhood"`
	Rating        float64   `json:"rating" db:"rating"`
	ListingsCount int       `json:"listings_count" db:"listings_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Agent представляет агента по недвижимости
type Agent struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	AgencyID     *uuid.UUID `json:"agency_id,omitempty" db:"agency_id"`
	City         string     `json:"city" db:"city"`
	District     string     `json:"district" db:"district"`
	Neighborhood string     `json:"neighborhood" db:"neighborhood"`
	Rating       float64    `json:"rating" db:"rating"`
	DealsCount   int        `json:"deals_count" db:"deals_count"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// NeighborhoodRating - агрегат оценок района по отзывам
type NeighborhoodRating struct {
	City         string    `json:"city" db:"city"`
	Neighborhood string    `json:"neighborhood" db:"neighborhood"`
	AvgScore     float64   `json:"avg_score" db:"avg_score"`
	ReviewCount  int       `json:"review_count" db:"review_count"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// LocationFilter - разрешённая локация, передаваемая в хранилище.
// AllNeighborhoods покрывает весь город независимо от District/Neighborhood.
type LocationFilter struct {
	City             string `json:"city"`
	District         string `json:"district,omitempty"`
	Neighborhood     string `json:"neighborhood,omitempty"`
	AllNeighborhoods bool   `json:"all_neighborhoods,omitempty"`
}
