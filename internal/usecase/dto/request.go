package dto

// SearchQuery - сырые параметры строки запроса /search. Форма параметров
// фиксирована контрактом закладок: neighborhoods, operationType, priceMin,
// priceMax, bedrooms, bathrooms, features, sortBy.
type SearchQuery struct {
	Domain        string `query:"domain" validate:"omitempty,oneof=properties agencies agents"`
	Neighborhoods string `query:"neighborhoods"`
	OperationType string `query:"operationType" validate:"omitempty,oneof=Venta Alquiler"`
	PriceMin      string `query:"priceMin"`
	PriceMax      string `query:"priceMax"`
	Bedrooms      string `query:"bedrooms"`
	Bathrooms     string `query:"bathrooms"`
	Features      string `query:"features"`
	SortBy        string `query:"sortBy" validate:"omitempty,oneof=newest price-asc price-per-area price-drop"`
	Page          int    `query:"page" validate:"omitempty,min=1"`
	Limit         int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// AutocompleteQuery - параметры /autocomplete
type AutocompleteQuery struct {
	Query string `query:"q"`
	City  string `query:"city" validate:"required"`
}

// ResolveQuery - параметры /locations/resolve
type ResolveQuery struct {
	Token string `query:"token" validate:"required"`
}

// GeocodeRequest - тело запроса /geocode
type GeocodeRequest struct {
	Address string `json:"address" validate:"required,min=3"`
}

// MarkerQuery - параметры /geocode/marker
type MarkerQuery struct {
	Lat float64 `query:"lat" validate:"latitude"`
	Lng float64 `query:"lng" validate:"longitude"`
}
