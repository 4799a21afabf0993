package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDomain = New(
		"INVALID_DOMAIN",
		"Unknown search domain: must be properties, agencies or agents",
		http.StatusBadRequest,
	)

	ErrInvalidOperationType = New(
		"INVALID_OPERATION_TYPE",
		"Operation type must be Venta or Alquiler",
		http.StatusBadRequest,
	)

	ErrInvalidSortKey = New(
		"INVALID_SORT_KEY",
		"Unknown sort key",
		http.StatusBadRequest,
	)

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City is not part of the location catalog",
		http.StatusNotFound,
	)

	ErrRatingNotFound = New(
		"RATING_NOT_FOUND",
		"No rating aggregate for this neighborhood",
		http.StatusNotFound,
	)

	ErrGeocodeNotFound = New(
		"GEOCODE_NOT_FOUND",
		"Address could not be geocoded",
		http.StatusNotFound,
	)

	ErrSearchFailed = New(
		"SEARCH_FAILED",
		"Search failed after retries",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
