package ports

import "context"

// CityFetcher retrieves the GeoJSON feature collection of cities for a given
// year from the upstream GeoServer WFS endpoint.
type CityFetcher interface {
	FetchCities(ctx context.Context, year int) ([]byte, error)
}

// GeoCache stores WFS responses keyed by year.
type GeoCache interface {
	// Get returns the cached payload for year, or ok=false on a miss.
	Get(ctx context.Context, year int) (payload []byte, ok bool, err error)
	Set(ctx context.Context, year int, payload []byte) error
}

// GeoService serves city GeoJSON by year, caching upstream responses.
type GeoService interface {
	CitiesByYear(ctx context.Context, year string) ([]byte, error)
}
