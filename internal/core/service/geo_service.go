package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cartowiki/webapp/internal/api/metrics"
	"github.com/cartowiki/webapp/internal/core/domain"
	"github.com/cartowiki/webapp/internal/core/ports"
)

// GeoService serves the city GeoJSON for a given year, fronting the upstream
// GeoServer WFS endpoint with a cache. Upstream responses are passed through
// untouched.
type GeoService struct {
	fetcher ports.CityFetcher
	cache   ports.GeoCache
	logger  zerolog.Logger
}

func NewGeoService(fetcher ports.CityFetcher, cache ports.GeoCache, logger zerolog.Logger) *GeoService {
	return &GeoService{fetcher: fetcher, cache: cache, logger: logger}
}

// CitiesByYear returns the GeoJSON feature collection of cities for year.
// Negative years are legal: the atlas reaches back before year zero.
func (s *GeoService) CitiesByYear(ctx context.Context, year string) ([]byte, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return nil, domain.ErrInvalidYear
	}

	if payload, ok, err := s.cache.Get(ctx, y); err != nil {
		// A broken cache degrades to a plain proxy.
		s.logger.Warn().Err(err).Int("year", y).Msg("geo cache read failed")
	} else if ok {
		metrics.GeoCacheTotal.WithLabelValues("hit").Inc()
		return payload, nil
	} else {
		metrics.GeoCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	payload, err := s.fetcher.FetchCities(ctx, y)
	if err != nil {
		metrics.GeoUpstreamRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Int("year", y).Msg("geoserver fetch failed")
		return nil, err
	}
	metrics.GeoUpstreamRequestsTotal.WithLabelValues("ok").Inc()
	metrics.GeoUpstreamDuration.Observe(time.Since(start).Seconds())

	if err := s.cache.Set(ctx, y, payload); err != nil {
		s.logger.Warn().Err(err).Int("year", y).Msg("geo cache write failed")
	}

	return payload, nil
}
