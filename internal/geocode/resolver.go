package geocode

import (
	"context"

	"github.com/map-api/internal/normalizer"
	"go.uber.org/zap"
)

// Resolver runs the primary→secondary fallback chain over a normalized
// address. Any primary outcome that is not a definitive hit (bad status, empty
// result, timeout, transport error) triggers the fallback; the causes are
// deliberately not distinguished.
type Resolver struct {
	normalizer *normalizer.AddressNormalizer
	primary    Provider
	secondary  Provider
	logger     *zap.Logger
}

// NewResolver creates a resolver over the two providers.
func NewResolver(n *normalizer.AddressNormalizer, primary, secondary Provider, logger *zap.Logger) *Resolver {
	return &Resolver{
		normalizer: n,
		primary:    primary,
		secondary:  secondary,
		logger:     logger,
	}
}

// Resolve geocodes rawAddress. An empty address fails immediately without a
// network call. Provider errors never escape: both providers exhausted means
// ErrGeocodeFailed, logged with the attempted address.
func (r *Resolver) Resolve(ctx context.Context, rawAddress string) (*Result, error) {
	if rawAddress == "" {
		return nil, ErrNoAddress
	}

	address := r.normalizer.Normalize(rawAddress)
	if address == "" {
		return nil, ErrNoAddress
	}

	result, err := r.primary.Geocode(ctx, address)
	if err == nil {
		return result, nil
	}

	r.logger.Debug("Primary geocoder missed, falling back",
		zap.String("address", address),
		zap.Error(err))

	result, err = r.secondary.Geocode(ctx, address)
	if err == nil {
		return result, nil
	}

	r.logger.Warn("Geocoding failed on both providers",
		zap.String("address", address),
		zap.Error(err))

	return nil, ErrGeocodeFailed
}
