package geocode

import (
	"context"
	"errors"
)

// Result is the outcome of resolving one address. It lives for the duration of
// a single request and is never persisted.
type Result struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

// Provider resolves a free-text address into coordinates.
type Provider interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

var (
	// ErrNoAddress is returned when there is no usable address to resolve.
	ErrNoAddress = errors.New("주소 정보가 없습니다")

	// ErrNoMatch is returned by a provider that answered but found nothing.
	ErrNoMatch = errors.New("좌표를 찾을 수 없습니다")

	// ErrGeocodeFailed is returned when every provider has been exhausted.
	ErrGeocodeFailed = errors.New("지오코딩에 실패했습니다")
)
