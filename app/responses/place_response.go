package responses

import "github.com/map-api/app/models"

// GeocodingInfo describes the provider chain behind the returned coordinates.
type GeocodingInfo struct {
	Provider string `json:"provider"`
	Fallback string `json:"fallback"`
}

// PlacesResponse is the full-success batch envelope.
type PlacesResponse struct {
	Success       bool                 `json:"success"`
	Places        []models.PlaceOutput `json:"places"`
	Count         int                  `json:"count"`
	Source        string               `json:"source"`
	GeocodingInfo *GeocodingInfo       `json:"geocoding_info,omitempty"`
}

// PartialPlacesResponse is the degraded-success batch envelope: still HTTP 200
// and still carrying the resolved subset, but flagged success:false with the
// number of dropped items.
type PartialPlacesResponse struct {
	Success     bool                 `json:"success"`
	Error       string               `json:"error"`
	Places      []models.PlaceOutput `json:"places"`
	Count       int                  `json:"count"`
	FailedCount int                  `json:"failed_count"`
	Source      string               `json:"source"`
}

// GeocodeResponse is the single-address envelope. Coordinates is null and
// Success false when neither provider found a match; that case is HTTP 200,
// not an HTTP error.
type GeocodeResponse struct {
	Success          bool                `json:"success"`
	Coordinates      *models.Coordinates `json:"coordinates"`
	Address          string              `json:"address,omitempty"`
	FormattedAddress string              `json:"formatted_address,omitempty"`
	GoogleMapsURL    string              `json:"googleMapsUrl,omitempty"`
	Error            string              `json:"error,omitempty"`
}

// SearchPlacesResponse is the keyword search envelope.
type SearchPlacesResponse struct {
	Places         []models.PlaceOutput `json:"places"`
	Success        bool                 `json:"success"`
	Count          int                  `json:"count"`
	Keyword        string               `json:"keyword"`
	SearchLocation string               `json:"searchLocation"`
	Source         string               `json:"source"`
	Note           string               `json:"note,omitempty"`
}

// PlaceDetailResponse is the single place detail envelope.
type PlaceDetailResponse struct {
	Success bool               `json:"success"`
	Place   models.PlaceOutput `json:"place"`
}

// HealthCheckResponse reports service liveness and the geocoder chain.
type HealthCheckResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Geocoding string `json:"geocoding"`
}

// ErrorResponse is the generic error body. Details carries the underlying
// error message only where the original API exposed it.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
