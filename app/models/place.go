package models

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceInput is one requested place to geocode. Two upstream producers send
// this shape: the chatbot backend wraps a list in {"places": [...]}, the
// external backend posts a bare array. The chatbot sends features as a list,
// the external backend sends feature as one comma-joined string.
type PlaceInput struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Phone       *string  `json:"phone,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	OpenHours   *string  `json:"openHours,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Feature     string   `json:"feature,omitempty"`
}

// PlaceInfo is the descriptive bundle shown when a pin is clicked.
type PlaceInfo struct {
	Phone       *string  `json:"phone"`
	Rating      *float64 `json:"rating"`
	OpenHours   *string  `json:"openHours"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PinOptions is map-marker presentation metadata derived from the category.
type PinOptions struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// PlaceOutput is the response record for one successfully geocoded input.
// Inputs that fail geocoding produce no PlaceOutput at all; their only trace
// is the aggregate failed count.
type PlaceOutput struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Location      string      `json:"location"`
	Address       string      `json:"address"`
	Coordinates   Coordinates `json:"coordinates"`
	Category      string      `json:"category"`
	Info          PlaceInfo   `json:"info"`
	GoogleMapsURL string      `json:"googleMapsUrl"`
	PinOptions    PinOptions  `json:"pinOptions"`
}
