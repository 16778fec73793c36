package utils

import (
	"fmt"
	"net/url"

	"github.com/map-api/app/models"
)

// GoogleMapsURL builds a Google Maps deep link for a place. With coordinates
// the link targets the exact point; without, it falls back to a name+address
// text search.
func GoogleMapsURL(name, address string, coords *models.Coordinates) string {
	if coords != nil {
		return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", coords.Lat, coords.Lng)
	}
	query := url.QueryEscape(name + " " + address)
	return "https://www.google.com/maps/search/?api=1&query=" + query
}
