package requests

import "github.com/map-api/app/models"

// ChatPlacesRequest is the chatbot batch shape: places wrapped in an object.
// binding:"required" rejects a missing or non-array field with 400.
type ChatPlacesRequest struct {
	Places []models.PlaceInput `json:"places" binding:"required"`
}

// GeocodeRequest is the single-address geocoding shape.
type GeocodeRequest struct {
	Address string `json:"address" binding:"required"`
}
