package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/map-api/app/controllers"
)

// SetupAPIRoutes installs the /api routes.
func SetupAPIRoutes(router *gin.Engine, placeController *controllers.PlaceController) {
	api := router.Group("/api")
	{
		// Batch geocoding entry points: chatbot sends {places: [...]},
		// the external backend posts a bare array
		api.POST("/chat-places", placeController.ChatPlaces)
		api.POST("/receive-places", placeController.ReceivePlaces)

		// Single-address geocoding
		api.POST("/geocoding", placeController.Geocode)

		// Map search box and pin detail
		api.GET("/places/search", placeController.SearchPlaces)
		api.GET("/place/:id", placeController.PlaceDetail)
	}
}
