package routes

// Routes package wires every endpoint of the map-api service.
//
// - api.go: API routes (/api/*)
// - routes.go: middleware, health, 404
import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/map-api/app/controllers"
	"github.com/map-api/app/responses"
)

// SetupAllRoutes installs middleware and every route on the router.
func SetupAllRoutes(router *gin.Engine, placeController *controllers.PlaceController, corsOrigins []string) {
	setupMiddleware(router, corsOrigins)

	SetupHealthRoutes(router, placeController)
	SetupAPIRoutes(router, placeController)

	// Catch-all 404
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error: "엔드포인트를 찾을 수 없습니다.",
			Path:  c.Request.URL.Path,
		})
	})
}

// SetupHealthRoutes installs the health check route.
func SetupHealthRoutes(router *gin.Engine, placeController *controllers.PlaceController) {
	router.GET("/health", placeController.HealthCheck)
}

func setupMiddleware(router *gin.Engine, corsOrigins []string) {
	// Uncaught panics become a fixed 500 body; the cause is logged, never echoed
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "내부 서버 오류",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}))

	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
