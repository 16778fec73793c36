package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/map-api/app/config"
	"github.com/map-api/app/controllers"
	"github.com/map-api/app/services"
	"github.com/map-api/internal/geocode"
	"github.com/map-api/internal/normalizer"
	"github.com/map-api/routes"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Cannot load configuration:", err)
	}

	// 2. Initialize logger
	logger := initLogger(cfg.Server.Env)
	defer logger.Sync()

	logger.Info("Starting Map API Service")

	// 3. Initialize geocoding chain
	addressNormalizer := normalizer.NewAddressNormalizer()

	vworldClient := geocode.NewVWorldClient(geocode.VWorldConfig{
		BaseURL: cfg.VWorld.URL,
		APIKey:  cfg.VWorld.Key,
		Timeout: cfg.VWorld.Timeout,
	})

	nominatimClient := geocode.NewNominatimClient(geocode.NominatimConfig{
		BaseURL:   cfg.Nominatim.URL,
		UserAgent: cfg.Nominatim.UserAgent,
		Timeout:   cfg.Nominatim.Timeout,
	})

	resolver := geocode.NewResolver(addressNormalizer, vworldClient, nominatimClient, logger)

	// 4. Initialize geocode cache (opt-in; without it the service is stateless)
	geocodeCache := initCache(cfg, logger)
	if geocodeCache != nil {
		defer geocodeCache.Close()
	}

	// 5. Initialize services
	geocodeService := services.NewGeocodeService(resolver, geocodeCache, logger)
	placeService := services.NewPlaceService(geocodeService, logger)

	// 6. Initialize controller
	placeController := controllers.NewPlaceController(placeService, geocodeService, logger)

	// 7. Initialize Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 8. Setup routes
	routes.SetupAllRoutes(router, placeController, cfg.CORS.Origins)

	// 9. Start server
	logger.Info("Map API Service starting",
		zap.String("port", cfg.Server.Port),
		zap.String("vworld_url", cfg.VWorld.URL),
		zap.String("nominatim_url", cfg.Nominatim.URL))

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// initLogger creates the structured logger for the configured environment.
func initLogger(env string) *zap.Logger {
	var zapConfig zap.Config
	if env == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}

	return logger
}

// initCache wires the geocode cache layers. LRU only when Redis is not
// configured, LRU L1 + Redis L2 when it is, nil when caching is disabled.
func initCache(cfg *config.Config, logger *zap.Logger) services.IGeocodeCache {
	if !cfg.Cache.Enabled {
		return nil
	}

	memoryCache, err := services.NewMemoryCacheService(cfg.Cache.L1Size, logger)
	if err != nil {
		logger.Fatal("Failed to initialize memory cache", zap.Error(err))
	}

	if cfg.Cache.RedisURL == "" {
		return memoryCache
	}

	redisCache, err := services.NewRedisCacheService(cfg.Cache.RedisURL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
	}

	return services.NewHybridCacheService(memoryCache, redisCache, logger)
}
