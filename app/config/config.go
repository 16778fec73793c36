package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and injected; business logic never reads
// the environment directly.
type Config struct {
	Server    ServerConfig
	VWorld    VWorldConfig
	Nominatim NominatimConfig
	CORS      CORSConfig
	Cache     CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	Env  string // development, production
}

// VWorldConfig holds primary geocoder settings.
type VWorldConfig struct {
	URL     string
	Key     string
	Timeout time.Duration
}

// NominatimConfig holds fallback geocoder settings.
type NominatimConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// CORSConfig holds the browser origin allow-list.
type CORSConfig struct {
	Origins []string
}

// CacheConfig holds geocode cache settings. Disabled by default: the service
// is fully stateless between requests unless a cache is opted in.
type CacheConfig struct {
	Enabled  bool
	RedisURL string
	L1Size   int
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("vworld.url", "https://api.vworld.kr/req/address")
	viper.SetDefault("vworld.key", "")
	viper.SetDefault("vworld.timeout", "5s")
	viper.SetDefault("nominatim.url", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("nominatim.user_agent", "map-api-service/1.0 (place discovery)")
	viper.SetDefault("nominatim.timeout", "5s")
	viper.SetDefault("cors.origins", []string{
		"http://34.64.120.99:3000",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.redis_url", "")
	viper.SetDefault("cache.l1_size", 1000)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover a missing config file
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config 파일 읽기 실패: %w", err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("server.port"),
			Env:  viper.GetString("server.env"),
		},
		VWorld: VWorldConfig{
			URL:     viper.GetString("vworld.url"),
			Key:     viper.GetString("vworld.key"),
			Timeout: viper.GetDuration("vworld.timeout"),
		},
		Nominatim: NominatimConfig{
			URL:       viper.GetString("nominatim.url"),
			UserAgent: viper.GetString("nominatim.user_agent"),
			Timeout:   viper.GetDuration("nominatim.timeout"),
		},
		CORS: CORSConfig{
			Origins: viper.GetStringSlice("cors.origins"),
		},
		Cache: CacheConfig{
			Enabled:  viper.GetBool("cache.enabled"),
			RedisURL: viper.GetString("cache.redis_url"),
			L1Size:   viper.GetInt("cache.l1_size"),
		},
	}, nil
}
