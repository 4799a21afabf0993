package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Search   SearchConfig
	Geocoder GeocoderConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ResultStaleTime time.Duration
	ResultGCTime    time.Duration
	GeocodeCacheTTL time.Duration
	RatingsCacheTTL time.Duration
}

type SearchConfig struct {
	MaxRetries     int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	Prefetch       bool
	DefaultLimit   int
}

type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled          bool
	RefreshQueueSize int
	SweepInterval    time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine when everything comes from the environment
		if !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ResultStaleTime: time.Duration(viper.GetInt("RESULT_STALE_TIME")) * time.Second,
			ResultGCTime:    time.Duration(viper.GetInt("RESULT_GC_TIME")) * time.Second,
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			RatingsCacheTTL: time.Duration(viper.GetInt("RATINGS_CACHE_TTL")) * time.Second,
		},
		Search: SearchConfig{
			MaxRetries:     viper.GetInt("SEARCH_MAX_RETRIES"),
			RetryBaseDelay: time.Duration(viper.GetInt("SEARCH_RETRY_BASE_DELAY")) * time.Millisecond,
			RetryMaxDelay:  time.Duration(viper.GetInt("SEARCH_RETRY_MAX_DELAY")) * time.Millisecond,
			Prefetch:       viper.GetBool("SEARCH_PREFETCH"),
			DefaultLimit:   viper.GetInt("SEARCH_DEFAULT_LIMIT"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODER_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODER_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:          viper.GetBool("WORKER_ENABLED"),
			RefreshQueueSize: viper.GetInt("WORKER_REFRESH_QUEUE_SIZE"),
			SweepInterval:    time.Duration(viper.GetInt("WORKER_SWEEP_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Cache.ResultStaleTime == 0 {
		cfg.Cache.ResultStaleTime = 5 * time.Minute
	}
	if cfg.Cache.ResultGCTime == 0 {
		cfg.Cache.ResultGCTime = 30 * time.Minute
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.RatingsCacheTTL == 0 {
		cfg.Cache.RatingsCacheTTL = 30 * time.Minute
	}
	if cfg.Search.MaxRetries == 0 {
		cfg.Search.MaxRetries = 2
	}
	if cfg.Search.RetryBaseDelay == 0 {
		cfg.Search.RetryBaseDelay = 200 * time.Millisecond
	}
	if cfg.Search.RetryMaxDelay == 0 {
		cfg.Search.RetryMaxDelay = 2 * time.Second
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 40
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "habitaclick-search-service/1.0"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10 * time.Second
	}
	if cfg.Worker.RefreshQueueSize == 0 {
		cfg.Worker.RefreshQueueSize = 256
	}
	if cfg.Worker.SweepInterval == 0 {
		cfg.Worker.SweepInterval = 5 * time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
