package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// server
	ServerPort  string `env:"SERVER_PORT" envDefault:"8000"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"github-heatmap"`

	// upstream GitHub GraphQL API
	GitHubGraphQLURL     string `env:"GITHUB_GRAPHQL_URL" envDefault:"https://api.github.com/graphql"`
	GitHubTimeoutSeconds int    `env:"GITHUB_TIMEOUT_SECONDS" envDefault:"10"`
	GitHubUserAgent      string `env:"GITHUB_USER_AGENT" envDefault:"github-heatmap"`
	HeatmapWindowDays    int    `env:"HEATMAP_WINDOW_DAYS" envDefault:"365"`

	// level thresholds, count -> level bucket boundaries.
	// level 1 covers [1, Level1Max], level 2 (Level1Max, Level2Max],
	// level 3 (Level2Max, Level3Max], level 4 everything above.
	HeatmapLevel1Max int `env:"HEATMAP_LEVEL1_MAX" envDefault:"2"`
	HeatmapLevel2Max int `env:"HEATMAP_LEVEL2_MAX" envDefault:"5"`
	HeatmapLevel3Max int `env:"HEATMAP_LEVEL3_MAX" envDefault:"9"`

	// redis, only used by the rate limit middleware
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"ghheat"`

	// rate limiting for GET /heatmap/me
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitWindow  int  `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitMax     int  `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"30"`

	// observability
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT" envDefault:""`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"0.1"`
	ServiceVersion  string  `env:"SERVICE_VERSION" envDefault:"dev"`

	// logging
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if !(Cfg.HeatmapLevel1Max > 0 &&
		Cfg.HeatmapLevel1Max < Cfg.HeatmapLevel2Max &&
		Cfg.HeatmapLevel2Max < Cfg.HeatmapLevel3Max) {
		log.Fatal("heatmap thresholds must satisfy 0 < LEVEL1_MAX < LEVEL2_MAX < LEVEL3_MAX")
	}

	if Cfg.HeatmapWindowDays <= 0 {
		log.Fatal("HEATMAP_WINDOW_DAYS must be positive")
	}

	if Cfg.GitHubGraphQLURL == "" {
		log.Fatal("GITHUB_GRAPHQL_URL is required")
	}

	if Cfg.RateLimitEnabled && Cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required when RATE_LIMIT_ENABLED is set")
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
