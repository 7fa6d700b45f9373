package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	DataFile            string `env:"SURVEY_DATA_FILE" envDefault:"moda.xlsx"`
	DataSheet           string `env:"SURVEY_SHEET"`
	CatalogFile         string `env:"SURVEY_CATALOG"`
	DatabaseURL         string `env:"DATABASE_URL"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds     int    `env:"CACHE_TTL_SECONDS" envDefault:"300"`
	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	UploadRateLimit     int    `env:"UPLOAD_RATE_LIMIT" envDefault:"10"`
	UploadRateWindowMin int    `env:"UPLOAD_RATE_WINDOW_MINUTES" envDefault:"60"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
