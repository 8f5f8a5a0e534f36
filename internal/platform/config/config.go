package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config reúne lo que el servicio lee del entorno.
type Config struct {
	Port string

	// DB_DSN vacío => repos in-memory (modo dev).
	DBDSN string

	Auth AuthConfig

	// Zona donde se evalúan "hoy" y las franjas horarias.
	Location *time.Location

	CORSOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int
}

type AuthConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Load lee .env si existe (no es error que falte) y luego el entorno.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv permite inyectar el lookup (tests).
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:  "8080",
		DBDSN: strings.TrimSpace(getenv("DB_DSN")),
		Auth: AuthConfig{
			BaseURL: strings.TrimSpace(getenv("AUTH_BASE_URL")),
			APIKey:  strings.TrimSpace(getenv("AUTH_API_KEY")),
			Timeout: 5 * time.Second,
		},
		Location:       time.Local,
		CORSOrigins:    []string{"*"},
		RateLimitRPS:   5,
		RateLimitBurst: 10,
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		cfg.Port = v
	}

	if v := strings.TrimSpace(getenv("APP_TIMEZONE")); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Location = loc
	}

	if v := strings.TrimSpace(getenv("AUTH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Auth.Timeout = d
	}

	if v := strings.TrimSpace(getenv("CORS_ORIGINS")); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}

	if v := strings.TrimSpace(getenv("RATE_LIMIT_RPS")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, err
		}
		cfg.RateLimitRPS = n
	}
	if v := strings.TrimSpace(getenv("RATE_LIMIT_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, err
		}
		cfg.RateLimitBurst = n
	}

	return cfg, nil
}

// AuthEnabled: sin proveedor configurado se usa X-Debug-User-ID.
func (c Config) AuthEnabled() bool {
	return c.Auth.BaseURL != "" && c.Auth.APIKey != ""
}
