package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultJWTTTL           = "24h"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultCookingTimeMin   = 1
	defaultCookingTimeMax   = 600
	defaultAmountMin        = 1
	defaultAmountMax        = 10000
	defaultPageSize         = 6
	defaultDatabaseURL      = "foodgram.db"
	defaultMediaDir         = "media"
	defaultShoppingCartFile = "shopping_cart.txt"
)

// Config is the full runtime configuration, loaded from environment
// variables. Validation bounds and the shopping-cart filename are
// configuration, never hardcoded in the services.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	CookingTimeMin int
	CookingTimeMax int
	AmountMin      int
	AmountMax      int

	PageSize             int
	MediaDir             string
	ShoppingCartFilename string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" && !isProdLike(cfg.AppEnv) {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookingTimeMin, err = parseIntEnv("COOKING_TIME_MIN", defaultCookingTimeMin)
	if err != nil {
		return nil, err
	}
	cfg.CookingTimeMax, err = parseIntEnv("COOKING_TIME_MAX", defaultCookingTimeMax)
	if err != nil {
		return nil, err
	}
	cfg.AmountMin, err = parseIntEnv("AMOUNT_MIN", defaultAmountMin)
	if err != nil {
		return nil, err
	}
	cfg.AmountMax, err = parseIntEnv("AMOUNT_MAX", defaultAmountMax)
	if err != nil {
		return nil, err
	}
	cfg.PageSize, err = parseIntEnv("PAGE_SIZE", defaultPageSize)
	if err != nil {
		return nil, err
	}

	cfg.MediaDir = getEnv("MEDIA_DIR", defaultMediaDir)
	cfg.ShoppingCartFilename = getEnv("SHOPPING_CART_FILENAME", defaultShoppingCartFile)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.CookingTimeMin < 1 || cfg.CookingTimeMax < cfg.CookingTimeMin {
		return fmt.Errorf("invalid cooking time bounds [%d, %d]", cfg.CookingTimeMin, cfg.CookingTimeMax)
	}
	if cfg.AmountMin < 1 || cfg.AmountMax < cfg.AmountMin {
		return fmt.Errorf("invalid ingredient amount bounds [%d, %d]", cfg.AmountMin, cfg.AmountMax)
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be > 0")
	}
	if cfg.ShoppingCartFilename == "" {
		return fmt.Errorf("SHOPPING_CART_FILENAME must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("in prod/release DATABASE_URL must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}
