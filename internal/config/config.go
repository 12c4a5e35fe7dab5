package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProductsURL   = "https://data-dawm.github.io/datum/reseller/products.json"
	DefaultCategoriesURL = "https://data-dawm.github.io/datum/reseller/categories.xml"
	DefaultProductLimit  = 6
	DefaultTitleMaxLen   = 20
	DefaultAppPort       = "8080"
	DefaultRateLimit     = 10
	DefaultRateBurst     = 20
)

type Config struct {
	AppEnv  string
	AppPort string

	ProductsURL   string
	CategoriesURL string
	ProductLimit  int
	TitleMaxLen   int
	// FetchTimeout of zero leaves remote reads unbounded.
	FetchTimeout time.Duration

	RateLimit float64
	RateBurst int

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// overlay is the optional YAML file pointed to by CATALOG_CONFIG.
type overlay struct {
	Catalog struct {
		ProductsURL   string `yaml:"products_url"`
		CategoriesURL string `yaml:"categories_url"`
		ProductLimit  int    `yaml:"product_limit"`
		TitleMaxLen   int    `yaml:"title_max_len"`
		FetchTimeout  string `yaml:"fetch_timeout"`
	} `yaml:"catalog"`
	Server struct {
		Port      string  `yaml:"port"`
		RateLimit float64 `yaml:"rate_limit"`
		RateBurst int     `yaml:"rate_burst"`
	} `yaml:"server"`
}

// LoadConfig reads .env (if present), the optional YAML overlay and then the
// process environment. Environment variables win over the overlay.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       DefaultAppPort,
		ProductsURL:   DefaultProductsURL,
		CategoriesURL: DefaultCategoriesURL,
		ProductLimit:  DefaultProductLimit,
		TitleMaxLen:   DefaultTitleMaxLen,
		RateLimit:     DefaultRateLimit,
		RateBurst:     DefaultRateBurst,
	}

	if path := os.Getenv("CATALOG_CONFIG"); path != "" {
		if err := applyOverlay(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.AppEnv = os.Getenv("APP_ENV")
	setString(&cfg.AppPort, "APP_PORT")
	setString(&cfg.ProductsURL, "PRODUCTS_URL")
	setString(&cfg.CategoriesURL, "CATEGORIES_URL")
	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBPort, "DB_PORT")

	if err := setInt(&cfg.ProductLimit, "PRODUCT_LIMIT"); err != nil {
		return nil, err
	}
	if err := setInt(&cfg.TitleMaxLen, "TITLE_MAX_LEN"); err != nil {
		return nil, err
	}
	if err := setInt(&cfg.RateBurst, "RATE_BURST"); err != nil {
		return nil, err
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = f
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", v, err)
		}
		cfg.FetchTimeout = d
	}

	if cfg.ProductLimit <= 0 {
		return nil, fmt.Errorf("PRODUCT_LIMIT must be positive, got %d", cfg.ProductLimit)
	}
	if cfg.TitleMaxLen <= 0 {
		return nil, fmt.Errorf("TITLE_MAX_LEN must be positive, got %d", cfg.TitleMaxLen)
	}

	return cfg, nil
}

// HasDatabase reports whether a snapshot store is configured.
func (c *Config) HasDatabase() bool {
	return c.DBDriver != ""
}

func applyOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if o.Catalog.ProductsURL != "" {
		cfg.ProductsURL = o.Catalog.ProductsURL
	}
	if o.Catalog.CategoriesURL != "" {
		cfg.CategoriesURL = o.Catalog.CategoriesURL
	}
	if o.Catalog.ProductLimit > 0 {
		cfg.ProductLimit = o.Catalog.ProductLimit
	}
	if o.Catalog.TitleMaxLen > 0 {
		cfg.TitleMaxLen = o.Catalog.TitleMaxLen
	}
	if o.Catalog.FetchTimeout != "" {
		d, err := time.ParseDuration(o.Catalog.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid catalog.fetch_timeout %q: %w", o.Catalog.FetchTimeout, err)
		}
		cfg.FetchTimeout = d
	}
	if o.Server.Port != "" {
		cfg.AppPort = o.Server.Port
	}
	if o.Server.RateLimit > 0 {
		cfg.RateLimit = o.Server.RateLimit
	}
	if o.Server.RateBurst > 0 {
		cfg.RateBurst = o.Server.RateBurst
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
