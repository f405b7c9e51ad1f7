package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the quotation tool. Values come from an
// optional YAML file, overridden by environment variables. Defaults keep the
// binary runnable with neither.
type Config struct {
	CatalogPath  string
	CachePath    string
	CacheTTL     time.Duration
	CartPath     string
	ShopName     string
	WhatsAppCell string
}

// fileConfig is the YAML shape; durations travel as strings ("24h", "90m").
type fileConfig struct {
	CatalogPath  string `yaml:"catalog_path"`
	CachePath    string `yaml:"cache_path"`
	CacheTTL     string `yaml:"cache_ttl"`
	CartPath     string `yaml:"cart_path"`
	ShopName     string `yaml:"shop_name"`
	WhatsAppCell string `yaml:"whatsapp_cell"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		CatalogPath:  "precios.json",
		CachePath:    ".cache/precios_cache.json",
		CacheTTL:     24 * time.Hour,
		CartPath:     ".cache/proforma.json",
		ShopName:     "Óptica",
		WhatsAppCell: "59167724661",
	}
}

// Load reads path (when non-empty) over the defaults, then applies
// environment overrides. A missing file is only an error when the path was
// given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
		if fc.CatalogPath != "" {
			cfg.CatalogPath = fc.CatalogPath
		}
		if fc.CachePath != "" {
			cfg.CachePath = fc.CachePath
		}
		if fc.CacheTTL != "" {
			d, err := time.ParseDuration(fc.CacheTTL)
			if err != nil {
				return Config{}, fmt.Errorf("invalid cache_ttl: %w", err)
			}
			cfg.CacheTTL = d
		}
		if fc.CartPath != "" {
			cfg.CartPath = fc.CartPath
		}
		if fc.ShopName != "" {
			cfg.ShopName = fc.ShopName
		}
		if fc.WhatsAppCell != "" {
			cfg.WhatsAppCell = fc.WhatsAppCell
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPTI_CATALOG_PATH"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("OPTI_CACHE_PATH"); v != "" {
		c.CachePath = v
	}
	if v := os.Getenv("OPTI_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.CacheTTL = d
		}
	}
	if v := os.Getenv("OPTI_CART_PATH"); v != "" {
		c.CartPath = v
	}
	if v := os.Getenv("OPTI_SHOP_NAME"); v != "" {
		c.ShopName = v
	}
	if v := os.Getenv("OPTI_WHATSAPP_CELL"); v != "" {
		c.WhatsAppCell = v
	}
}
