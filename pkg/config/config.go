package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matst80/slask-storefront/pkg/facet"
	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the discovery engine settings.
type Config struct {
	PageSize    int                  `mapstructure:"page_size"`
	SettleDelay time.Duration        `mapstructure:"settle_delay"`
	CountFacets bool                 `mapstructure:"count_facets"`
	Brands      []facet.BrandPattern `mapstructure:"brands"`
	Log         LogConfig            `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("page_size", types.DefaultPageSize)
	v.SetDefault("settle_delay", 300*time.Millisecond)
	v.SetDefault("count_facets", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads configuration with the following priority:
// 1. Environment variables with DISCOVERY_ prefix (e.g. DISCOVERY_PAGE_SIZE)
// 2. the config file, when path is not empty
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("DISCOVERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be at least 1, got %d", ErrInvalidConfig, c.PageSize)
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("%w: settle_delay must not be negative", ErrInvalidConfig)
	}
	for i, b := range c.Brands {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("%w: brands[%d] has no name", ErrInvalidConfig, i)
		}
	}
	return nil
}

// BrandResolver builds the configured brand table, falling back to the
// built-in one when none is configured.
func (c *Config) BrandResolver() (*facet.BrandResolver, error) {
	if len(c.Brands) == 0 {
		return facet.DefaultBrandResolver(), nil
	}
	r, err := facet.NewBrandResolver(c.Brands)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return r, nil
}
