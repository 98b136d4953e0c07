package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samirrijal/gpsutil/internal/core/domain"
)

// Config holds all library configuration.
type Config struct {
	Geodesy GeodesyConfig `mapstructure:"geodesy"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// GeodesyConfig selects the reference ellipsoid. Setting both
// SemiMajorAxis and Flattening defines a custom ellipsoid named after
// Ellipsoid; otherwise Ellipsoid must name a known one.
type GeodesyConfig struct {
	Ellipsoid     string  `mapstructure:"ellipsoid"`
	SemiMajorAxis float64 `mapstructure:"semi_major_axis"`
	Flattening    float64 `mapstructure:"flattening"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Custom reports whether explicit ellipsoid parameters were given.
func (g GeodesyConfig) Custom() bool {
	return g.SemiMajorAxis != 0 || g.Flattening != 0
}

// ResolveEllipsoid resolves the configured reference ellipsoid.
func (g GeodesyConfig) ResolveEllipsoid() (domain.Ellipsoid, error) {
	if g.Custom() {
		name := g.Ellipsoid
		if name == "" {
			name = "custom"
		}
		return domain.NewEllipsoid(name, g.SemiMajorAxis, g.Flattening)
	}
	return domain.LookupEllipsoid(g.Ellipsoid)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Geodesy: GeodesyConfig{Ellipsoid: domain.EllipsoidWGS84.Name},
		Log:     LogConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: false},
	}
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	return load(viper.New())
}

// LoadFile reads configuration from the given file, still allowing
// environment overrides.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	def := Default()

	// Defaults
	v.SetDefault("geodesy.ellipsoid", def.Geodesy.Ellipsoid)
	v.SetDefault("geodesy.semi_major_axis", 0.0)
	v.SetDefault("geodesy.flattening", 0.0)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)

	// Config file (optional unless given explicitly)
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("gpsutil")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: GPSUTIL_GEODESY_ELLIPSOID → geodesy.ellipsoid
	v.SetEnvPrefix("GPSUTIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if !c.Geodesy.Custom() && c.Geodesy.Ellipsoid == "" {
		errs = append(errs, "geodesy.ellipsoid is required")
	} else if _, err := c.Geodesy.ResolveEllipsoid(); err != nil {
		errs = append(errs, fmt.Sprintf("geodesy: %v", err))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
