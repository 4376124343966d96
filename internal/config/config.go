// config.go

// Package config reads process settings from the environment.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/buffos/go-tracker/internal/logger"
	"github.com/buffos/go-tracker/internal/scene"
)

// Measurement modes for TRACKER_MEASURE.
const (
	MeasureFont     = "font"
	MeasureEstimate = "estimate"
)

// Config holds the settings of the tracker command.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	// Text measurement
	FontSize      float64 `env:"TRACKER_FONT_SIZE,default=14"`
	TitleFontSize float64 `env:"TRACKER_TITLE_FONT_SIZE,default=20"`
	Measure       string  `env:"TRACKER_MEASURE,default=font"`

	// Layout
	TruncateExpand bool `env:"TRACKER_TRUNCATE_EXPAND,default=false"`

	// Image export
	JPEGQuality    int           `env:"TRACKER_JPEG_QUALITY,default=90"`
	BrowserTimeout time.Duration `env:"TRACKER_BROWSER_TIMEOUT,default=30s"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads the configuration through l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	switch strings.ToLower(c.Measure) {
	case MeasureFont, MeasureEstimate:
	default:
		return fmt.Errorf("TRACKER_MEASURE must be %q or %q, got %q", MeasureFont, MeasureEstimate, c.Measure)
	}
	if c.FontSize <= 0 || c.TitleFontSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("TRACKER_JPEG_QUALITY must be within 1..100, got %d", c.JPEGQuality)
	}
	if c.BrowserTimeout <= 0 {
		return fmt.Errorf("TRACKER_BROWSER_TIMEOUT must be positive")
	}
	return nil
}

// Logger builds a logger writing to stderr at the configured level and format.
func (c *Config) Logger() *logger.Logger {
	level, _ := logger.ParseLevel(c.LogLevel)
	format, _ := logger.ParseFormat(c.LogFormat)
	return logger.New(logger.Config{Level: level, Format: format, Output: os.Stderr})
}

// FontSizes scales the default class font sizes to the configured base and
// title sizes.
func (c *Config) FontSizes() map[string]float64 {
	base := scene.DefaultFontSizes[""]
	sizes := make(map[string]float64, len(scene.DefaultFontSizes))
	for class, sz := range scene.DefaultFontSizes {
		sizes[class] = sz * c.FontSize / base
	}
	sizes["tracker-title"] = c.TitleFontSize
	return sizes
}

// Measurer returns the configured text measurer. When the font cannot be
// loaded it falls back to the estimate and logs a warning.
func (c *Config) Measurer(log *logger.Logger) scene.Measurer {
	if strings.ToLower(c.Measure) == MeasureEstimate {
		return scene.NewEstimateMeasurer(c.FontSizes())
	}
	m, err := scene.NewFontMeasurer(c.FontSizes())
	if err != nil {
		log.Warn("falling back to estimated text metrics", logger.Fields{"error": err.Error()})
		return scene.NewEstimateMeasurer(c.FontSizes())
	}
	return m
}
