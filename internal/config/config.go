package config

import (
	"fmt"
	"time"

	"camera-timeline/internal/logger"
	"camera-timeline/internal/models"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	FormatViseron = "viseron"
	FormatFrigate = "frigate"

	SortNewestFirst = "newest_first"
	SortNone        = "none"
)

// LoadConfig reads the configuration from a file
func LoadConfig(fs afero.Fs, path string) (*models.Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg models.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *models.Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Timeline.Scale == 0 {
		cfg.Timeline.Scale = 60
	}
	if cfg.Timeline.TickHeight == 0 {
		cfg.Timeline.TickHeight = 8
	}
	if cfg.Timeline.EventIconHeight == 0 {
		cfg.Timeline.EventIconHeight = 20
	}
	if cfg.Timeline.ExtraTicks == 0 {
		cfg.Timeline.ExtraTicks = 10
	}
	if cfg.Timeline.Timezone == "" {
		cfg.Timeline.Timezone = "Local"
	}

	if cfg.Input.Format == "" {
		cfg.Input.Format = FormatViseron
	}
	if cfg.Input.MaxGap == 0 {
		cfg.Input.MaxGap = 1
	}
	if cfg.Input.Sort == "" {
		cfg.Input.Sort = SortNewestFirst
	}

	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = "camera-timeline/snapshot"
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "camera-timeline"
	}
}

func Validate(cfg *models.Config) error {
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	tl := cfg.Timeline
	if tl.Scale < 0 || tl.TickHeight < 0 || tl.EventIconHeight < 0 || tl.ExtraTicks < 0 {
		return fmt.Errorf("timeline sizes must not be negative")
	}
	if _, err := Location(cfg); err != nil {
		return err
	}

	switch cfg.Input.Format {
	case FormatViseron, FormatFrigate:
	default:
		return fmt.Errorf("unknown input format %q", cfg.Input.Format)
	}
	switch cfg.Input.Sort {
	case SortNewestFirst, SortNone:
	default:
		return fmt.Errorf("unknown input sort %q", cfg.Input.Sort)
	}
	if cfg.Input.MaxGap < 0 {
		return fmt.Errorf("input max_gap must not be negative")
	}

	return nil
}

// Location resolves the configured timezone
func Location(cfg *models.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Timeline.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timeline.Timezone, err)
	}
	return loc, nil
}
