package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marcus/timesheet/internal/dateparse"
	"github.com/marcus/timesheet/internal/intl"
	"github.com/marcus/timesheet/internal/timesheet"
)

const configFile = ".timesheet/config.json"

// DefaultCalHeight is the panel height used when none is configured.
const DefaultCalHeight = 400

// Config holds picker defaults read from the project directory
type Config struct {
	PickerView   string            `json:"picker_view,omitempty"`
	TimeView     string            `json:"time_view,omitempty"`
	HideTime     bool              `json:"hide_time,omitempty"`
	CalHeight    int               `json:"cal_height,omitempty"`
	MinDate      string            `json:"min_date,omitempty"`
	MaxDate      string            `json:"max_date,omitempty"`
	WeekdaysOnly bool              `json:"weekdays_only,omitempty"`
	Formats      map[string]string `json:"formats,omitempty"`
	Phrases      map[string]string `json:"phrases,omitempty"`
}

// Path returns the config file location under baseDir
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := Path(baseDir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Default returns the config written by `timesheet init`
func Default() *Config {
	return &Config{
		PickerView: string(timesheet.ViewCalendar),
		TimeView:   string(timesheet.ViewTimesheet),
		CalHeight:  DefaultCalHeight,
	}
}

// Height returns the configured panel height, or DefaultCalHeight
func (c *Config) Height() int {
	if c.CalHeight <= 0 {
		return DefaultCalHeight
	}
	return c.CalHeight
}

// Bounds parses MinDate and MaxDate relative to now. Empty values are nil.
func (c *Config) Bounds(now time.Time) (min, max *time.Time, err error) {
	if c.MinDate != "" {
		t, err := dateparse.Parse(c.MinDate, now)
		if err != nil {
			return nil, nil, fmt.Errorf("min_date: %w", err)
		}
		min = &t
	}
	if c.MaxDate != "" {
		t, err := dateparse.Parse(c.MaxDate, now)
		if err != nil {
			return nil, nil, fmt.Errorf("max_date: %w", err)
		}
		max = &t
	}
	return min, max, nil
}

// Validate checks the values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if _, err := timesheet.ParsePickerView(c.PickerView); err != nil {
		return fmt.Errorf("picker_view: %w", err)
	}
	if _, err := timesheet.ParsePickerView(c.TimeView); err != nil {
		return fmt.Errorf("time_view: %w", err)
	}
	if c.CalHeight < 0 {
		return fmt.Errorf("cal_height: must not be negative, got %d", c.CalHeight)
	}
	if _, _, err := c.Bounds(time.Now()); err != nil {
		return err
	}
	if unknown := intl.Unknown(c.Phrases); len(unknown) > 0 {
		return fmt.Errorf("phrases: unknown label ids %v", unknown)
	}
	return nil
}
