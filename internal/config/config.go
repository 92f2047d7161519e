// Package config loads the watch face settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fathom/blinker/internal/mosaic"
)

// Config contains all blinker settings.
type Config struct {
	// Mosaic tunes the eye population and blink policy.
	Mosaic MosaicConfig `yaml:"mosaic"`

	// Face controls the host: frame rate, overnight reset and HUD.
	Face FaceConfig `yaml:"face"`

	// Logging configures the log file.
	Logging LoggingConfig `yaml:"logging"`
}

// MosaicConfig mirrors mosaic.Config with YAML names.
type MosaicConfig struct {
	BaseAbsence       time.Duration `yaml:"base_absence"`
	PopoutPeriod      time.Duration `yaml:"popout_period"`
	GlancesPerEye     int           `yaml:"glances_per_eye"`
	ConsecutiveWindow time.Duration `yaml:"consecutive_window"`
	StreakTrigger     int           `yaml:"streak_trigger"`
	BlinkRatio        float64       `yaml:"blink_ratio"`
	BlinkChanceFactor int           `yaml:"blink_chance_factor"`
}

// FaceConfig configures the watch face host.
type FaceConfig struct {
	// FPS is the interactive frame rate.
	FPS int `yaml:"fps"`

	// ResetHour is the local hour (0-23) of the overnight reset; -1 disables it.
	ResetHour int `yaml:"reset_hour"`

	// Accelerate multiplies every glance, for demos.
	Accelerate int `yaml:"accelerate"`

	ShowGlanceCounter bool `yaml:"show_glance_counter"`

	// Layout names the eye placement: "classic" or "grid".
	Layout string `yaml:"layout"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	// Level is "info" (default), "debug" or "trace".
	Level string `yaml:"level"`

	// File is the log path. Empty means blinker.log in the OS temp dir.
	File string `yaml:"file"`
}

// Default returns a Config with the shipped tuning.
func Default() *Config {
	d := mosaic.DefaultConfig()
	return &Config{
		Mosaic: MosaicConfig{
			BaseAbsence:       d.BaseAbsence,
			PopoutPeriod:      d.PopoutPeriod,
			GlancesPerEye:     d.GlancesPerEye,
			ConsecutiveWindow: d.ConsecutiveWindow,
			StreakTrigger:     d.StreakTrigger,
			BlinkRatio:        d.BlinkRatio,
			BlinkChanceFactor: d.BlinkChanceFactor,
		},
		Face: FaceConfig{
			FPS:               30,
			ResetHour:         4,
			Accelerate:        1,
			ShowGlanceCounter: true,
			Layout:            "classic",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration.
// Order: defaults -> path (if non-empty) -> environment variables
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	m := c.Mosaic
	if m.BaseAbsence < 0 {
		return fmt.Errorf("base_absence must be non-negative, got %v", m.BaseAbsence)
	}
	if m.PopoutPeriod <= 0 {
		return fmt.Errorf("popout_period must be positive, got %v", m.PopoutPeriod)
	}
	if m.GlancesPerEye < 1 {
		return fmt.Errorf("glances_per_eye must be at least 1, got %d", m.GlancesPerEye)
	}
	if m.ConsecutiveWindow < 0 {
		return fmt.Errorf("consecutive_window must be non-negative, got %v", m.ConsecutiveWindow)
	}
	if m.StreakTrigger < 0 {
		return fmt.Errorf("streak_trigger must be non-negative, got %d", m.StreakTrigger)
	}
	if m.BlinkRatio < 0 {
		return fmt.Errorf("blink_ratio must be non-negative, got %f", m.BlinkRatio)
	}
	if m.BlinkChanceFactor < 1 {
		return fmt.Errorf("blink_chance_factor must be at least 1, got %d", m.BlinkChanceFactor)
	}

	f := c.Face
	if f.FPS < 1 || f.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", f.FPS)
	}
	if f.ResetHour < -1 || f.ResetHour > 23 {
		return fmt.Errorf("reset_hour must be between 0 and 23, or -1 to disable, got %d", f.ResetHour)
	}
	if f.Accelerate < 1 {
		return fmt.Errorf("accelerate must be at least 1, got %d", f.Accelerate)
	}
	if _, ok := mosaic.Layout(f.Layout); !ok {
		return fmt.Errorf("invalid layout: %s (valid: classic, grid)", f.Layout)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// ToMosaic converts the YAML section into the policy config.
func (m MosaicConfig) ToMosaic() mosaic.Config {
	return mosaic.Config{
		BaseAbsence:       m.BaseAbsence,
		PopoutPeriod:      m.PopoutPeriod,
		GlancesPerEye:     m.GlancesPerEye,
		ConsecutiveWindow: m.ConsecutiveWindow,
		StreakTrigger:     m.StreakTrigger,
		BlinkRatio:        m.BlinkRatio,
		BlinkChanceFactor: m.BlinkChanceFactor,
	}
}

// FrameInterval returns the tick period for the configured frame rate.
func (f FaceConfig) FrameInterval() time.Duration {
	if f.FPS < 1 {
		return time.Second / 30
	}
	return time.Second / time.Duration(f.FPS)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("BLINKER_BASE_ABSENCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.Mosaic.BaseAbsence = d
		}
	}

	if v := os.Getenv("BLINKER_BLINK_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Mosaic.BlinkRatio = f
		}
	}

	if v := os.Getenv("BLINKER_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Face.FPS = n
		}
	}
	if v := os.Getenv("BLINKER_RESET_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Face.ResetHour = n
		}
	}
	if v := os.Getenv("BLINKER_ACCELERATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Face.Accelerate = n
		}
	}
	if v := os.Getenv("BLINKER_LAYOUT"); v != "" {
		config.Face.Layout = v
	}

	if v := os.Getenv("BLINKER_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("BLINKER_LOG_FILE"); v != "" {
		config.Logging.File = v
	}
}
