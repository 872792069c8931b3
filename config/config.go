// Package config loads gesture threshold tables and logging settings.
//
// Values are layered, lowest precedence first:
//   - gesture.DefaultThresholds and an "info" log level (New)
//   - an optional YAML file
//   - GESTURE_ environment variables, e.g. GESTURE_SWIPE_MAX_TIME=250ms
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phanxgames/gesture"
)

// Config mirrors gesture.ThresholdTable with koanf keys plus process
// settings. Durations accept Go duration strings such as "300ms".
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	SwipeMinDistance   float64       `koanf:"swipe_min_distance"`
	SwipeMaxTime       time.Duration `koanf:"swipe_max_time"`
	TapMaxDistance     float64       `koanf:"tap_max_distance"`
	TapMaxTime         time.Duration `koanf:"tap_max_time"`
	LongPressDelay     time.Duration `koanf:"long_press_delay"`
	PinchMinScaleDelta float64       `koanf:"pinch_min_scale_delta"`
	PanMinDistance     float64       `koanf:"pan_min_distance"`
	PullThreshold      float64       `koanf:"pull_threshold"`
	PullMaxDistance    float64       `koanf:"pull_max_distance"`
}

// New returns a Config holding the default thresholds.
func New() *Config {
	th := gesture.DefaultThresholds()
	return &Config{
		LogLevel:           "info",
		SwipeMinDistance:   th.SwipeMinDistance,
		SwipeMaxTime:       th.SwipeMaxTime,
		TapMaxDistance:     th.TapMaxDistance,
		TapMaxTime:         th.TapMaxTime,
		LongPressDelay:     th.LongPressDelay,
		PinchMinScaleDelta: th.PinchMinScaleDelta,
		PanMinDistance:     th.PanMinDistance,
		PullThreshold:      th.PullThreshold,
		PullMaxDistance:    th.PullMaxDistance,
	}
}

// Thresholds returns the threshold table described by c.
func (c *Config) Thresholds() gesture.ThresholdTable {
	return gesture.ThresholdTable{
		SwipeMinDistance:   c.SwipeMinDistance,
		SwipeMaxTime:       c.SwipeMaxTime,
		TapMaxDistance:     c.TapMaxDistance,
		TapMaxTime:         c.TapMaxTime,
		LongPressDelay:     c.LongPressDelay,
		PinchMinScaleDelta: c.PinchMinScaleDelta,
		PanMinDistance:     c.PanMinDistance,
		PullThreshold:      c.PullThreshold,
		PullMaxDistance:    c.PullMaxDistance,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
}

// Validate checks the log level and the threshold table.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.Thresholds().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
