package input

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("input: invalid config")

// Config holds the timing constants of the input core.
type Config struct {
	// DoubleClickSpeed is the maximum time between two presses of the same
	// button, at the same position, for the second to be a double click.
	DoubleClickSpeed time.Duration

	// KeyRepeatDelay is how long a key must be held before auto-repeat.
	KeyRepeatDelay time.Duration

	// KeyRepeatRate is the time between auto-repeat pulses.
	KeyRepeatRate time.Duration

	// MaxMouseButtons bounds the accepted mouse button indices.
	MaxMouseButtons int
}

// DefaultConfig returns the standard desktop timings.
func DefaultConfig() Config {
	return Config{
		DoubleClickSpeed: 500 * time.Millisecond,
		KeyRepeatDelay:   500 * time.Millisecond,
		KeyRepeatRate:    30 * time.Millisecond,
		MaxMouseButtons:  5,
	}
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.DoubleClickSpeed <= 0:
		return fmt.Errorf("%w: double_click_speed must be positive, got %v", ErrInvalidConfig, c.DoubleClickSpeed)
	case c.KeyRepeatDelay <= 0:
		return fmt.Errorf("%w: key_repeat_delay must be positive, got %v", ErrInvalidConfig, c.KeyRepeatDelay)
	case c.KeyRepeatRate <= 0:
		return fmt.Errorf("%w: key_repeat_rate must be positive, got %v", ErrInvalidConfig, c.KeyRepeatRate)
	case c.MaxMouseButtons < 2:
		return fmt.Errorf("%w: max_mouse_buttons must be at least 2, got %d", ErrInvalidConfig, c.MaxMouseButtons)
	}
	return nil
}

// ============================================================================
// TOML
// ============================================================================

// FileConfig is the on-disk form of Config. Times are in seconds.
//
//	[input]
//	double_click_speed = 0.5
//	key_repeat_delay = 0.5
//	key_repeat_rate = 0.03
//	max_mouse_buttons = 5
type FileConfig struct {
	Input InputSection `toml:"input"`
}

// InputSection is the [input] table.
type InputSection struct {
	DoubleClickSpeed *float64 `toml:"double_click_speed"`
	KeyRepeatDelay   *float64 `toml:"key_repeat_delay"`
	KeyRepeatRate    *float64 `toml:"key_repeat_rate"`
	MaxMouseButtons  *int     `toml:"max_mouse_buttons"`
}

// ParseConfig reads TOML over the defaults. Keys that are absent keep
// their default value.
func ParseConfig(data []byte) (Config, error) {
	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse input config: %w", err)
	}

	cfg := DefaultConfig()
	if v := fc.Input.DoubleClickSpeed; v != nil {
		cfg.DoubleClickSpeed = Seconds(*v)
	}
	if v := fc.Input.KeyRepeatDelay; v != nil {
		cfg.KeyRepeatDelay = Seconds(*v)
	}
	if v := fc.Input.KeyRepeatRate; v != nil {
		cfg.KeyRepeatRate = Seconds(*v)
	}
	if v := fc.Input.MaxMouseButtons; v != nil {
		cfg.MaxMouseButtons = *v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// EncodeTOML renders c in the on-disk form.
func (c Config) EncodeTOML() ([]byte, error) {
	dcs := c.DoubleClickSpeed.Seconds()
	krd := c.KeyRepeatDelay.Seconds()
	krr := c.KeyRepeatRate.Seconds()
	mmb := c.MaxMouseButtons
	return toml.Marshal(FileConfig{Input: InputSection{
		DoubleClickSpeed: &dcs,
		KeyRepeatDelay:   &krd,
		KeyRepeatRate:    &krr,
		MaxMouseButtons:  &mmb,
	}})
}

// Seconds converts fractional seconds to a Duration, rounded to the
// nearest nanosecond.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
