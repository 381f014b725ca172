package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/pkg/errors"
)

// ErrInvalidViewport is returned when a width or height is zero or negative.
var ErrInvalidViewport = errors.New("viewport dimensions must be positive")

// Settings holds the runtime options a frontend may change without touching gameplay tuning.
type Settings struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"` // 0 seeds from the clock
	TPS    int   `json:"tps"`
	Debug  bool  `json:"debug"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		TPS:    TicksPerSec,
	}
}

// LoadSettings reads a JSON settings file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "failed to read settings file")
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, errors.Wrapf(err, "failed to unmarshal settings from %s", path)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	log.Printf("Loaded settings from %s: %dx%d seed=%d tps=%d", path, s.Width, s.Height, s.Seed, s.TPS)
	return s, nil
}

// Validate rejects settings a frontend cannot run with.
func (s Settings) Validate() error {
	if err := ValidateViewport(s.Width, s.Height); err != nil {
		return err
	}
	if s.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", s.TPS)
	}
	return nil
}

// ValidateViewport checks the dimensions handed over by a viewport collaborator.
func ValidateViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidViewport, "got %dx%d", width, height)
	}
	return nil
}
