package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/psyops/internal/report"
	"github.com/san-kum/psyops/internal/ring"
	"github.com/san-kum/psyops/internal/viz"
)

const (
	DefaultWidget    = WidgetSlider
	DefaultTheme     = "dark"
	DefaultFPS       = ring.DefaultFPS
	DefaultSmoothing = ring.DefaultSmoothing
	DefaultEasing    = ring.EasingExponential
	DefaultSegments  = ring.DefaultSegments
	DefaultOutput    = report.DefaultFileName
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Widget is the presentation of a score control.
type Widget string

const (
	WidgetSlider   Widget = "slider"
	WidgetSelector Widget = "selector"
)

type Config struct {
	Widget     Widget      `yaml:"widget"`
	Theme      string      `yaml:"theme"`
	FPS        int         `yaml:"fps"`
	Smoothing  float64     `yaml:"smoothing"`
	Easing     ring.Easing `yaml:"easing"`
	Segments   int         `yaml:"segments"`
	Output     string      `yaml:"output"`
	FontDir    string      `yaml:"font_dir"`
	FontFamily string      `yaml:"font_family"`
}

func DefaultConfig() *Config {
	return &Config{
		Widget:     DefaultWidget,
		Theme:      DefaultTheme,
		FPS:        DefaultFPS,
		Smoothing:  DefaultSmoothing,
		Easing:     DefaultEasing,
		Segments:   DefaultSegments,
		Output:     DefaultOutput,
		FontFamily: report.DefaultFontFamily,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Widget != WidgetSlider && c.Widget != WidgetSelector:
		return fmt.Errorf("%w: widget %q (want slider or selector)", ErrInvalid, c.Widget)
	case !viz.HasTheme(c.Theme):
		return fmt.Errorf("%w: theme %q (want one of %v)", ErrInvalid, c.Theme, viz.ThemeNames())
	case !ring.ValidEasing(c.Easing):
		return fmt.Errorf("%w: easing %q (want exponential or spring)", ErrInvalid, c.Easing)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.Segments <= 0:
		return fmt.Errorf("%w: segments must be positive, got %d", ErrInvalid, c.Segments)
	case math.IsInf(c.Smoothing, 0) || math.IsNaN(c.Smoothing) || c.Smoothing < 1:
		return fmt.Errorf("%w: smoothing must be a finite number of at least 1, got %g", ErrInvalid, c.Smoothing)
	case c.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	return nil
}

// ReportOptions maps the font settings onto the PDF writer.
func (c *Config) ReportOptions() report.Options {
	return report.Options{FontDir: c.FontDir, FontFamily: c.FontFamily}
}
