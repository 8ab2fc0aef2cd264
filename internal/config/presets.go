package config

import "sort"

// Presets reproduce the two layouts of the desktop form plus a spring-eased
// variant. Only the fields they set are applied.
var Presets = map[string]*Config{
	"classic": {
		Widget: WidgetSlider, Easing: DefaultEasing, Smoothing: DefaultSmoothing,
	},
	"dropdown": {
		Widget: WidgetSelector, Easing: DefaultEasing, Smoothing: DefaultSmoothing,
	},
	"spring": {
		Widget: WidgetSlider, Easing: "spring",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the non-zero fields of preset name onto c.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	if p.Widget != "" {
		c.Widget = p.Widget
	}
	if p.Easing != "" {
		c.Easing = p.Easing
	}
	if p.Smoothing != 0 {
		c.Smoothing = p.Smoothing
	}
	return true
}
