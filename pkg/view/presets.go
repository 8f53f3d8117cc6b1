package view

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPreset = errors.New("unknown preset")

// A Preset is a named region of interest.
type Preset struct {
	Name string

	CenterX, CenterY float64
	Scale            float64
}

// Presets are the regions selectable by name, in display order.
var Presets = []Preset{
	{Name: "start", CenterX: 0, CenterY: 0, Scale: 0.01},
	{Name: "example-1", CenterX: -0.108625, CenterY: 0.9014428, Scale: 3.8147e-8},
	{Name: "example-2", CenterX: -1.0079296875, CenterY: 0.3112109375, Scale: 1.953125e-5},
	{Name: "example-3", CenterX: -0.1578125, CenterY: 1.0328125, Scale: 1.5625e-4},
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// PresetNames lists the names of Presets.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// Apply overwrites the center and scale of s. The iteration limit is kept.
func (p Preset) Apply(s State) State {
	s.CenterX = p.CenterX
	s.CenterY = p.CenterY
	s.Scale = p.Scale
	return s
}
