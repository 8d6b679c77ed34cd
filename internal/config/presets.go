package config

import "sort"

// Presets are named scenarios selectable from the CLI and the GUI menu.
var Presets = map[string]*Config{
	"orbit": DefaultConfig(),
	"binary": {
		WorldWidth: 800, WorldHeight: 600, GridResolution: 25,
		G: 100, Restitution: DefaultRestitution, Dt: DefaultDt, Duration: 60,
		Bodies: []BodyConfig{
			{X: 320, Y: 300, VY: -18, Mass: 600, Radius: 12},
			{X: 480, Y: 300, VY: 18, Mass: 600, Radius: 12},
		},
	},
	"cluster": {
		WorldWidth: 800, WorldHeight: 600, GridResolution: 25,
		G: 100, Restitution: DefaultRestitution, Dt: DefaultDt, Duration: 60,
		Bodies: []BodyConfig{
			{X: 400, Y: 300, Mass: 1500, Radius: 18},
			{X: 250, Y: 300, Mass: 120, Radius: 6, Orbit: true},
			{X: 400, Y: 140, Mass: 150, Radius: 7, Orbit: true},
			{X: 580, Y: 300, Mass: 100, Radius: 6, Orbit: true},
			{X: 400, Y: 480, Mass: 180, Radius: 8, Orbit: true},
			{X: 170, Y: 120, Mass: 90, Radius: 5, Orbit: true},
		},
	},
	"slingshot": {
		WorldWidth: 800, WorldHeight: 600, GridResolution: 25,
		G: 100, Restitution: DefaultRestitution, Dt: DefaultDt, Duration: 40,
		Bodies: []BodyConfig{
			{X: 400, Y: 300, Mass: 2000, Radius: 20},
			{X: 60, Y: 80, VX: 35, VY: 8, Mass: 50, Radius: 5},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown. The copy
// keeps callers from mutating the shared table.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Bodies = make([]BodyConfig, len(p.Bodies))
	copy(cp.Bodies, p.Bodies)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
