package config

import (
	"fmt"
	"sort"
)

// Scenario is a named planet layout with a matching craft start.
type Scenario struct {
	Name        string
	Description string
	Craft       CraftConfig
	Planets     []PlanetConfig
}

var scenarios = map[string]Scenario{
	"classic": {
		Name:        "Classic",
		Description: "Two equal planets, craft in the top left corner",
		Craft:       CraftConfig{X: 16, Y: 16, Width: 32, Height: 32},
		Planets: []PlanetConfig{
			{Name: "Inner", X: 300, Y: 300, Radius: 100},
			{Name: "Outer", X: 700, Y: 500, Radius: 100},
		},
	},
	"binary": {
		Name:        "Binary",
		Description: "Two planets with overlapping fields",
		Craft:       CraftConfig{X: 500, Y: 40, Width: 32, Height: 32, Rotation: 90},
		Planets: []PlanetConfig{
			{Name: "Castor", X: 380, Y: 400, Radius: 80},
			{Name: "Pollux", X: 620, Y: 400, Radius: 80},
		},
	},
	"cluster": {
		Name:        "Cluster",
		Description: "A large planet ringed by three moons",
		Craft:       CraftConfig{X: 0, Y: 0, Width: 32, Height: 32, Rotation: 45},
		Planets: []PlanetConfig{
			{Name: "Primary", X: 600, Y: 600, Radius: 150},
			{Name: "Io", X: 200, Y: 600, Radius: 30},
			{Name: "Europa", X: 600, Y: 200, Radius: 40},
			{Name: "Ganymede", X: 1000, Y: 800, Radius: 50},
		},
	},
}

// GetScenario returns the scenario registered under key, or nil.
func GetScenario(key string) *Scenario {
	s, ok := scenarios[key]
	if !ok {
		return nil
	}
	s.Planets = append([]PlanetConfig(nil), s.Planets...)
	return &s
}

// ListScenarios returns the registered scenario keys in sorted order.
func ListScenarios() []string {
	keys := make([]string, 0, len(scenarios))
	for k := range scenarios {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyScenario replaces the craft start and planets of c.
func ApplyScenario(c *SimulationConfig, key string) error {
	s := GetScenario(key)
	if s == nil {
		return fmt.Errorf("unknown scenario %q (available: %v)", key, ListScenarios())
	}
	c.Craft = s.Craft
	c.Planets = s.Planets
	return nil
}
