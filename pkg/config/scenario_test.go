package config

import "testing"

func TestScenarios(t *testing.T) {
	keys := ListScenarios()
	expected := []string{"binary", "classic", "cluster"}
	if len(keys) != len(expected) {
		t.Fatalf("ListScenarios() = %v, expected %v", keys, expected)
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("ListScenarios()[%d] = %q, expected %q", i, keys[i], k)
		}
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyScenario(cfg, key); err != nil {
				t.Fatalf("ApplyScenario() error = %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("scenario %q does not validate: %v", key, err)
			}
		})
	}
}

func TestClassicScenarioMatchesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := ApplyScenario(cfg, "classic"); err != nil {
		t.Fatalf("ApplyScenario() error = %v", err)
	}
	defaults := DefaultConfig()
	if cfg.Craft != defaults.Craft {
		t.Errorf("Craft = %+v, expected %+v", cfg.Craft, defaults.Craft)
	}
	for i := range defaults.Planets {
		if cfg.Planets[i] != defaults.Planets[i] {
			t.Errorf("Planet %d = %+v, expected %+v", i, cfg.Planets[i], defaults.Planets[i])
		}
	}
}

func TestGetScenario_ReturnsCopy(t *testing.T) {
	s := GetScenario("cluster")
	if s == nil {
		t.Fatal("GetScenario(cluster) returned nil")
	}
	s.Planets[0].Radius = 1

	if again := GetScenario("cluster"); again.Planets[0].Radius != 150 {
		t.Errorf("registered scenario was mutated: %+v", again.Planets[0])
	}
	if GetScenario("missing") != nil {
		t.Error("GetScenario(missing) should return nil")
	}
	if err := ApplyScenario(DefaultConfig(), "missing"); err == nil {
		t.Error("ApplyScenario(missing) should fail")
	}
}
