package config

import (
	"fmt"
	"os"
	"strconv"
)

// ApplyEnv overrides settings from GRAVITY_* environment variables.
// Unset variables leave the configuration untouched.
//
//	GRAVITY_TICK_RATE      ticks per second
//	GRAVITY_TURN_RATE      degrees per tick
//	GRAVITY_WINDOW_WIDTH   engo window width
//	GRAVITY_WINDOW_HEIGHT  engo window height
//	GRAVITY_TERMINAL_SCALE world units per terminal cell
//	GRAVITY_AUDIO          enable the engine hum
func ApplyEnv(c *SimulationConfig) error {
	if err := envInt("GRAVITY_TICK_RATE", &c.Loop.TickRate); err != nil {
		return err
	}
	if err := envFloat("GRAVITY_TURN_RATE", &c.Loop.TurnRate); err != nil {
		return err
	}
	if err := envInt("GRAVITY_WINDOW_WIDTH", &c.Window.Width); err != nil {
		return err
	}
	if err := envInt("GRAVITY_WINDOW_HEIGHT", &c.Window.Height); err != nil {
		return err
	}
	if err := envFloat("GRAVITY_TERMINAL_SCALE", &c.Terminal.Scale); err != nil {
		return err
	}
	if err := envBool("GRAVITY_AUDIO", &c.Audio.Enabled); err != nil {
		return err
	}
	return c.Validate()
}

func envInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func envFloat(key string, dst *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}
