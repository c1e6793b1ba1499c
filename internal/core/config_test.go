package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 100, ScreenH: 40}.WithDefaults()

	if cfg.TickRate != DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, DefaultConfig().TickRate)
	}
	if cfg.Seed == 0 {
		t.Error("expected a seed to be chosen")
	}
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("screen changed to %dx%d", cfg.ScreenW, cfg.ScreenH)
	}

	fixed := RuntimeConfig{TickRate: 60, Seed: 7}.WithDefaults()
	if fixed.TickRate != 60 || fixed.Seed != 7 {
		t.Errorf("explicit values overwritten: %+v", fixed)
	}
}
