package core

import "time"

// RuntimeConfig is what the platform tells a game when it (re)starts.
type RuntimeConfig struct {
	ScreenW  int   // Drawable width in cells
	ScreenH  int   // Drawable height in cells
	TickRate int   // Steps per second
	Seed     int64 // RNG seed; 0 asks the platform for a fresh one
}

// DefaultConfig returns an 80x24 screen at 30 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// WithDefaults fills in a missing tick rate and seed.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is the part of a game's status the platform acts on.
type GameState struct {
	Score    int
	GameOver bool // Run finished, won or lost; the score is final
	Paused   bool // Not accepting moves
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Message is a one-line status for the platform to show, such as why a
	// shift was refused. Empty when there is nothing new to say.
	Message string
}
