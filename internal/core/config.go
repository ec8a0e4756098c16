package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// TicksFor converts a duration to a whole number of ticks, at least 1.
func (c RuntimeConfig) TicksFor(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	ticks := int(d * time.Duration(rate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int           // Revealed safe cells
	GameOver bool          // Round finished (won or lost)
	Won      bool          // Round finished with every safe cell revealed
	Started  bool          // At least one move was made
	Elapsed  time.Duration // Play time from the first move to the end of the round
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
