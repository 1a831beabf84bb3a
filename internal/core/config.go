package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic boards.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Timer redraws per second
	Seed     int64 // RNG seed for mine placement (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 1,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Final score once GameOver is set, 0 while playing
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended with every safe cell revealed
	Paused   bool // Whether the game is not accepting input (e.g. window too small)
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Finished is true only on the frame where the game transitioned
	// into its terminal state. The platform uses it to record the result once.
	Finished bool
}
