package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from flags and the terminal size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	Started  bool // Whether the first confirm has been pressed
	GameOver bool // Whether the game has ended
}
