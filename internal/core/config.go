package core

// RuntimeConfig contains configuration passed to the host at startup.
// Hosts use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game session.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Meteors that reached the ground
	GameOver bool // Whether the game has ended
}
