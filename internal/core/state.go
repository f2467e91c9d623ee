package core

// GameState represents the current state of a game.
// Platforms read it to decide when to stop and what to record.
type GameState struct {
	Score    int  // Current score
	Ticks    int  // Ticks simulated so far
	GameOver bool // Whether the game has ended
}
