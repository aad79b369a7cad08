package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	// Advance is set once the player confirms; the scene loads the next level.
	Advance bool
	Last    bool // no level follows this one
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
