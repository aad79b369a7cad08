package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Spike      = donburi.NewTag().SetName("Spike")
	FinishLine = donburi.NewTag().SetName("FinishLine")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for trigger overlap
const (
	ResolvPlayer     = "Player"
	ResolvSpike      = "spike"
	ResolvFinishLine = "finishline"
)
