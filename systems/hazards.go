package systems

import (
	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/logger"
	"github.com/automoto/portalfling/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards moves the player's trigger probe onto the simulated body and
// reacts to spike and finish overlaps. The trigger space is in map-local
// pixels, so the grid's vertical offset is removed first.
func UpdateHazards(e *ecs.ECS) {
	s := GetSimulation(e)
	playerEntry, ok := tags.Player.First(e.World)
	if s == nil || !ok {
		return
	}

	probe := components.Object.Get(playerEntry)
	r := s.World.Body().Bounds()
	probe.X = r.X
	probe.Y = r.Y - s.World.Grid().OffsetY()
	probe.W = r.W
	probe.H = r.H
	probe.Update()

	if check := probe.Check(0, 0, tags.ResolvSpike); check != nil && len(check.ObjectsByTags(tags.ResolvSpike)) > 0 {
		logger.Log.WithFields(logrus.Fields{
			"system": "hazards",
			"x":      r.X,
			"y":      r.Y,
		}).Debug("spike hit")
		RespawnPlayer(e, true)
		return
	}

	check := probe.Check(0, 0, tags.ResolvFinishLine)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvFinishLine) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		finishLine := components.FinishLine.Get(entry)
		if finishLine.Activated {
			continue
		}
		finishLine.Activated = true
		CompleteLevel(e)
		return
	}
}
