package factory

import (
	"github.com/automoto/portalfling/archetypes"
	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/shared/physics"
	"github.com/automoto/portalfling/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player entity. spawnX and spawnY are world
// coordinates; hitBox is the body's hit box in world coordinates and seeds
// the trigger probe, which lives in map-local space.
func CreatePlayer(ecs *ecs.ECS, spawnX, spawnY float64, hitBox physics.Rect, offsetY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(hitBox.X, hitBox.Y-offsetY, hitBox.W, hitBox.H)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, hitBox.W, hitBox.H))

	components.Player.SetValue(player, components.PlayerData{
		SpawnX: spawnX,
		SpawnY: spawnY,
	})

	addToSpace(ecs, obj)
	return player
}
