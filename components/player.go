package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64

	Deaths        int
	PortalsPlaced int
	Teleports     int
}

var Player = donburi.NewComponentType[PlayerData]()
