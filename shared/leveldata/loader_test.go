package leveldata

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/automoto/portalfling/shared/tilemap"
)

const tileset = `
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="4" columns="4">
  <tile id="0">
   <properties>
    <property name="solid" type="bool" value="true"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="solid" type="bool" value="true"/>
    <property name="noportal" type="bool" value="true"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="noportal" type="bool" value="true"/>
   </properties>
  </tile>
  <tile id="3">
   <properties>
    <property name="noportal" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>`

const tutorialTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">` + tileset + `
 <layer id="1" name="tiles" width="4" height="3">
  <properties>
   <property name="tutorial" type="bool" value="true"/>
   <property name="minPortalSeparation" type="float" value="4"/>
  </properties>
  <data encoding="csv">
0,0,0,0,
0,4,0,3,
1,1,2,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="8">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="20" y="10"/>
 </objectgroup>
</map>
`

const plainTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">` + tileset + `
 <layer id="1" name="tiles" width="2" height="2">
  <data encoding="csv">
0,0,
1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="4" y="4"/>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">` + tileset + `
 <layer id="1" name="tiles" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/01_tutorial.tmx": {Data: []byte(tutorialTMX)}}

	level, err := LoadLevel(fsys, "levels/01_tutorial.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "01_tutorial" || level.TileSize != 16 {
		t.Fatalf("name=%q tileSize=%d", level.Name, level.TileSize)
	}
	wantTiles := []int{
		0, 0, 0, 0,
		0, tilemap.Spike, 0, tilemap.Finish,
		tilemap.Solid, tilemap.Solid, tilemap.Grey, tilemap.Solid,
	}
	if level.Map.Width != 4 || level.Map.Height != 3 || !reflect.DeepEqual(level.Map.Tiles, wantTiles) {
		t.Fatalf("map = %+v", level.Map)
	}
	if !reflect.DeepEqual(level.SolidIDs, []int{tilemap.Solid, tilemap.Grey}) {
		t.Fatalf("solid ids = %v", level.SolidIDs)
	}
	if !reflect.DeepEqual(level.BannedIDs, []int{tilemap.Grey, tilemap.Finish, tilemap.Spike}) {
		t.Fatalf("banned ids = %v", level.BannedIDs)
	}
	if !level.Tutorial || level.MinPortalSeparation != 4 {
		t.Fatalf("tutorial=%v separation=%v", level.Tutorial, level.MinPortalSeparation)
	}

	if len(level.SpawnPoints) != 2 {
		t.Fatalf("spawn points = %+v", level.SpawnPoints)
	}
	if sp := level.Spawn(); sp.X != 20 || sp.Index != 0 {
		t.Fatalf("first spawn = %+v, want the index 0 spawn at x=20", sp)
	}
}

func TestLoadLevelDefaults(t *testing.T) {
	fsys := fstest.MapFS{"plain.tmx": {Data: []byte(plainTMX)}}

	level, err := LoadLevel(fsys, "plain.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Tutorial || level.MinPortalSeparation != 0 {
		t.Fatalf("tutorial=%v separation=%v", level.Tutorial, level.MinPortalSeparation)
	}
	if !reflect.DeepEqual(level.SolidIDs, []int{tilemap.Solid}) {
		t.Fatalf("solid ids = %v", level.SolidIDs)
	}
	if level.BannedIDs != nil {
		t.Fatalf("banned ids = %v, want nil", level.BannedIDs)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{"nospawn.tmx": {Data: []byte(noSpawnTMX)}}

	if _, err := LoadLevel(fsys, "nospawn.tmx"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
	if _, err := LoadLevel(fsys, "missing.tmx"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/02_plain.tmx":    {Data: []byte(plainTMX)},
		"levels/01_tutorial.tmx": {Data: []byte(tutorialTMX)},
		"levels/readme.txt":      {Data: []byte("not a level")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"01_tutorial", "02_plain"}) {
		t.Fatalf("names = %v", names)
	}
	if len(levels) != 2 || !levels["01_tutorial"].Tutorial {
		t.Fatalf("levels = %v", levels)
	}

	if _, _, err := LoadAllLevels(fsys, "empty"); err == nil {
		t.Fatalf("expected an error for a directory without levels")
	}
}
