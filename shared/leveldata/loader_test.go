package leveldata

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <properties>
  <property name="wallHeight" type="int" value="48"/>
 </properties>
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <tile id="1">
   <properties>
    <property name="height" type="int" value="8"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
1,0,0,2,
0,0,0,0,
1,1,0,0
</data>
 </layer>
 <objectgroup id="2" name="Turrets">
  <object id="2" name="east" x="56" y="24">
   <properties>
    <property name="datablock" value="heavy"/>
    <property name="fireInterval" type="int" value="12"/>
   </properties>
  </object>
  <object id="1" name="west" x="8" y="24">
   <properties>
    <property name="yaw" type="float" value="90"/>
    <property name="yawRate" type="float" value="45"/>
    <property name="range" type="float" value="120"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func loadTestArena(t *testing.T) *Arena {
	t.Helper()
	fsys := fstest.MapFS{"levels/arena.tmx": {Data: []byte(arenaTMX)}}
	arena, err := LoadArena(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("Expected arena to load, got %v", err)
	}
	return arena
}

func TestLoadArena(t *testing.T) {
	arena := loadTestArena(t)

	if arena.Name != "arena" {
		t.Errorf("Expected name arena, got %q", arena.Name)
	}
	if arena.MapWidth != 64 || arena.MapHeight != 48 {
		t.Errorf("Expected 64x48 map, got %dx%d", arena.MapWidth, arena.MapHeight)
	}
	if len(arena.Walls) != 4 {
		t.Fatalf("Expected 4 walls, got %d", len(arena.Walls))
	}

	heights := map[[2]float64]float64{}
	for _, w := range arena.Walls {
		heights[[2]float64{w.X, w.Y}] = w.Height
	}
	tests := []struct {
		x, y, height float64
	}{
		{0, 0, 48},
		{48, 0, 8},
		{0, 32, 48},
		{16, 32, 48},
	}
	for _, tt := range tests {
		if got, ok := heights[[2]float64{tt.x, tt.y}]; !ok || got != tt.height {
			t.Errorf("Expected wall at (%v,%v) height %v, got %v (present %v)", tt.x, tt.y, tt.height, got, ok)
		}
	}
}

func TestLoadArenaTurrets(t *testing.T) {
	arena := loadTestArena(t)
	if len(arena.Turrets) != 2 {
		t.Fatalf("Expected 2 turrets, got %d", len(arena.Turrets))
	}

	west, east := arena.Turrets[0], arena.Turrets[1]
	if west.Name != "west" || east.Name != "east" {
		t.Fatalf("Expected turrets sorted west to east, got %s, %s", west.Name, east.Name)
	}
	if math.Abs(west.Yaw-math.Pi/2) > 1e-9 || math.Abs(west.YawRate-math.Pi/4) > 1e-9 {
		t.Errorf("Expected yaw pi/2 rate pi/4, got %f rate %f", west.Yaw, west.YawRate)
	}
	if west.Range != 120 || west.Datablock != DefaultDatablock {
		t.Errorf("Expected range 120 with default datablock, got %v %q", west.Range, west.Datablock)
	}
	if east.FireInterval != 12 || east.Datablock != "heavy" {
		t.Errorf("Expected interval 12 datablock heavy, got %d %q", east.FireInterval, east.Datablock)
	}
	if east.Range != DefaultRange || east.Lifetime != DefaultLifetime || east.MuzzleHeight != DefaultMuzzleHeight {
		t.Errorf("Expected defaults for unset properties, got %+v", east)
	}
}

func TestLoadArenaRejectsBadLifetime(t *testing.T) {
	tests := []struct {
		name     string
		lifetime string
		wantErr  bool
	}{
		{"zero", "0", true},
		{"negative", "-5", true},
		{"over cap", "5000", true},
		{"at cap", "4095", false},
		{"short", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmx := strings.Replace(arenaTMX,
				`<property name="datablock" value="heavy"/>`,
				`<property name="datablock" value="heavy"/>
    <property name="lifetime" type="int" value="`+tt.lifetime+`"/>`, 1)
			fsys := fstest.MapFS{"levels/arena.tmx": {Data: []byte(tmx)}}

			_, err := LoadArena(fsys, "levels/arena.tmx")
			if tt.wantErr && !errors.Is(err, ErrInvalidMount) {
				t.Errorf("Expected ErrInvalidMount, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected arena to load, got %v", err)
			}
		})
	}
}

func TestBuildWorld(t *testing.T) {
	world := loadTestArena(t).BuildWorld()
	if world.Len() != 5 {
		t.Fatalf("Expected ground plus 4 walls, got %d colliders", world.Len())
	}

	hit, ok := world.CastRay(gamemath.Vec3(40, 8, 4), gamemath.Vec3(-20, 8, 4), netconfig.ProjectileCollisionMask)
	if !ok {
		t.Fatal("Expected ray to hit the corner wall")
	}
	if math.Abs(hit.Point[0]-16) > 1e-9 {
		t.Errorf("Expected hit on wall face x=16, got %v", hit.Point)
	}

	hit, ok = world.CastRay(gamemath.Vec3(40, 24, 10), gamemath.Vec3(40, 24, -10), netconfig.ProjectileCollisionMask)
	if !ok || math.Abs(hit.Point[2]) > 1e-9 {
		t.Errorf("Expected ray to hit the ground at z=0, got %v ok %v", hit.Point, ok)
	}
}

func TestLoadAllArenasEmpty(t *testing.T) {
	if _, _, err := LoadAllArenas(fstest.MapFS{}, "levels"); err == nil {
		t.Error("Expected error for a directory without arenas")
	}
}
