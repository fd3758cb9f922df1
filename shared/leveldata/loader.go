package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Defaults applied when a TMX file leaves a property out.
const (
	DefaultWallHeight   = 32.0
	DefaultMuzzleHeight = 16.0
	DefaultFireInterval = 30
	DefaultRange        = 200.0
	DefaultLifetime     = 60
	DefaultHealth       = 10
	DefaultDatablock    = "standard"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (server).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		WallHeight: DefaultWallHeight,
	}
	if levelMap.Properties != nil {
		if h := levelMap.Properties.GetInt("wallHeight"); h > 0 {
			arena.WallHeight = float64(h)
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				height := arena.WallHeight
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if h := tilesetTile.Properties.GetInt("height"); h > 0 {
						height = float64(h)
					}
				}

				arena.Walls = append(arena.Walls, Wall{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					W:      tileW,
					H:      tileH,
					Height: height,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Turrets" {
			continue
		}
		for _, o := range og.Objects {
			get := o.Properties.GetString
			mount := TurretMount{
				Name:         o.Name,
				X:            o.X,
				Y:            o.Y,
				MuzzleHeight: floatProp(get, "muzzleHeight", DefaultMuzzleHeight),
				Yaw:          floatProp(get, "yaw", 0) * math.Pi / 180,
				YawRate:      floatProp(get, "yawRate", 0) * math.Pi / 180,
				FireInterval: intProp(get, "fireInterval", DefaultFireInterval),
				Range:        floatProp(get, "range", DefaultRange),
				Lifetime:     intProp(get, "lifetime", DefaultLifetime),
				Health:       intProp(get, "health", DefaultHealth),
				Datablock:    stringProp(get, "datablock", DefaultDatablock),
			}
			if err := mount.Validate(); err != nil {
				return nil, fmt.Errorf("turret %q in %s: %w", o.Name, tmxPath, err)
			}
			arena.Turrets = append(arena.Turrets, mount)
		}
	}

	// Stable order so server and client agree on turret indices.
	sort.SliceStable(arena.Turrets, func(i, j int) bool {
		a, b := arena.Turrets[i], arena.Turrets[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	return arena, nil
}

func stringProp(get func(string) string, name, def string) string {
	if v := get(name); v != "" {
		return v
	}
	return def
}

func floatProp(get func(string) string, name string, def float64) float64 {
	v, err := strconv.ParseFloat(get(name), 64)
	if err != nil {
		return def
	}
	return v
}

func intProp(get func(string) string, name string, def int) int {
	v, err := strconv.Atoi(get(name))
	if err != nil {
		return def
	}
	return v
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
