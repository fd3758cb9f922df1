package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/leveldata"
)

var (
	//go:embed all:levels
	//go:embed all:datablocks
	assetFS embed.FS
)

// FS exposes the embedded arena and datablock files.
func FS() fs.FS {
	return assetFS
}

// LoadArena loads levels/<name>.tmx from the embedded files.
func LoadArena(name string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return arena, nil
}

// ArenaNames lists the embedded arenas in load order.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(assetFS, "levels")
	return names, err
}

// LoadDatablocks loads the embedded datablock definitions. The client uses
// them for offline previews; in a match the server's copies win.
func LoadDatablocks() (map[string]*laser.Data, error) {
	return laser.LoadDatablocks(assetFS, "datablocks")
}
