package laser

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// LoadDatablock reads and validates one JSON datablock. Unset fields keep the
// DefaultData values; the name defaults to the file's base name.
func LoadDatablock(fsys fs.FS, name string) (*Data, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read datablock %s: %w", name, err)
	}

	data := DefaultData(strings.TrimSuffix(path.Base(name), path.Ext(name)))
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("parse datablock %s: %w", name, err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("datablock %s: %w", name, err)
	}
	return data, nil
}

// LoadDatablocks loads every *.json file in dir, keyed by datablock name.
func LoadDatablocks(fsys fs.FS, dir string) (map[string]*Data, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list datablocks: %w", err)
	}
	sort.Strings(matches)

	out := make(map[string]*Data, len(matches))
	for _, m := range matches {
		d, err := LoadDatablock(fsys, m)
		if err != nil {
			return nil, err
		}
		if _, dup := out[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate datablock name %q in %s", ErrInvalidDatablock, d.Name, m)
		}
		out[d.Name] = d
	}
	return out, nil
}

// Names returns the datablock names in sorted order.
func Names(blocks map[string]*Data) []string {
	names := make([]string, 0, len(blocks))
	for n := range blocks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
