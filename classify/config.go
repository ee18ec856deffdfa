package classify

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/darksailstudio/resettables/core"
)

// tableFile mirrors the TOML marking-table layout:
//
//	[types.SceneNode]
//	persistent = true
//	marked = true
//	inheritable = true
//
//	[types.DocumentNode]
//	parent = "SceneNode"
//	persistent = true
type tableFile struct {
	Types map[string]tableEntry `toml:"types"`
}

type tableEntry struct {
	Parent      string `toml:"parent"`
	Abstract    bool   `toml:"abstract"`
	Generic     bool   `toml:"generic"`
	Persistent  bool   `toml:"persistent"`
	Marked      bool   `toml:"marked"`
	Inheritable bool   `toml:"inheritable"`
}

// LoadTable reads a TOML marking table from disk. See ParseTable for the
// accepted layout.
func LoadTable(path string) (*TableCatalog, error) {
	var file tableFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("classify: load table %q: %w", path, err)
	}
	return catalogFromFile(file)
}

// ParseTable builds a TableCatalog from TOML bytes. Each [types.<Name>]
// entry carries the derivation link (parent), validity flags (abstract,
// generic, persistent) and the optional explicit marking (marked +
// inheritable). Inheritable without marked is rejected as a likely mistake.
func ParseTable(data []byte) (*TableCatalog, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("classify: parse table: %w", err)
	}
	return catalogFromFile(file)
}

func catalogFromFile(file tableFile) (*TableCatalog, error) {
	catalog := NewTableCatalog()
	names := make([]string, 0, len(file.Types))
	for name := range file.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry := file.Types[name]
		if entry.Inheritable && !entry.Marked {
			return nil, fmt.Errorf("classify: type %q: inheritable requires marked", name)
		}
		info := core.TypeInfo{
			Name:       core.TypeName(name),
			Parent:     core.TypeName(entry.Parent),
			Abstract:   entry.Abstract,
			Generic:    entry.Generic,
			Persistent: entry.Persistent,
		}
		if entry.Marked {
			info.Marking = &core.Marking{Inheritable: entry.Inheritable}
		}
		catalog.Register(info)
	}
	return catalog, nil
}
