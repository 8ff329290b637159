package game

import (
	"fmt"
	"os"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// World is a point-in-time snapshot of the externally owned game state.
// The popup never mutates it; changes are requested through the Outbox and
// observed when the game rewrites the world file.
type World struct {
	Companies []Company `json:"companies"`
	Groups    []Group   `json:"groups"`

	// LocalCompany is the company the player controls. Only its liveries
	// may be changed from this window.
	LocalCompany CompanyID `json:"local_company"`

	// UsedLiveries is a bitmask over scheme indices recording which
	// schemes the loaded vehicle set actually activates. Rows are only
	// generated for active schemes.
	UsedLiveries uint32 `json:"used_liveries"`

	// TwoColourSchemes gates the secondary colour slot.
	TwoColourSchemes bool `json:"two_colour_schemes"`
}

// LoadWorld reads and decodes a world snapshot from path.
func LoadWorld(path string) (World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return World{}, fmt.Errorf("read world file: %w", err)
	}
	return DecodeWorld(data)
}

// DecodeWorld decodes a world snapshot and validates its group records.
func DecodeWorld(data []byte) (World, error) {
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return World{}, fmt.Errorf("decode world file: %w", err)
	}
	seen := make(map[GroupID]struct{}, len(w.Groups))
	for _, g := range w.Groups {
		if err := g.Validate(); err != nil {
			return World{}, fmt.Errorf("world file: %w", err)
		}
		if _, dup := seen[g.ID]; dup {
			return World{}, fmt.Errorf("world file: duplicate group id %d", g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	return w, nil
}

// Company returns the company with the given id, if present.
func (w World) Company(id CompanyID) (Company, bool) {
	for _, c := range w.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return Company{}, false
}

// Group returns the group with the given id, if present.
func (w World) Group(id GroupID) (Group, bool) {
	for _, g := range w.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// IsValidGroup reports whether id refers to an existing group.
func (w World) IsValidGroup(id GroupID) bool {
	_, ok := w.Group(id)
	return ok
}

// GroupName resolves the display name for a group.
func (w World) GroupName(g Group) string {
	return GroupDisplayName(g)
}

// GroupDisplayName returns the stored name of a group, or a generated
// label for anonymous groups, mirroring how the game formats them.
func GroupDisplayName(g Group) string {
	if g.Name != "" {
		return g.Name
	}
	caser := g.VehicleType.String()
	if len(caser) > 0 {
		caser = strings.ToUpper(caser[:1]) + caser[1:]
	}
	return fmt.Sprintf("%s Group %d", caser, g.ID)
}

// GroupsFor returns the groups owned by a company for one vehicle type,
// in stable id order. Callers sort for display themselves.
func (w World) GroupsFor(owner CompanyID, vtype VehicleType) []Group {
	var out []Group
	for _, g := range w.Groups {
		if g.Owner == owner && g.VehicleType == vtype {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
