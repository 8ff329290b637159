package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

// TempWorldPath returns a world file path inside a per-test temp dir.
func TempWorldPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "world.json")
}

// WriteWorld serialises the world snapshot to path.
func WriteWorld(t *testing.T, path string, world game.World) {
	t.Helper()
	data, err := json.Marshal(world)
	if err != nil {
		t.Fatalf("marshal world: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write world: %v", err)
	}
}

// SwapWorld replaces the world file with an atomic rename, the way the
// game rewrites its export. The new file has a fresh inode, so this also
// exercises directory-level change detection.
func SwapWorld(t *testing.T, path string, world game.World) {
	t.Helper()
	tmp := path + ".tmp"
	WriteWorld(t, tmp, world)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("swap world: %v", err)
	}
}

// BasicWorld builds a small single-company world for tests.
func BasicWorld() game.World {
	return game.World{
		Companies: []game.Company{
			{ID: 1, Name: "Test Transport", Colour: 4},
		},
		LocalCompany: 1,
		Groups: []game.Group{
			{ID: 1, Parent: game.RootGroup, Owner: 1, VehicleType: game.VehicleRail, Name: "Mainline"},
		},
		UsedLiveries:     0x7,
		TwoColourSchemes: true,
	}
}
