// Command validate checks the embedded game data: the room catalog
// and the scene graph. Run it in CI after editing the YAML files.
package main

import (
	"fmt"
	"os"

	"github.com/jwebster45206/house-hunter/pkg/hunt"
	"github.com/jwebster45206/house-hunter/pkg/scene"
)

// spotsPerRoom is the fixed shape of the catalog; hunt balance
// assumes it.
const spotsPerRoom = 4

func main() {
	v := &dataValidator{}

	if err := v.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	for _, e := range v.errors {
		fmt.Fprintf(os.Stderr, "  - %s\n", e)
	}
	if len(v.errors) > 0 {
		os.Exit(1)
	}

	fmt.Println("Game data is valid!")
}

type dataValidator struct {
	errors []string
}

func (v *dataValidator) errorf(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *dataValidator) validate() error {
	catalog, err := hunt.NewCatalog()
	if err != nil {
		return err
	}
	v.validateCatalog(catalog)

	// Graph construction runs its own integrity checks.
	graph, err := scene.NewGraph(hunt.NewSession(catalog, nil, nil))
	if err != nil {
		return err
	}
	v.validateGraph(graph)

	return nil
}

func (v *dataValidator) validateCatalog(c *hunt.Catalog) {
	rooms := append(append([]string{}, c.BaseRooms()...), c.ExtrasPool()...)
	if len(rooms) != c.RoomCount() {
		v.errorf("catalog has %d rooms but base+extras name %d", c.RoomCount(), len(rooms))
	}
	seen := make(map[string]bool)
	for _, room := range rooms {
		if seen[room] {
			v.errorf("room %q appears twice", room)
		}
		seen[room] = true
		if n := len(c.HidingSpots(room)); n != spotsPerRoom {
			v.errorf("room %q has %d hiding spots, want %d", room, n, spotsPerRoom)
		}
	}
}

func (v *dataValidator) validateGraph(g *scene.Graph) {
	for _, key := range g.Keys() {
		s, _ := g.Scene(key)
		if s.Terminal() && len(s.Text) == 0 {
			v.errorf("terminal scene %q has no display text", key)
		}
	}
}
