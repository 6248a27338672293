package hunt

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/rooms.yaml
var roomsYAML []byte

// Catalog is the fixed set of searchable rooms and their hiding spots.
// It is immutable after construction.
type Catalog struct {
	spots      map[string][]string
	baseRooms  []string
	extrasPool []string
}

type catalogData struct {
	BaseRooms  []string            `yaml:"base_rooms"`
	ExtrasPool []string            `yaml:"extras_pool"`
	Rooms      map[string][]string `yaml:"rooms"`
}

// NewCatalog loads the embedded room catalog.
func NewCatalog() (*Catalog, error) {
	var data catalogData
	if err := yaml.Unmarshal(roomsYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse room catalog: %w", err)
	}

	c := &Catalog{
		spots:      data.Rooms,
		baseRooms:  data.BaseRooms,
		extrasPool: data.ExtrasPool,
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid room catalog: %w", err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.baseRooms) == 0 {
		return fmt.Errorf("no base rooms defined")
	}
	for _, room := range append(append([]string{}, c.baseRooms...), c.extrasPool...) {
		spots, ok := c.spots[room]
		if !ok {
			return fmt.Errorf("room %q has no hiding spots", room)
		}
		if len(spots) == 0 {
			return fmt.Errorf("room %q has an empty spot list", room)
		}
	}
	return nil
}

// HidingSpots returns the ordered hiding spots for a room.
// Rooms not in the catalog return nil.
func (c *Catalog) HidingSpots(room string) []string {
	return c.spots[room]
}

// BaseRooms returns the rooms every hunt starts with.
func (c *Catalog) BaseRooms() []string {
	return c.baseRooms
}

// ExtrasPool returns the rooms that harder difficulties draw from.
func (c *Catalog) ExtrasPool() []string {
	return c.extrasPool
}

// RoomCount returns the total number of rooms in the catalog.
func (c *Catalog) RoomCount() int {
	return len(c.spots)
}
