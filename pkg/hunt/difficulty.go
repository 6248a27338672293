package hunt

// Difficulty selects one of the fixed hunt configurations.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Config is the tuning for one difficulty.
type Config struct {
	RequiredClues int // clues needed to solve the case
	ExtraRooms    int // rooms drawn from the extras pool on top of the base four
	Killers       int // rooms the killer hides in
	Lives         int // survivable killer encounters
}

var configs = map[Difficulty]Config{
	DifficultyEasy:   {RequiredClues: 3, ExtraRooms: 0, Killers: 1, Lives: 0},
	DifficultyMedium: {RequiredClues: 5, ExtraRooms: 1, Killers: 1, Lives: 0},
	DifficultyHard:   {RequiredClues: 8, ExtraRooms: 2, Killers: 2, Lives: 1},
}

// ParseDifficulty matches normalized player input against the known
// difficulty names.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(s)
	_, ok := configs[d]
	return d, ok
}

// Config returns the tuning for the difficulty. It panics on an
// unknown difficulty; callers go through ParseDifficulty first.
func (d Difficulty) Config() Config {
	cfg, ok := configs[d]
	if !ok {
		panic("hunt: unknown difficulty " + string(d))
	}
	return cfg
}
