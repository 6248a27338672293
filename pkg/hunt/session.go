package hunt

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/jwebster45206/house-hunter/pkg/chat"
)

// Mode is the hunt's current input sub-mode.
type Mode string

const (
	ModeChooseDifficulty Mode = "choose-difficulty"
	ModeChooseRoom       Mode = "choose-room"
	ModeChooseItem       Mode = "choose-item"
)

// Outcome signals whether a search action ended the hunt.
type Outcome int

const (
	// OutcomeStay means the hunt continues.
	OutcomeStay Outcome = iota
	// OutcomeCaught means the player entered a killer room with no lives left.
	OutcomeCaught
	// OutcomeSolved means the player found every required clue.
	OutcomeSolved
)

// pairSep joins a room and a hiding spot into a clue pair key.
const pairSep = "|"

// Session owns the randomized setup and search state of one hunt.
// It is not safe for concurrent use; the game dispatch path is
// single-threaded.
type Session struct {
	catalog *Catalog
	rng     *rand.Rand
	logger  *slog.Logger

	engaged       bool
	mode          Mode
	difficulty    Difficulty
	activeRooms   []string
	killerRooms   []string
	requiredClues int
	cluePairs     map[string]bool
	foundPairs    map[string]bool
	currentRoom   string
	lives         int
}

// NewSession creates an un-started hunt over the given catalog.
// A nil rng gets a randomly seeded source; tests inject a seeded one.
func NewSession(catalog *Catalog, rng *rand.Rand, logger *slog.Logger) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		catalog: catalog,
		rng:     rng,
		logger:  logger,
	}
	s.Reset()
	return s
}

// Reset returns the session to its un-started state.
func (s *Session) Reset() {
	s.engaged = false
	s.mode = ModeChooseDifficulty
	s.difficulty = ""
	s.activeRooms = nil
	s.killerRooms = nil
	s.requiredClues = 0
	s.cluePairs = make(map[string]bool)
	s.foundPairs = make(map[string]bool)
	s.currentRoom = ""
	s.lives = 0
}

// Engage puts the session into difficulty selection. Idempotent.
func (s *Session) Engage() {
	s.engaged = true
	s.mode = ModeChooseDifficulty
}

// Engaged reports whether the hunt flow has been entered.
func (s *Session) Engaged() bool {
	return s.engaged
}

// Mode returns the current input sub-mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Difficulty returns the selected difficulty, or "" before selection.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// ActiveRooms returns the rooms in play, in prompt order.
func (s *Session) ActiveRooms() []string {
	return slices.Clone(s.activeRooms)
}

// KillerRooms returns the rooms the killer hides in.
func (s *Session) KillerRooms() []string {
	return slices.Clone(s.killerRooms)
}

// CluePairs returns the room|spot pairs hiding clues, sorted.
func (s *Session) CluePairs() []string {
	pairs := make([]string, 0, len(s.cluePairs))
	for pair := range s.cluePairs {
		pairs = append(pairs, pair)
	}
	slices.Sort(pairs)
	return pairs
}

// RequiredClues returns the clue count needed to solve the case.
func (s *Session) RequiredClues() int {
	return s.requiredClues
}

// FoundClues returns how many clues the player has found so far.
func (s *Session) FoundClues() int {
	return len(s.foundPairs)
}

// Lives returns the remaining survivable killer encounters.
func (s *Session) Lives() int {
	return s.lives
}

// CurrentRoom returns the room being searched, or "" between rooms.
func (s *Session) CurrentRoom() string {
	return s.currentRoom
}

// Start sets up a new hunt for the difficulty: draws extra rooms,
// places the killer, scatters clues in non-killer rooms and resets
// the search state. Undersized pools are absorbed by clamping, so
// there are no error conditions.
func (s *Session) Start(d Difficulty) []chat.Message {
	cfg := d.Config()

	extras := s.sample(s.catalog.ExtrasPool(), cfg.ExtraRooms)
	s.activeRooms = append(slices.Clone(s.catalog.BaseRooms()), extras...)
	s.killerRooms = s.sample(s.activeRooms, cfg.Killers)
	s.requiredClues = cfg.RequiredClues
	s.lives = cfg.Lives

	// Candidate clue pairs, in catalog order, excluding killer rooms.
	var candidates []string
	for _, room := range s.activeRooms {
		if slices.Contains(s.killerRooms, room) {
			continue
		}
		for _, spot := range s.catalog.HidingSpots(room) {
			candidates = append(candidates, room+pairSep+spot)
		}
	}
	s.cluePairs = make(map[string]bool)
	for _, pair := range s.sample(candidates, cfg.RequiredClues) {
		s.cluePairs[pair] = true
	}

	s.foundPairs = make(map[string]bool)
	s.mode = ModeChooseRoom
	s.currentRoom = ""
	s.engaged = true
	s.difficulty = d

	s.logger.Debug("hunt started",
		"difficulty", d,
		"rooms", len(s.activeRooms),
		"killers", len(s.killerRooms),
		"clues", len(s.cluePairs),
		"lives", s.lives)

	msgs := []chat.Message{
		chat.Systemf("Find %d clues without entering the killer's room.", s.requiredClues),
	}
	return append(msgs, s.promptRooms()...)
}

// ChooseRoom handles input while in ModeChooseRoom. The name must
// already be normalized.
func (s *Session) ChooseRoom(name string) ([]chat.Message, Outcome) {
	if !slices.Contains(s.activeRooms, name) {
		return []chat.Message{
			chat.Systemf("Type a room: %s.", strings.Join(s.activeRooms, ", ")),
		}, OutcomeStay
	}
	if slices.Contains(s.killerRooms, name) {
		if s.lives > 0 {
			s.lives--
			msgs := []chat.Message{
				chat.Danger("The killer attacks! You barely escape this time. Be careful."),
				chat.Systemf("You can survive %d more encounter(s).", s.lives),
			}
			return append(msgs, s.promptRooms()...), OutcomeStay
		}
		return nil, OutcomeCaught
	}
	s.currentRoom = name
	s.mode = ModeChooseItem
	return s.promptItems(name), OutcomeStay
}

// ChooseItem handles input while in ModeChooseItem. A hiding spot
// matches on exact equality or when the full spot name appears
// inside the input ("open the desk drawer" matches "desk drawer"),
// first match in catalog order.
func (s *Session) ChooseItem(input string) ([]chat.Message, Outcome) {
	room := s.currentRoom
	spots := s.catalog.HidingSpots(room)

	spot, ok := matchSpot(input, spots)
	if !ok {
		return []chat.Message{
			chat.Systemf("In the %s, type one of: %s", room, strings.Join(spots, " / ")),
		}, OutcomeStay
	}

	var msgs []chat.Message
	pair := room + pairSep + spot
	switch {
	case s.cluePairs[pair] && !s.foundPairs[pair]:
		s.foundPairs[pair] = true
		msgs = append(msgs, chat.Systemf("You found a clue in the %s (%s). (%d/%d)",
			room, spot, len(s.foundPairs), s.requiredClues))
	case !s.cluePairs[pair]:
		msgs = append(msgs, chat.System("Nothing here. Keep looking."))
	default:
		msgs = append(msgs, chat.System("You already found this clue."))
	}

	if len(s.foundPairs) >= s.requiredClues {
		return msgs, OutcomeSolved
	}

	s.mode = ModeChooseRoom
	s.currentRoom = ""
	return append(msgs, s.promptRooms()...), OutcomeStay
}

func matchSpot(input string, spots []string) (string, bool) {
	for _, spot := range spots {
		if input == spot || strings.Contains(input, spot) {
			return spot, true
		}
	}
	return "", false
}

func (s *Session) promptRooms() []chat.Message {
	status := fmt.Sprintf("Status — Clues: %d/%d", len(s.foundPairs), s.requiredClues)
	if s.lives > 0 {
		status += fmt.Sprintf(" • Lives: %d", s.lives)
	}
	if s.difficulty != "" {
		status += fmt.Sprintf(" • Difficulty: %s", s.difficulty)
	}
	return []chat.Message{
		chat.System(status),
		chat.Systemf("Rooms: %s", strings.Join(s.activeRooms, ", ")),
		chat.System("Choose a room to search. Type the room name."),
	}
}

func (s *Session) promptItems(room string) []chat.Message {
	spots := s.catalog.HidingSpots(room)
	return []chat.Message{
		chat.Systemf("You're in the %s. Look where? (%s)", room, strings.Join(spots, " / ")),
	}
}

// sample draws k elements uniformly without replacement. k is
// clamped to the pool size.
func (s *Session) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}
	picks := slices.Clone(pool)
	s.rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})
	return picks[:k]
}
