package scene

import (
	"strings"

	"github.com/jwebster45206/house-hunter/pkg/chat"
)

// Scene keys. Terminal endings carry no parse func.
const (
	KeyPrologue     = "prologue"
	KeyStart        = "start"
	KeyInvestigate  = "investigate"
	KeyHunt         = "hunt"
	KeyAvoid        = "avoid"
	KeyCallPolice   = "callPolice"
	KeyWarehouse    = "warehouse"
	KeyEndingCaught = "ending_caught_by_killer"
	KeyEndingClues  = "ending_all_clues"
	KeyEndingAvoid  = "ending_avoid"
	KeyEndingWait   = "ending_police_wait"
	KeyEndingPipe   = "ending_confront"
	KeyEndingCall   = "ending_betrayed"
)

// Transition is the result of feeding player input to a scene:
// either a move to the next scene, or a stay with optional feedback.
type Transition struct {
	Next     string         // key of the next scene; empty means stay
	Feedback string         // system feedback shown when staying
	Messages []chat.Message // lines emitted while handling the input
}

// Stay reports whether the player remains in the current scene.
func (t Transition) Stay() bool {
	return t.Next == ""
}

// ParseFunc handles normalized-or-raw player input for one scene.
// The graph hands it the trimmed input; most implementations
// normalize before matching.
type ParseFunc func(input string) Transition

// Scene is one node of the story graph.
type Scene struct {
	Key    string
	Text   []string
	Danger bool // affects presentation of the scene text only
	Parse  ParseFunc
}

// Terminal reports whether the story ends at this scene.
func (s *Scene) Terminal() bool {
	return s.Parse == nil
}

// Normalize lowercases and trims player input for vocabulary matching.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func goTo(key string) Transition {
	return Transition{Next: key}
}

func stay(feedback string) Transition {
	return Transition{Feedback: feedback}
}

func stayWith(msgs []chat.Message) Transition {
	return Transition{Messages: msgs}
}
