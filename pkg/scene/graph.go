package scene

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/house-hunter/pkg/chat"
	"github.com/jwebster45206/house-hunter/pkg/hunt"
)

//go:embed data/scenes.yaml
var scenesYAML []byte

type sceneData struct {
	Text   []string `yaml:"text"`
	Danger bool     `yaml:"danger"`
}

// edges declares the statically known transition targets per scene.
// The hunt scene self-loops through its sub-modes and is not listed
// as its own target.
var edges = map[string][]string{
	KeyStart:       {KeyInvestigate, KeyAvoid},
	KeyInvestigate: {KeyHunt},
	KeyHunt:        {KeyEndingClues, KeyEndingCaught},
	KeyAvoid:       {KeyInvestigate, KeyEndingAvoid},
	KeyCallPolice:  {KeyEndingWait, KeyWarehouse},
	KeyWarehouse:   {KeyEndingPipe, KeyEndingCall},
}

// Graph is the fixed directed graph of story scenes. It is built
// once at startup and never mutated.
type Graph struct {
	scenes map[string]*Scene
}

// NewGraph loads the embedded scene table and wires each
// non-terminal scene's parse func. The hunt scene delegates to the
// given session.
func NewGraph(h *hunt.Session) (*Graph, error) {
	var data map[string]sceneData
	if err := yaml.Unmarshal(scenesYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse scene table: %w", err)
	}

	parsers := map[string]ParseFunc{
		KeyStart:       startParse,
		KeyInvestigate: investigateParse(h),
		KeyHunt:        huntParse(h),
		KeyAvoid:       avoidParse,
		KeyCallPolice:  callPoliceParse,
		KeyWarehouse:   warehouseParse,
	}

	g := &Graph{scenes: make(map[string]*Scene, len(data))}
	for key, d := range data {
		g.scenes[key] = &Scene{
			Key:    key,
			Text:   d.Text,
			Danger: d.Danger,
			Parse:  parsers[key],
		}
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene graph: %w", err)
	}
	return g, nil
}

// Scene looks up a scene by key.
func (g *Graph) Scene(key string) (*Scene, bool) {
	s, ok := g.scenes[key]
	return s, ok
}

// Keys returns all scene keys in sorted order.
func (g *Graph) Keys() []string {
	keys := make([]string, 0, len(g.scenes))
	for key := range g.scenes {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Validate checks graph integrity: the entry scenes exist, every
// declared edge source and target exists, and every ending is
// terminal. A transition func returning a key outside the graph at
// runtime is a programming error and panics in the engine.
func (g *Graph) Validate() error {
	for _, key := range []string{KeyPrologue, KeyStart} {
		if _, ok := g.scenes[key]; !ok {
			return fmt.Errorf("missing required scene %q", key)
		}
	}
	for src, targets := range edges {
		s, ok := g.scenes[src]
		if !ok {
			return fmt.Errorf("edge source %q is not in the scene table", src)
		}
		if s.Terminal() {
			return fmt.Errorf("scene %q has outgoing edges but no parse func", src)
		}
		for _, target := range targets {
			if _, ok := g.scenes[target]; !ok {
				return fmt.Errorf("scene %q points at unknown scene %q", src, target)
			}
		}
	}
	for key, s := range g.scenes {
		if _, hasEdges := edges[key]; !hasEdges && !s.Terminal() {
			return fmt.Errorf("scene %q has a parse func but no declared edges", key)
		}
	}
	return nil
}

var (
	startYes = []string{"y", "yes", "yeah", "yep", "ok", "okay", "sure"}
	startNo  = []string{"n", "no", "nope", "nah"}
	goWords  = []string{"go", "warehouse", "head", "move"}
)

func startParse(input string) Transition {
	t := Normalize(input)
	if slices.Contains(startYes, t) {
		return goTo(KeyInvestigate)
	}
	if slices.Contains(startNo, t) {
		return goTo(KeyAvoid)
	}
	return stay(`Please answer with "yes" or "no".`)
}

// investigateParse moves to the hunt on any input, arming difficulty
// selection and prompting for it.
func investigateParse(h *hunt.Session) ParseFunc {
	return func(string) Transition {
		h.Engage()
		return Transition{
			Next: KeyHunt,
			Messages: []chat.Message{
				chat.System("Choose a difficulty: easy (3 clues), medium (5, +1 room), hard (8, +2 rooms)."),
				chat.System("Type: easy, medium, or hard."),
			},
		}
	}
}

// huntParse delegates to the hunt session based on its sub-mode.
func huntParse(h *hunt.Session) ParseFunc {
	return func(input string) Transition {
		t := Normalize(input)
		if !h.Engaged() {
			h.Engage()
			return stayWith([]chat.Message{chat.System("Type: easy, medium, or hard.")})
		}
		switch h.Mode() {
		case hunt.ModeChooseDifficulty:
			d, ok := hunt.ParseDifficulty(t)
			if !ok {
				return stay("Type: easy, medium, or hard.")
			}
			return stayWith(h.Start(d))
		case hunt.ModeChooseRoom:
			msgs, outcome := h.ChooseRoom(t)
			if outcome == hunt.OutcomeCaught {
				return Transition{Next: KeyEndingCaught, Messages: msgs}
			}
			return stayWith(msgs)
		case hunt.ModeChooseItem:
			msgs, outcome := h.ChooseItem(t)
			if outcome == hunt.OutcomeSolved {
				return Transition{Next: KeyEndingClues, Messages: msgs}
			}
			return stayWith(msgs)
		}
		return Transition{}
	}
}

func avoidParse(input string) Transition {
	t := Normalize(input)
	if t == "y" || t == "yes" {
		return goTo(KeyInvestigate)
	}
	if t == "n" || t == "no" {
		return goTo(KeyEndingAvoid)
	}
	return stay(`Answer "yes" or "no".`)
}

// callPoliceParse and warehouseParse are reachable only via a future
// entry point; the scenes stay in the table for completeness.
func callPoliceParse(input string) Transition {
	t := Normalize(input)
	if strings.Contains(t, "wait") {
		return goTo(KeyEndingWait)
	}
	for _, w := range goWords {
		if strings.Contains(t, w) {
			return goTo(KeyWarehouse)
		}
	}
	return stay(`Type "wait" or "go".`)
}

func warehouseParse(input string) Transition {
	t := Normalize(input)
	if strings.Contains(t, "pipe") {
		return goTo(KeyEndingPipe)
	}
	if strings.Contains(t, "call") {
		return goTo(KeyEndingCall)
	}
	return stay(`Type "pipe" or "call".`)
}
