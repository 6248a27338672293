package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/house-hunter/pkg/chat"
	"github.com/jwebster45206/house-hunter/pkg/hunt"
	"github.com/jwebster45206/house-hunter/pkg/scene"
)

// RestartCommand resets the session from any scene, including endings.
const RestartCommand = "restart"

const endedMessage = `The story has ended. Type "restart" to begin again.`

// Response is what one player action produced. When Clear is set the
// display should drop its transcript and show Messages alone.
type Response struct {
	Messages []chat.Message
	Clear    bool
}

// Engine drives the story: it owns the current scene key, one hunt
// session and the output transcript. All dispatch is synchronous and
// single-threaded; the display calls SubmitInput one action at a time.
type Engine struct {
	id     uuid.UUID
	logger *slog.Logger
	graph  *scene.Graph
	hunt   *hunt.Session

	current    string
	transcript []chat.Message
}

// New builds an engine over the embedded catalog and scene table and
// emits the prologue plus the opening scene into the transcript. A
// nil rng gets a randomly seeded source.
func New(rng *rand.Rand, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	catalog, err := hunt.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load room catalog: %w", err)
	}
	session := hunt.NewSession(catalog, rng, logger)
	graph, err := scene.NewGraph(session)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene graph: %w", err)
	}

	e := &Engine{
		id:      uuid.New(),
		logger:  logger,
		graph:   graph,
		hunt:    session,
		current: scene.KeyStart,
	}

	// Backstory shows once, without changing the current scene.
	prologue, _ := graph.Scene(scene.KeyPrologue)
	for _, line := range prologue.Text {
		e.emit(chat.System(line))
	}
	e.renderScene(scene.KeyStart)

	logger.Debug("engine created", "session_id", e.id)
	return e, nil
}

// ID returns the session identifier.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// CurrentScene returns the key of the active scene.
func (e *Engine) CurrentScene() string {
	return e.current
}

// Hunt exposes the hunt session for read-only status display.
func (e *Engine) Hunt() *hunt.Session {
	return e.hunt
}

// Transcript returns a copy of every line emitted so far.
func (e *Engine) Transcript() []chat.Message {
	return slices.Clone(e.transcript)
}

// SubmitInput dispatches one player action. Empty input is a no-op.
// "restart" short-circuits normal dispatch from any scene.
func (e *Engine) SubmitInput(raw string) Response {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Response{}
	}

	e.emit(chat.Player("> " + trimmed))

	if scene.Normalize(trimmed) == RestartCommand {
		return e.Restart()
	}

	sc, ok := e.graph.Scene(e.current)
	if !ok {
		panic(fmt.Sprintf("game: current scene %q is not in the graph", e.current))
	}

	start := len(e.transcript) - 1
	if sc.Terminal() {
		e.emit(chat.System(endedMessage))
		return Response{Messages: slices.Clone(e.transcript[start:])}
	}

	result := sc.Parse(trimmed)
	e.emit(result.Messages...)
	if result.Stay() {
		if result.Feedback != "" {
			e.emit(chat.System(result.Feedback))
		}
		return Response{Messages: slices.Clone(e.transcript[start:])}
	}

	if _, ok := e.graph.Scene(result.Next); !ok {
		panic(fmt.Sprintf("game: scene %q returned unknown scene %q", e.current, result.Next))
	}
	e.logger.Debug("scene transition", "session_id", e.id, "from", e.current, "to", result.Next)
	e.renderScene(result.Next)
	return Response{Messages: slices.Clone(e.transcript[start:])}
}

// Restart clears the transcript, resets the hunt and returns to the
// opening scene.
func (e *Engine) Restart() Response {
	e.logger.Debug("session restart", "session_id", e.id)
	e.transcript = nil
	e.hunt.Reset()
	e.renderScene(scene.KeyStart)
	return Response{Messages: e.Transcript(), Clear: true}
}

// About returns the fixed about lines shown by the display on demand.
func (e *Engine) About() []chat.Message {
	return []chat.Message{
		chat.System("Homicide Detective — House Hunter case"),
		chat.System("A text-based investigation: find clues, avoid killer rooms, solve the case."),
		chat.System("Type 'restart' anytime to begin again."),
	}
}

// renderScene emits a scene's display lines and makes it current.
func (e *Engine) renderScene(key string) {
	sc, ok := e.graph.Scene(key)
	if !ok {
		return
	}
	kind := chat.KindGame
	if sc.Danger {
		kind = chat.KindDanger
	}
	for _, line := range sc.Text {
		e.emit(chat.Message{Kind: kind, Text: line})
	}
	e.current = key
}

func (e *Engine) emit(msgs ...chat.Message) {
	e.transcript = append(e.transcript, msgs...)
}
