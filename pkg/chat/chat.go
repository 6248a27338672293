package chat

import "fmt"

// MessageKind classifies a line of game output so the display
// can style it. The core never inspects kinds after emitting them.
type MessageKind string

const (
	KindGame   MessageKind = "game"   // Narrative scene text
	KindPlayer MessageKind = "player" // Echo of the player's input
	KindSystem MessageKind = "system" // Prompts, status and feedback
	KindDanger MessageKind = "danger" // Killer encounters and dark endings
)

// Message is a single line of output emitted by the game core
// and consumed by a display.
type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// Game returns a narrative message.
func Game(text string) Message {
	return Message{Kind: KindGame, Text: text}
}

// Player returns an echo of player input.
func Player(text string) Message {
	return Message{Kind: KindPlayer, Text: text}
}

// System returns a prompt or status message.
func System(text string) Message {
	return Message{Kind: KindSystem, Text: text}
}

// Systemf returns a formatted prompt or status message.
func Systemf(format string, args ...any) Message {
	return Message{Kind: KindSystem, Text: fmt.Sprintf(format, args...)}
}

// Danger returns a danger-flagged message.
func Danger(text string) Message {
	return Message{Kind: KindDanger, Text: text}
}
