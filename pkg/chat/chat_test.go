package chat

import "testing"

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		wantKind MessageKind
		wantText string
	}{
		{"game", Game("a dark hallway"), KindGame, "a dark hallway"},
		{"player", Player("> yes"), KindPlayer, "> yes"},
		{"system", System("Type a room."), KindSystem, "Type a room."},
		{"systemf", Systemf("Clues: %d/%d", 2, 5), KindSystem, "Clues: 2/5"},
		{"danger", Danger("The killer attacks!"), KindDanger, "The killer attacks!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.msg.Kind != tt.wantKind {
				t.Errorf("Kind = %q; want %q", tt.msg.Kind, tt.wantKind)
			}
			if tt.msg.Text != tt.wantText {
				t.Errorf("Text = %q; want %q", tt.msg.Text, tt.wantText)
			}
		})
	}
}
