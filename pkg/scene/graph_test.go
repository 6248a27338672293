package scene

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/house-hunter/pkg/hunt"
)

func newTestGraph(t *testing.T) (*Graph, *hunt.Session) {
	t.Helper()
	catalog, err := hunt.NewCatalog()
	require.NoError(t, err)
	session := hunt.NewSession(catalog, rand.New(rand.NewPCG(1, 1)), nil)
	g, err := NewGraph(session)
	require.NoError(t, err)
	return g, session
}

func TestNewGraph(t *testing.T) {
	g, _ := newTestGraph(t)

	assert.Len(t, g.Keys(), 13)
	require.NoError(t, g.Validate())

	for _, key := range []string{
		KeyEndingCaught, KeyEndingClues, KeyEndingAvoid,
		KeyEndingWait, KeyEndingPipe, KeyEndingCall,
	} {
		s, ok := g.Scene(key)
		require.True(t, ok, "missing ending %q", key)
		assert.True(t, s.Terminal(), "ending %q should be terminal", key)
	}

	huntScene, ok := g.Scene(KeyHunt)
	require.True(t, ok)
	assert.Empty(t, huntScene.Text, "hunt output all comes from the session")
	assert.False(t, huntScene.Terminal())
}

func TestGraph_DangerScenes(t *testing.T) {
	g, _ := newTestGraph(t)

	for key, wantDanger := range map[string]bool{
		KeyEndingCaught: true,
		KeyEndingCall:   true,
		KeyEndingClues:  false,
		KeyStart:        false,
	} {
		s, ok := g.Scene(key)
		require.True(t, ok)
		assert.Equal(t, wantDanger, s.Danger, "scene %q", key)
	}
}

func TestStartParse(t *testing.T) {
	g, _ := newTestGraph(t)
	s, _ := g.Scene(KeyStart)

	tests := []struct {
		input        string
		wantNext     string
		wantFeedback string
	}{
		{"yes", KeyInvestigate, ""},
		{"  YES  ", KeyInvestigate, ""},
		{"yeah", KeyInvestigate, ""},
		{"sure", KeyInvestigate, ""},
		{"ok", KeyInvestigate, ""},
		{"no", KeyAvoid, ""},
		{"NAH", KeyAvoid, ""},
		{"maybe", "", `Please answer with "yes" or "no".`},
		{"yes please", "", `Please answer with "yes" or "no".`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := s.Parse(tt.input)
			assert.Equal(t, tt.wantNext, result.Next)
			assert.Equal(t, tt.wantFeedback, result.Feedback)
		})
	}
}

func TestAvoidParse(t *testing.T) {
	g, _ := newTestGraph(t)
	s, _ := g.Scene(KeyAvoid)

	assert.Equal(t, KeyInvestigate, s.Parse("yes").Next)
	assert.Equal(t, KeyInvestigate, s.Parse("y").Next)
	assert.Equal(t, KeyEndingAvoid, s.Parse("no").Next)

	// avoid's vocabulary is stricter than start's
	result := s.Parse("yeah")
	assert.True(t, result.Stay())
	assert.Equal(t, `Answer "yes" or "no".`, result.Feedback)
}

func TestCallPoliceParse(t *testing.T) {
	g, _ := newTestGraph(t)
	s, _ := g.Scene(KeyCallPolice)

	tests := []struct {
		input    string
		wantNext string
	}{
		{"wait", KeyEndingWait},
		{"i'll wait here", KeyEndingWait},
		{"go", KeyWarehouse},
		{"head to the warehouse", KeyWarehouse},
		{"move in", KeyWarehouse},
		{"hm", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := s.Parse(tt.input)
			assert.Equal(t, tt.wantNext, result.Next)
			if tt.wantNext == "" {
				assert.Equal(t, `Type "wait" or "go".`, result.Feedback)
			}
		})
	}
}

func TestWarehouseParse(t *testing.T) {
	g, _ := newTestGraph(t)
	s, _ := g.Scene(KeyWarehouse)

	assert.Equal(t, KeyEndingPipe, s.Parse("grab the pipe").Next)
	assert.Equal(t, KeyEndingCall, s.Parse("call out").Next)

	result := s.Parse("hide")
	assert.True(t, result.Stay())
	assert.Equal(t, `Type "pipe" or "call".`, result.Feedback)
}

func TestInvestigateParse(t *testing.T) {
	g, session := newTestGraph(t)
	s, _ := g.Scene(KeyInvestigate)

	result := s.Parse("anything at all")
	assert.Equal(t, KeyHunt, result.Next)
	assert.True(t, session.Engaged())
	assert.Equal(t, hunt.ModeChooseDifficulty, session.Mode())

	require.Len(t, result.Messages, 2)
	assert.Equal(t, "Choose a difficulty: easy (3 clues), medium (5, +1 room), hard (8, +2 rooms).", result.Messages[0].Text)
	assert.Equal(t, "Type: easy, medium, or hard.", result.Messages[1].Text)
}

func TestHuntParse(t *testing.T) {
	t.Run("first entry engages the hunt", func(t *testing.T) {
		g, session := newTestGraph(t)
		s, _ := g.Scene(KeyHunt)

		result := s.Parse("hello")
		assert.True(t, result.Stay())
		assert.True(t, session.Engaged())
		require.Len(t, result.Messages, 1)
		assert.Equal(t, "Type: easy, medium, or hard.", result.Messages[0].Text)
	})

	t.Run("invalid difficulty", func(t *testing.T) {
		g, session := newTestGraph(t)
		s, _ := g.Scene(KeyHunt)
		session.Engage()

		result := s.Parse("nightmare")
		assert.True(t, result.Stay())
		assert.Equal(t, "Type: easy, medium, or hard.", result.Feedback)
		assert.Equal(t, hunt.ModeChooseDifficulty, session.Mode())
	})

	t.Run("difficulty starts the hunt", func(t *testing.T) {
		g, session := newTestGraph(t)
		s, _ := g.Scene(KeyHunt)
		session.Engage()

		result := s.Parse("EASY")
		assert.True(t, result.Stay())
		assert.Equal(t, hunt.ModeChooseRoom, session.Mode())
		assert.Equal(t, hunt.DifficultyEasy, session.Difficulty())
		assert.NotEmpty(t, result.Messages)
	})

	t.Run("caught transition", func(t *testing.T) {
		g, session := newTestGraph(t)
		s, _ := g.Scene(KeyHunt)
		session.Engage()
		s.Parse("easy")

		killer := session.KillerRooms()[0]
		result := s.Parse(killer)
		assert.Equal(t, KeyEndingCaught, result.Next)
	})

	t.Run("solving transition", func(t *testing.T) {
		g, session := newTestGraph(t)
		s, _ := g.Scene(KeyHunt)
		session.Engage()
		s.Parse("easy")

		for _, pair := range session.CluePairs() {
			room, spot, ok := strings.Cut(pair, "|")
			require.True(t, ok)
			result := s.Parse(room)
			require.True(t, result.Stay())
			result = s.Parse(spot)
			if session.FoundClues() == session.RequiredClues() {
				assert.Equal(t, KeyEndingClues, result.Next)
			} else {
				assert.True(t, result.Stay())
			}
		}
		assert.Equal(t, session.RequiredClues(), session.FoundClues())
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "yes", Normalize("  YES \n"))
	assert.Equal(t, "", Normalize("   "))
}
