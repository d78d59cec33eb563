package ui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pocketpet/internal/pet"
	"pocketpet/internal/session"
)

type nopDevice struct{}

func (nopDevice) Vibrate([]time.Duration) {}

func (nopDevice) PlayClip(context.Context, string) error { return nil }

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	orig := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(orig) })

	m := NewModel(session.New(nopDevice{}), "Pip")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestViewport(t *testing.T) {
	m := newTestModel(t, 40, 45)

	v := m.Session.Viewport()
	if v.Width != 400 || v.Height != 800 {
		t.Errorf("Expected 400x800 viewport, got %vx%v", v.Width, v.Height)
	}
	if got := m.Session.Position(); got != (pet.Position{X: 100, Y: 200}) {
		t.Errorf("Expected avatar at (100,200), got %v", got)
	}
}

func TestDecayTicks(t *testing.T) {
	m := newTestModel(t, 80, 30)
	gen := m.Session.Generation()

	m, cmd := update(t, m, decayTickMsg{gen: gen})
	if cmd == nil {
		t.Error("Live tick should re-arm the timer")
	}
	if m.Session.Mood().Happiness != 49 {
		t.Errorf("Expected happiness 49, got %d", m.Session.Mood().Happiness)
	}

	_, cmd = update(t, m, decayTickMsg{gen: gen + 1})
	if cmd != nil {
		t.Error("Tick from another generation should not re-arm")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.Quitting {
		t.Error("q should quit")
	}
	before := m.Session.Mood()
	_, cmd = update(t, m, decayTickMsg{gen: gen})
	if cmd != nil || m.Session.Mood() != before {
		t.Error("No tick should apply after quitting")
	}
}

func TestActions(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		wantHappiness int
		wantHunger    int
		wantAnim      AnimationType
	}{
		{"Feed", "f", 50, 60, AnimFeed},
		{"Play", "p", 60, 50, AnimPlay},
		{"Bark", "b", 50, 50, AnimBark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 80, 30)
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if cmd == nil {
				t.Error("Action should return commands for effects and animation")
			}
			mood := m.Session.Mood()
			if mood.Happiness != tt.wantHappiness || mood.Hunger != tt.wantHunger {
				t.Errorf("Expected (%d,%d), got %s", tt.wantHappiness, tt.wantHunger, mood)
			}
			if m.Animation.Type != tt.wantAnim {
				t.Errorf("Expected animation %v, got %v", tt.wantAnim, m.Animation.Type)
			}
		})
	}
}

func TestMenuSelection(t *testing.T) {
	m := newTestModel(t, 80, 30)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Choice != 1 {
		t.Fatalf("Expected choice 1, got %d", m.Choice)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session.Mood().Happiness != 60 {
		t.Errorf("Enter on Play should raise happiness, got %d", m.Session.Mood().Happiness)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Choice != 0 {
		t.Errorf("Choice should stop at 0, got %d", m.Choice)
	}
}

func TestMenuClick(t *testing.T) {
	m := newTestModel(t, 80, 30)
	// "Feed" spans columns 0-5, then a gap, then "Play" from column 8
	m, _ = update(t, m, tea.MouseMsg{X: 9, Y: m.menuRow(), Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Session.Mood().Happiness != 60 {
		t.Errorf("Clicking Play should raise happiness, got %d", m.Session.Mood().Happiness)
	}
	if m.Choice != 1 {
		t.Errorf("Expected Play to be selected, got %d", m.Choice)
	}
}

func TestMenuRowMatchesView(t *testing.T) {
	for _, height := range []int{4, 5, 6, 20} {
		m := newTestModel(t, 80, height)
		lines := strings.Split(m.View(), "\n")
		row := m.menuRow()
		if row >= len(lines) {
			t.Fatalf("height %d: menu row %d past the %d rendered lines", height, row, len(lines))
		}
		if !strings.Contains(lines[row], "Feed") || !strings.Contains(lines[row], "Quit") {
			t.Errorf("height %d: expected the menu on line %d, got %q", height, row, lines[row])
		}

		m, _ = update(t, m, tea.MouseMsg{X: 1, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		if m.Session.Mood().Hunger != 60 {
			t.Errorf("height %d: clicking Feed should raise hunger, got %d", height, m.Session.Mood().Hunger)
		}
	}
}

func TestButtonAt(t *testing.T) {
	tests := []struct {
		x      int
		choice int
		ok     bool
	}{
		{0, 0, true},
		{5, 0, true},
		{6, 0, false},
		{8, 1, true},
		{16, 2, true},
		{24, 3, true},
		{29, 3, true},
		{30, 0, false},
	}
	for _, tc := range tests {
		choice, ok := buttonAt(tc.x)
		if ok != tc.ok || (ok && choice != tc.choice) {
			t.Errorf("buttonAt(%d) = (%d,%v), want (%d,%v)", tc.x, choice, ok, tc.choice, tc.ok)
		}
	}
}

func TestMouseDrag(t *testing.T) {
	// 40 cells wide and 40 play rows: a 400x800 logical viewport
	m := newTestModel(t, 40, 45)
	start := m.Session.Position() // (100,200): cell (10,10)

	press := tea.MouseMsg{X: 12, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, press)
	if !m.Session.Dragging() {
		t.Fatal("Press on the avatar should start a drag")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 62, Y: 13, Action: tea.MouseActionMotion})
	if got := m.Session.Position(); got != (pet.Position{X: 200, Y: start.Y + 20}) {
		t.Errorf("Expected x clamped to 200 and y at %v, got %v", start.Y+20, got)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 13, Y: 12, Action: tea.MouseActionMotion})
	if got := m.Session.Position(); got != (pet.Position{X: 110, Y: 200}) {
		t.Errorf("Expected (110,200), got %v", got)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 13, Y: 12, Action: tea.MouseActionRelease})
	if m.Session.Dragging() {
		t.Error("Release should end the drag")
	}

	t.Run("Press off the avatar", func(t *testing.T) {
		m, _ := update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		if m.Session.Dragging() {
			t.Error("Press off the avatar should not drag")
		}
	})
}

func TestAnimationTicks(t *testing.T) {
	m := newTestModel(t, 80, 30)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	started := m.Animation.StartTime

	m, _ = update(t, m, animTickMsg{started: started.Add(-time.Second)})
	if m.Animation.Frame != 0 {
		t.Error("Stale animation tick should be dropped")
	}

	for i := 0; i < AnimationTotalFrames(AnimBark); i++ {
		m, _ = update(t, m, animTickMsg{started: started})
	}
	if m.Animation.Type != AnimNone {
		t.Errorf("Expected animation to finish, got %v", m.Animation.Type)
	}
}

func TestView(t *testing.T) {
	t.Run("Before first size", func(t *testing.T) {
		m := NewModel(session.New(nopDevice{}), "Pip")
		if m.View() != "Initializing..." {
			t.Errorf("Expected initializing view, got %q", m.View())
		}
	})

	t.Run("Content pet", func(t *testing.T) {
		m := newTestModel(t, 80, 30)
		view := m.View()
		if !strings.Contains(view, "Pip") || !strings.Contains(view, "Happiness: 50") {
			t.Errorf("View missing name or stats:\n%s", view)
		}
		if !strings.Contains(view, "^  ^") {
			t.Errorf("Expected content avatar:\n%s", view)
		}
	})

	t.Run("Distressed pet", func(t *testing.T) {
		m := newTestModel(t, 80, 30)
		gen := m.Session.Generation()
		for i := 0; i < 21; i++ {
			m, _ = update(t, m, decayTickMsg{gen: gen})
		}
		if !strings.Contains(m.View(), ";  ;") {
			t.Errorf("Expected distressed avatar:\n%s", m.View())
		}
	})

	t.Run("Quitting", func(t *testing.T) {
		m := newTestModel(t, 80, 30)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
		if m.View() != "Thanks for playing!\n" {
			t.Errorf("Expected goodbye, got %q", m.View())
		}
	})
}

func TestRenderStats(t *testing.T) {
	card := RenderStats("Pip", pet.Mood{Happiness: 20, Hunger: 80})
	for _, want := range []string{"Pip", "20%", "80%", "distressed", "████░"} {
		if !strings.Contains(card, want) {
			t.Errorf("Stats card missing %q:\n%s", want, card)
		}
	}
}
