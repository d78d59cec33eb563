package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pocketpet/internal/pet"
	"pocketpet/internal/session"
)

// Terminal cells in logical units. The 200x200 avatar covers 20x10 cells.
const (
	CellWidth  = 10
	CellHeight = 20
	AvatarCols = pet.AvatarSize / CellWidth
	AvatarRows = pet.AvatarSize / CellHeight
)

// FooterRows is the height of the status, stats, reaction, menu and help lines
const FooterRows = 5

// TimeNow is swapped out by tests
var TimeNow = time.Now

// Model represents the game state
type Model struct {
	Session        *session.Controller
	Name           string
	Choice         int
	Quitting       bool
	Width          int
	Height         int
	Message        string
	MessageExpires time.Time
	Animation      Animation

	// pointer cell at gesture start
	dragFromX int
	dragFromY int
}

type decayTickMsg struct {
	gen uint64
}

type animTickMsg struct {
	started time.Time
}

var choices = []string{"Feed", "Play", "Bark", "Quit"}

// NewModel starts a session for c and returns the model that drives it
func NewModel(c *session.Controller, name string) Model {
	c.Start()
	return Model{
		Session: c,
		Name:    name,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return decayTick(m.Session.Generation())
}

func decayTick(gen uint64) tea.Cmd {
	return tea.Tick(pet.DecayInterval, func(time.Time) tea.Msg {
		return decayTickMsg{gen: gen}
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// effect runs a device job off the event loop. It reports nothing back.
func effect(job func()) tea.Cmd {
	return func() tea.Msg {
		job()
		return nil
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m.quit()
		case "left", "h":
			if m.Choice > 0 {
				m.Choice--
			}
		case "right", "l", "tab":
			if m.Choice < len(choices)-1 {
				m.Choice++
			}
		case "f":
			cmd := m.feed()
			return m, cmd
		case "p":
			cmd := m.play()
			return m, cmd
		case "b":
			cmd := m.bark()
			return m, cmd
		case "enter", " ":
			return m.choose(m.Choice)
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Session.SetViewport(m.viewport())
		return m, nil

	case decayTickMsg:
		if !m.Session.Tick(msg.gen) {
			return m, nil
		}
		return m, decayTick(msg.gen)

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	m.Choice = choice
	var cmd tea.Cmd
	switch choice {
	case 0:
		cmd = m.feed()
	case 1:
		cmd = m.play()
	case 2:
		cmd = m.bark()
	case 3:
		return m.quit()
	}
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Session.Stop()
	m.Quitting = true
	return m, tea.Quit
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return *m, nil
		}
		if msg.Y < m.playRows() {
			if m.Session.BeginDrag(cellToLogical(msg.X, msg.Y)) {
				m.dragFromX, m.dragFromY = msg.X, msg.Y
			}
			return *m, nil
		}
		if msg.Y == m.menuRow() {
			if choice, ok := buttonAt(msg.X); ok {
				return m.choose(choice)
			}
		}

	case tea.MouseActionMotion:
		if m.Session.Dragging() {
			dx := float64((msg.X - m.dragFromX) * CellWidth)
			dy := float64((msg.Y - m.dragFromY) * CellHeight)
			m.Session.MoveDrag(dx, dy)
		}

	case tea.MouseActionRelease:
		m.Session.EndDrag()
	}
	return *m, nil
}

func (m *Model) feed() tea.Cmd {
	job := m.Session.Feed()
	m.setMessage("🍖 Yum!")
	return tea.Batch(effect(job), m.startAnimation(AnimFeed))
}

func (m *Model) play() tea.Cmd {
	job := m.Session.Play()
	m.setMessage("🎾 Wheee!")
	return tea.Batch(effect(job), m.startAnimation(AnimPlay))
}

func (m *Model) bark() tea.Cmd {
	job := m.Session.Vocalizer()
	return tea.Batch(effect(job), m.startAnimation(AnimBark))
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = TimeNow().Add(3 * time.Second)
}

func (m *Model) startAnimation(animType AnimationType) tea.Cmd {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: TimeNow(),
	}
	return animTick(m.Animation.StartTime)
}

func (m Model) playRows() int {
	return max(m.Height-FooterRows, 0)
}

func (m Model) menuRow() int {
	return m.playRows() + 3
}

func (m Model) viewport() pet.Viewport {
	return pet.Viewport{
		Width:  float64(m.Width * CellWidth),
		Height: float64(m.playRows() * CellHeight),
	}
}

// cellToLogical maps a terminal cell to the logical point at its centre
func cellToLogical(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * CellWidth, (float64(y) + 0.5) * CellHeight
}
