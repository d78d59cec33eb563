package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pocketpet/internal/pet"
)

var gameStyles = struct {
	title      lipgloss.Style
	status     lipgloss.Style
	content    lipgloss.Style
	distressed lipgloss.Style
	button     lipgloss.Style
	selected   lipgloss.Style
	reaction   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#333333")),

	content: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(AvatarCols).
		Height(AvatarRows),

	distressed: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6C8EBF")).
		Width(AvatarCols).
		Height(AvatarRows),

	button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#ADD8E6")).
		Padding(0, 1),

	selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#FFDAB9")).
		Padding(0, 1),

	reaction: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true),
}

const buttonGap = 2

// AvatarArt holds one 20x10 drawing per presentation variant
var AvatarArt = map[pet.Variant]string{
	pet.Content: strings.Join([]string{
		"   __        __",
		"  /  \\______/  \\",
		"  \\_ /      \\ _/",
		"    |  ^  ^  |",
		"    |   ..   |",
		"   _\\  \\__/  /_",
		"  /  '------'  \\",
		" |  |        |  |",
		" |__|________|__|",
		"    \"\"      \"\"",
	}, "\n"),
	pet.Distressed: strings.Join([]string{
		"   __        __",
		"  /  \\______/  \\",
		"  \\_ /      \\ _/",
		"    |  ;  ;  |",
		"    |   ..   |",
		"   _\\  /--\\  /_",
		"  /  '------'  \\",
		" |  |        |  |",
		" |__|________|__|",
		"    \"\"      \"\"",
	}, "\n"),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	var sections []string
	// An empty playfield would still take a line and push the menu off menuRow.
	if m.playRows() > 0 {
		sections = append(sections, m.renderPlayfield())
	}
	sections = append(sections,
		m.renderStatus(),
		m.renderStats(),
		m.renderReaction(),
		m.renderMenu(),
		gameStyles.status.Render("Drag the pet • f/p/b or ←/→ + enter • q to quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPlayfield() string {
	rows := m.playRows()
	if rows == 0 {
		return ""
	}

	variant := m.Session.Variant()
	style := gameStyles.content
	if variant == pet.Distressed {
		style = gameStyles.distressed
	}

	pos := m.Session.Position()
	avatar := lipgloss.NewStyle().
		MarginLeft(int(pos.X / CellWidth)).
		MarginTop(int(pos.Y / CellHeight)).
		Render(style.Render(AvatarArt[variant]))

	return lipgloss.NewStyle().
		Width(m.Width).
		Height(rows).
		MaxHeight(rows).
		Render(avatar)
}

func (m Model) renderStatus() string {
	return gameStyles.title.Render(m.Name) + "  " +
		gameStyles.status.Render(pet.GetStatusWithLabel(m.Session.Mood()))
}

func (m Model) renderStats() string {
	mood := m.Session.Mood()
	return gameStyles.status.Render(fmt.Sprintf("Happiness: %-3d  Hunger: %-3d", mood.Happiness, mood.Hunger))
}

func (m Model) renderReaction() string {
	if m.Animation.Type != AnimNone {
		return gameStyles.reaction.Render(GetAnimationFrame(m.Animation))
	}
	if m.Message != "" && TimeNow().Before(m.MessageExpires) {
		return gameStyles.status.Render(m.Message)
	}
	return ""
}

func (m Model) renderMenu() string {
	var buttons []string
	for i, choice := range choices {
		style := gameStyles.button
		if m.Choice == i {
			style = gameStyles.selected
		}
		buttons = append(buttons, style.Render(choice))
	}
	return strings.Join(buttons, strings.Repeat(" ", buttonGap))
}

// buttonAt maps a column on the menu row to a choice
func buttonAt(x int) (int, bool) {
	start := 0
	for i, choice := range choices {
		width := lipgloss.Width(choice) + 2
		if x >= start && x < start+width {
			return i, true
		}
		start += width + buttonGap
	}
	return 0, false
}
