package ui

import (
	"fmt"
	"strings"

	"pocketpet/internal/pet"
)

func makeBar(value int) string {
	filled := value / 20
	bar := ""
	for i := 0; i < 5; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// RenderStats draws a plain stats card, for output outside the TUI
func RenderStats(name string, m pet.Mood) string {
	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %-34s║\n", name))
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Happiness: [%s] %3d%%           ║\n", makeBar(m.Happiness), m.Happiness))
	s.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3d%%           ║\n", makeBar(m.Hunger), m.Hunger))
	s.WriteString(fmt.Sprintf("║  Mood:      %-23s║\n", pet.MapMood(m)))
	s.WriteString("╚════════════════════════════════════╝\n")
	return s.String()
}
