package ui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

var (
	confettiColors = []lipgloss.Color{Accent, Muted, Primary, Surface}
	confettiGlyphs = []rune{'▪', '•', '◦', '▫'}
)

// Confetti renders rows of scattered colored glyphs for the completion
// celebration. Purely cosmetic.
func Confetti(width, rows int) string {
	if width <= 0 {
		width = 40
	}
	var b strings.Builder
	for r := 0; r < rows; r++ {
		line := make([]rune, width)
		for i := range line {
			line[i] = ' '
		}
		for i := 0; i < width/8+1; i++ {
			line[rand.Intn(width)] = confettiGlyphs[rand.Intn(len(confettiGlyphs))]
		}
		for _, g := range line {
			if g == ' ' {
				b.WriteRune(' ')
				continue
			}
			c := confettiColors[rand.Intn(len(confettiColors))]
			b.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(g)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
