package ui

import "github.com/charmbracelet/lipgloss"

const (
	Background = lipgloss.Color("#2d3250")
	Surface    = lipgloss.Color("#424769")
	Muted      = lipgloss.Color("#676f9d")
	Accent     = lipgloss.Color("#f9b17a")
	Primary    = lipgloss.Color("#ffffff")
)
