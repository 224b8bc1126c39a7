package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Foreground(Muted)
	Label    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Error    = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Hint     = lipgloss.NewStyle().Foreground(Muted)

	TaskIcon      = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(Accent)
	TaskTitle     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	DoneTaskTitle = lipgloss.NewStyle().Foreground(Muted).Strikethrough(true)

	StatLabel = lipgloss.NewStyle().Foreground(Muted)
	StatValue = lipgloss.NewStyle().Bold(true).Foreground(Accent)
)
