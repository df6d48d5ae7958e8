// Package ui renders run progress and summaries for the benchmark CLI.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	phaseStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)
