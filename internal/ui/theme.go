package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Theme registry for the application
var Theme *tint.Registry

// Common style elements used across all views
var (
	TitleStyle            lipgloss.Style
	SubtitleStyle         lipgloss.Style
	ActiveLabelStyle      lipgloss.Style
	InactiveLabelStyle    lipgloss.Style
	errorStyle            lipgloss.Style
	ErrorMessageStyle     lipgloss.Style
	statusBarStyle        lipgloss.Style
	helpStyle             lipgloss.Style
	ActiveButtonStyle     lipgloss.Style
	InactiveButtonStyle   lipgloss.Style
	SelectedItemStyle     lipgloss.Style
	NormalItemStyle       lipgloss.Style
	DimmedItemStyle       lipgloss.Style
	FavoriteMarkStyle     lipgloss.Style
	SecureBadgeStyle      lipgloss.Style
	SidebarBorderStyle    lipgloss.Style
	ViewportBorderStyle   lipgloss.Style
	ModalBorderStyle      lipgloss.Style
	UserMessageLabelStyle lipgloss.Style
	BotMessageLabelStyle  lipgloss.Style
	MessageContentStyle   lipgloss.Style
	TimestampStyle        lipgloss.Style
	SpinnerStyle          lipgloss.Style
)

func init() {
	// Initialize with Tint theme
	tint.NewDefaultRegistry()
	tint.SetTint(tint.TintChalk)
	Theme = tint.DefaultRegistry

	// Initialize styles after tint is set up
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(tint.Purple())

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(tint.BrightBlack())

	ActiveLabelStyle = lipgloss.NewStyle().
		Foreground(tint.White()).
		Bold(true)

	InactiveLabelStyle = lipgloss.NewStyle().
		Foreground(tint.BrightBlack())

	errorStyle = lipgloss.NewStyle().
		Foreground(tint.Red()).
		Bold(true).
		Padding(1)

	ErrorMessageStyle = lipgloss.NewStyle().
		Foreground(tint.Red())

	statusBarStyle = lipgloss.NewStyle().
		Foreground(tint.BrightBlack()).
		Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
		Foreground(tint.BrightBlack()).
		Padding(1, 0, 0, 1)

	ActiveButtonStyle = lipgloss.NewStyle().
		Foreground(tint.Bg()).
		Background(tint.Purple()).
		Bold(true)

	InactiveButtonStyle = lipgloss.NewStyle().
		Foreground(tint.Purple())

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(tint.Purple()).
		Bold(true)

	NormalItemStyle = lipgloss.NewStyle().
		Foreground(tint.Fg())

	DimmedItemStyle = lipgloss.NewStyle().
		Foreground(tint.BrightBlack())

	FavoriteMarkStyle = lipgloss.NewStyle().
		Foreground(tint.Yellow())

	SecureBadgeStyle = lipgloss.NewStyle().
		Foreground(tint.Bg()).
		Background(tint.Green()).
		Bold(true).
		Padding(0, 1)

	SidebarBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(tint.BrightBlack())

	ViewportBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tint.BrightBlack()).
		Padding(0, 1)

	ModalBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tint.Purple()).
		Padding(1, 2)

	UserMessageLabelStyle = lipgloss.NewStyle().
		Foreground(tint.White()).
		Bold(true)

	BotMessageLabelStyle = lipgloss.NewStyle().
		Foreground(tint.Purple()).
		Bold(true)

	MessageContentStyle = lipgloss.NewStyle().
		Foreground(tint.Fg()).
		Padding(0, 1).
		MarginBottom(1)

	TimestampStyle = lipgloss.NewStyle().
		Foreground(tint.BrightBlack()).
		Italic(true)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(tint.Purple())
}
