package config

import (
	"github.com/charmbracelet/lipgloss"
)

// Style holds the lipgloss styles for the timer display.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Interval  lipgloss.Style
	Warn      lipgloss.Style
}

// palette is a theme colour set. Each entry adapts to light and dark
// terminal backgrounds.
type palette struct {
	main      lipgloss.AdaptiveColor
	secondary lipgloss.AdaptiveColor
	hint      lipgloss.AdaptiveColor
	accent    lipgloss.AdaptiveColor
	warn      lipgloss.AdaptiveColor
}

var themes = map[string]palette{
	"ember": {
		main:      lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"},
		secondary: lipgloss.AdaptiveColor{Light: "#7C2D12", Dark: "#FDBA74"},
		hint:      lipgloss.AdaptiveColor{Light: "#78716C", Dark: "#A8A29E"},
		accent:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
		warn:      lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"},
	},
	"ocean": {
		main:      lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"},
		secondary: lipgloss.AdaptiveColor{Light: "#155E75", Dark: "#67E8F9"},
		hint:      lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"},
		accent:    lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"},
		warn:      lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"},
	},
	"forest": {
		main:      lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
		secondary: lipgloss.AdaptiveColor{Light: "#166534", Dark: "#86EFAC"},
		hint:      lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A8A29E"},
		accent:    lipgloss.AdaptiveColor{Light: "#4D7C0F", Dark: "#A3E635"},
		warn:      lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"},
	},
	"classic": {
		main:      lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#FAFAFA"},
		secondary: lipgloss.AdaptiveColor{Light: "#3F3F46", Dark: "#D4D4D8"},
		hint:      lipgloss.AdaptiveColor{Light: "#71717A", Dark: "#A1A1AA"},
		accent:    lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#FAFAFA"},
		warn:      lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"},
	},
}

// Themes lists the available theme names.
func Themes() []string {
	return []string{"classic", "ember", "forest", "ocean"}
}

// NewStyle builds the display styles for the named theme, falling back to
// the default theme for unknown names.
func NewStyle(theme string) *Style {
	p, ok := themes[theme]
	if !ok {
		p = themes[defaultTheme]
	}

	return &Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Foreground(p.main).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(p.secondary),
		Hint:      lipgloss.NewStyle().Foreground(p.hint),
		Interval:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(p.warn).Bold(true),
	}
}
