package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tabletop/pkg/wallpaper"
)

// Theme centralizes Lip Gloss styles for the dashboard. Styles are derived
// from the wallpaper palette so a wallpaper change restyles every widget.
type Theme struct {
	Panel  PanelTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// PanelTheme styles widget panels in their blurred and focused states.
type PanelTheme struct {
	Frame        lipgloss.Style
	FrameFocused lipgloss.Style
	Title        lipgloss.Style
	TitleFocused lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	Accent       lipgloss.Style
	Done         lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
}

// ModalTheme styles centered modal overlays (help, settings, confirm).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the theme for the default builtin wallpaper.
func Default() Theme {
	pal, _ := wallpaper.BuiltinPalette(wallpaper.DefaultName)
	return FromPalette(pal)
}

// FromPalette derives widget styles from the wallpaper's dominant colors:
// the first color is the base, the brighter accents carry focus and titles.
func FromPalette(pal wallpaper.Palette) Theme {
	base := lipgloss.Color(pal.Accent(0))
	primary := lipgloss.Color(pal.Accent(1))
	secondary := lipgloss.Color(pal.Accent(2))
	text := lipgloss.Color(pal.Accent(3))
	alert := lipgloss.Color(pal.Accent(4))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(base).
		Padding(0, 1)

	return Theme{
		Panel: PanelTheme{
			Frame:        frame,
			FrameFocused: frame.BorderForeground(primary),
			Title:        lipgloss.NewStyle().Foreground(secondary),
			TitleFocused: lipgloss.NewStyle().Foreground(primary).Bold(true),
			Body:         lipgloss.NewStyle().Foreground(text),
			Muted:        lipgloss.NewStyle().Foreground(base),
			Accent:       lipgloss.NewStyle().Foreground(secondary),
			Done:         lipgloss.NewStyle().Foreground(base).Strikethrough(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(base),
			Status: lipgloss.NewStyle().Foreground(text),
			Mode:   lipgloss.NewStyle().Foreground(alert).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primary).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Foreground(primary).Bold(true),
			Body:  lipgloss.NewStyle().Foreground(text),
		},
	}
}
