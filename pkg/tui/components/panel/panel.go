// Package panel renders the framed box every dashboard widget lives in: a
// title row with the widget glyph and its grid position, then body lines
// clipped to the cell.
package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tabletop/pkg/tui/theme"
)

// Options describe one widget cell.
type Options struct {
	Symbol   string
	Title    string
	Position int
	Focused  bool
	Width    int
	Height   int
}

// Render draws the widget frame around the body. The body is clipped, never
// wrapped, so widgets control their own line breaks.
func Render(th theme.PanelTheme, opts Options, body string) string {
	if opts.Width < 6 || opts.Height < 3 {
		return ""
	}

	frame := th.Frame
	title := th.Title
	if opts.Focused {
		frame = th.FrameFocused
		title = th.TitleFocused
	}

	innerW := opts.Width - frame.GetHorizontalFrameSize()
	innerH := opts.Height - frame.GetVerticalFrameSize()
	if innerW < 1 || innerH < 1 {
		return ""
	}

	head := strings.TrimSpace(opts.Symbol + " " + opts.Title)
	hint := fmt.Sprintf("[%d]", opts.Position)
	gap := innerW - lipgloss.Width(head) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	headLine := title.Render(head) + strings.Repeat(" ", gap) + th.Muted.Render(hint)

	lines := []string{headLine}
	for _, line := range strings.Split(body, "\n") {
		if len(lines) >= innerH {
			break
		}
		lines = append(lines, truncate(line, innerW))
	}

	content := strings.Join(lines, "\n")
	return frame.Width(innerW).Height(innerH).Render(content)
}

// truncate clips a rendered line to the given cell width.
func truncate(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	// Trim rune by rune; styled lines lose trailing escapes but stay legible.
	runes := []rune(line)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
