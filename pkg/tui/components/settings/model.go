// Package settings renders the modal settings overlay: wallpaper selection,
// clock format, export, import, and the clear-everything escape hatch.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/timeutil"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
	"tableflip.dev/tabletop/pkg/wallpaper"
)

// ID identifies the settings overlay in emitted events.
const ID = "settings"

// ClosedMsg tells the root model to dismiss the overlay.
type ClosedMsg struct{}

// ExportPath is where the export lands, relative to the working directory.
const ExportPath = "tabletop-export.json"

type row int

const (
	rowWallpaper row = iota
	rowWallpaperSource
	rowClock
	rowExport
	rowImport
	rowClear
	rowCount
)

// Model is the settings overlay.
type Model struct {
	persistence store.Persistence
	th          theme.Theme

	cursor        row
	confirming    bool
	pendingImport string

	current wallpaper.Wallpaper
	format  timeutil.Format

	input     textinput.Model
	inputFor  row
	inputLive bool

	width  int
	height int
}

// New hydrates current preferences from the store.
func New(p store.Persistence, th theme.Theme) *Model {
	in := textinput.New()
	in.Prompt = "> "
	w, _ := wallpaper.Hydrate(p)
	return &Model{
		persistence: p,
		th:          th,
		current:     w,
		format:      timeutil.LoadFormat(p),
		input:       in,
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. The overlay owns the keyboard while open,
// so all key handling lives here.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		return m, m.handleConfirmKey(key)
	}
	if m.pendingImport != "" {
		return m, m.handleImportConfirmKey(key)
	}
	if m.inputLive {
		return m, m.handleInputKey(key)
	}

	switch key.String() {
	case "esc", "q", "s":
		return m, func() tea.Msg { return ClosedMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case "enter":
		return m, m.activate()
	}
	return m, nil
}

func (m *Model) activate() tea.Cmd {
	switch m.cursor {
	case rowWallpaper:
		return m.cycleBuiltin()
	case rowWallpaperSource:
		m.openInput(rowWallpaperSource, "path or https:// url")
	case rowClock:
		m.format = m.format.Toggle()
		if err := timeutil.SaveFormat(m.persistence, m.format); err != nil {
			return events.ErrCmd(ID, err)
		}
		return events.ClockFormatToggledCmd(m.format)
	case rowExport:
		return m.export()
	case rowImport:
		m.openInput(rowImport, "path to export file")
	case rowClear:
		m.confirming = true
	}
	return nil
}

func (m *Model) openInput(target row, placeholder string) {
	m.inputFor = target
	m.inputLive = true
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputLive = false
	m.input.Blur()
}

func (m *Model) handleInputKey(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.closeInput()
		return nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		target := m.inputFor
		m.closeInput()
		if value == "" {
			return nil
		}
		if target == rowImport {
			// Import clears and overwrites everything, so it waits for
			// the same explicit confirmation as the clear row.
			m.pendingImport = value
			return nil
		}
		return m.setWallpaperSource(value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return cmd
}

func (m *Model) handleImportConfirmKey(key tea.KeyPressMsg) tea.Cmd {
	path := m.pendingImport
	m.pendingImport = ""
	if key.String() != "y" {
		return nil
	}
	return m.importFrom(path)
}

func (m *Model) handleConfirmKey(key tea.KeyPressMsg) tea.Cmd {
	m.confirming = false
	if key.String() != "y" {
		return nil
	}
	if err := m.persistence.Clear(context.Background()); err != nil {
		return events.ErrCmd(ID, err)
	}
	return events.StatusCmd(ID, "cleared all dashboard data")
}

// cycleBuiltin applies the next builtin wallpaper after the current one.
func (m *Model) cycleBuiltin() tea.Cmd {
	names := wallpaper.Builtins()
	next := names[0]
	if m.current.Kind == wallpaper.KindBuiltin {
		for i, n := range names {
			if n == m.current.Source {
				next = names[(i+1)%len(names)]
				break
			}
		}
	}
	return m.apply(wallpaper.Wallpaper{Kind: wallpaper.KindBuiltin, Source: next})
}

func (m *Model) setWallpaperSource(value string) tea.Cmd {
	w := wallpaper.Wallpaper{Kind: wallpaper.KindFile, Source: value}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		w.Kind = wallpaper.KindURL
	}
	return m.apply(w)
}

func (m *Model) apply(w wallpaper.Wallpaper) tea.Cmd {
	pal, err := wallpaper.Set(m.persistence, w)
	if err != nil {
		return events.ErrCmd(ID, err)
	}
	m.current = w
	return events.WallpaperChangedCmd(w, pal)
}

func (m *Model) export() tea.Cmd {
	data, err := m.persistence.Export(context.Background())
	if err != nil {
		return events.ErrCmd(ID, err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return events.ErrCmd(ID, err)
	}
	if err := os.WriteFile(ExportPath, raw, 0o600); err != nil {
		return events.ErrCmd(ID, err)
	}
	return events.StatusCmd(ID, "exported to "+ExportPath)
}

func (m *Model) importFrom(path string) tea.Cmd {
	raw, err := os.ReadFile(path)
	if err != nil {
		return events.ErrCmd(ID, err)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return events.ErrCmd(ID, err)
	}
	if err := m.persistence.Import(data); err != nil {
		return events.ErrCmd(ID, err)
	}
	return events.StatusCmd(ID, fmt.Sprintf("imported %d keys from %s", len(data), path))
}

// View implements ui.Component.
func (m *Model) View() string {
	rows := []string{
		m.row(rowWallpaper, "wallpaper", m.wallpaperLabel()+"  (enter cycles)"),
		m.row(rowWallpaperSource, "wallpaper source", "set a file or url…"),
		m.row(rowClock, "clock format", string(m.format)),
		m.row(rowExport, "export", "write "+ExportPath),
		m.row(rowImport, "import", "load an export file…"),
		m.row(rowClear, "clear all data", "todos, notes, everything"),
	}

	body := strings.Join(rows, "\n")
	if m.inputLive {
		body += "\n\n" + m.input.View()
	}
	if m.pendingImport != "" {
		body += "\n\n" + m.th.Footer.Mode.Render("replace all data with "+m.pendingImport+"? y/n")
	}
	if m.confirming {
		body += "\n\n" + m.th.Footer.Mode.Render("really clear everything? y/n")
	}

	content := m.th.Modal.Title.Render("settings") + "\n\n" + body
	return m.th.Modal.Frame.Width(m.width).Render(content)
}

func (m *Model) wallpaperLabel() string {
	if m.current.Kind == wallpaper.KindBuiltin {
		return m.current.Source
	}
	return fmt.Sprintf("%s:%s", m.current.Kind, m.current.Source)
}

func (m *Model) row(r row, name, detail string) string {
	style := m.th.Modal.Body
	prefix := "  "
	if r == m.cursor {
		style = m.th.Panel.TitleFocused
		prefix = "» "
	}
	return prefix + style.Render(name) + "  " + m.th.Panel.Muted.Render(detail)
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
