// Package app composes the dashboard TUI: the widget grid, the focus
// arbiter, the shortcut router, overlays, and the store watcher that keeps
// widgets in sync with concurrent writers.
package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tabletop/pkg/focus"
	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/sysinfo"
	"tableflip.dev/tabletop/pkg/timeutil"
	"tableflip.dev/tabletop/pkg/tui/components/clock"
	"tableflip.dev/tabletop/pkg/tui/components/help"
	"tableflip.dev/tabletop/pkg/tui/components/notepad"
	"tableflip.dev/tabletop/pkg/tui/components/panel"
	"tableflip.dev/tabletop/pkg/tui/components/settings"
	"tableflip.dev/tabletop/pkg/tui/components/statusbar"
	sysinfoview "tableflip.dev/tabletop/pkg/tui/components/sysinfo"
	"tableflip.dev/tabletop/pkg/tui/components/todoview"
	weatherview "tableflip.dev/tabletop/pkg/tui/components/weather"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/keymap"
	"tableflip.dev/tabletop/pkg/tui/layout"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
	"tableflip.dev/tabletop/pkg/wallpaper"
	"tableflip.dev/tabletop/pkg/weather"
)

// focusPositionMsg moves keyboard focus to an absolute grid position.
type focusPositionMsg struct {
	position int
}

// focusDeltaMsg moves keyboard focus to the next or previous filled slot.
type focusDeltaMsg struct {
	delta int
}

// escMsg leaves typing when a widget is editing, otherwise drops focus.
type escMsg struct{}

// toggleClockMsg flips the 12h/24h preference.
type toggleClockMsg struct{}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model is the root dashboard model.
type Model struct {
	persistence store.Persistence
	th          theme.Theme

	router  *keymap.Router
	arbiter *focus.Arbiter

	slots   []layout.Slot
	widgets map[int]ui.Component

	footer       *statusbar.Model
	helpOverlay  *help.Model
	settingsOpen *settings.Model

	ctx         context.Context
	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int
}

// New hydrates the full dashboard from the store.
func New(p store.Persistence) *Model {
	_, pal := wallpaper.Hydrate(p)
	th := theme.FromPalette(pal)

	m := &Model{
		persistence: p,
		th:          th,
		arbiter:     focus.New(),
		slots:       layout.Load(p),
		widgets:     make(map[int]ui.Component),
		footer:      statusbar.New(th),
		ctx:         context.Background(),
	}

	for _, slot := range m.slots {
		if c := m.buildWidget(slot.Widget, slot.Position); c != nil {
			m.widgets[slot.Position] = c
		}
	}

	m.router = buildRouter(m)
	return m
}

func (m *Model) buildWidget(w layout.Widget, position int) ui.Component {
	switch w {
	case layout.WidgetClock:
		return clock.NewModel(m.persistence, m.th, position)
	case layout.WidgetWeather:
		lat, lon, ok := store.Location()
		return weatherview.NewModel(weather.NewClient(), m.th, position, lat, lon, ok)
	case layout.WidgetSysinfo:
		return sysinfoview.NewModel(sysinfo.NewCollector(), m.th, position)
	case layout.WidgetTodo:
		return todoview.NewModel(m.persistence, m.th, position)
	case layout.WidgetNotepad:
		return notepad.NewModel(m.persistence, m.th, position)
	}
	return nil
}

func buildRouter(m *Model) *keymap.Router {
	r := keymap.New()

	r.Bind(keymap.Binding{Chord: "q", Help: "quit", Do: tea.Quit})
	r.Bind(keymap.Binding{Chord: "?", Help: "help", Do: func() tea.Msg { return events.HelpRequestMsg{} }})
	r.Bind(keymap.Binding{Chord: "s", Help: "settings", Do: func() tea.Msg { return events.SettingsRequestMsg{} }})
	r.Bind(keymap.Binding{Chord: "c", Help: "toggle clock format", Do: func() tea.Msg { return toggleClockMsg{} }})
	r.Bind(keymap.Binding{Chord: "esc", Help: "leave input / drop focus", Do: func() tea.Msg { return escMsg{} }})
	r.Bind(keymap.Binding{Chord: "tab", WhileTyping: true, Help: "focus next widget",
		Do: func() tea.Msg { return focusDeltaMsg{delta: 1} }})
	r.Bind(keymap.Binding{Chord: "shift+tab", WhileTyping: true, Help: "focus previous widget",
		Do: func() tea.Msg { return focusDeltaMsg{delta: -1} }})

	r.BindDigits(
		func(pos int) bool { return layout.Filled(m.slots, pos) },
		func(pos int) tea.Msg { return focusPositionMsg{position: pos} },
	)

	for _, b := range clock.Keys() {
		r.Bind(b)
	}
	for _, b := range todoview.Keys() {
		r.Bind(b)
	}
	for _, b := range notepad.Keys() {
		r.Bind(b)
	}
	return r
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{startWatchCmd(m.ctx, m.persistence)}
	for _, c := range m.widgets {
		if cmd := c.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if !m.onboarded() {
		cmds = append(cmds, func() tea.Msg { return events.HelpRequestMsg{} })
	}
	return tea.Batch(cmds...)
}

// onboarded reports whether the first-run help overlay was already shown,
// marking it shown as a side effect.
func (m *Model) onboarded() bool {
	var done bool
	if m.persistence.GetJSON(store.KeyOnboarded, &done) && done {
		return true
	}
	_ = m.persistence.SetJSON(store.KeyOnboarded, true)
	return false
}

func (m *Model) focusedID() string {
	pos, ok := m.arbiter.Focused()
	if !ok {
		return ""
	}
	return string(layout.WidgetAt(m.slots, pos))
}

func (m *Model) focusedWidget() ui.Component {
	pos, ok := m.arbiter.Focused()
	if !ok {
		return nil
	}
	return m.widgets[pos]
}

func (m *Model) typing() bool {
	if c := m.focusedWidget(); c != nil {
		if e, ok := c.(ui.Editing); ok {
			return e.Editing()
		}
	}
	return false
}

// applyFocus pushes the arbiter state into the widgets and announces it.
func (m *Model) applyFocus() tea.Cmd {
	pos, _ := m.arbiter.Focused()
	for p, c := range m.widgets {
		if f, ok := c.(ui.Focusable); ok {
			f.SetFocused(p == pos)
		}
	}
	return events.FocusChangedCmd(pos, m.arbiter.Mode())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseMotionMsg:
		return m, m.handlePointer(msg.X, msg.Y)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		return m, m.handlePointer(msg.X, msg.Y)

	case focusPositionMsg:
		m.arbiter.RequestFromKeyboard(msg.position)
		return m, m.applyFocus()

	case focusDeltaMsg:
		if pos := m.nextFilled(msg.delta); pos != 0 {
			m.arbiter.RequestFromKeyboard(pos)
			return m, m.applyFocus()
		}
		return m, nil

	case escMsg:
		if m.typing() {
			return m, m.forwardToFocused(tea.KeyPressMsg{Code: tea.KeyEscape})
		}
		m.arbiter.Blur()
		return m, m.applyFocus()

	case toggleClockMsg:
		format := timeutil.LoadFormat(m.persistence).Toggle()
		if err := timeutil.SaveFormat(m.persistence, format); err != nil {
			return m, events.ErrCmd("app", err)
		}
		return m, events.ClockFormatToggledCmd(format)

	case events.HelpRequestMsg:
		m.helpOverlay = help.New(m.th, m.overlayWidth(), m.overlayHeight())
		return m, nil

	case events.SettingsRequestMsg:
		s := settings.New(m.persistence, m.th)
		s.SetSize(m.overlayWidth(), m.overlayHeight())
		m.settingsOpen = s
		return m, nil

	case settings.ClosedMsg:
		m.settingsOpen = nil
		return m, nil

	case events.WallpaperChangedMsg:
		m.th = theme.FromPalette(msg.Palette)
		m.rebuildForTheme()
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			return m, events.ErrCmd("app", msg.err)
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()

	case watchEventMsg:
		cmds = append(cmds, m.handleWatchEvent(msg.event)...)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case watchStoppedMsg:
		m.stopWatch()
		return m, startWatchCmd(m.ctx, m.persistence)
	}

	return m, m.broadcast(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	chord := msg.String()

	if m.helpOverlay != nil {
		switch chord {
		case "esc", "?", "q":
			m.helpOverlay = nil
			return nil
		}
		next, cmd := m.helpOverlay.Update(msg)
		m.helpOverlay = next.(*help.Model)
		return cmd
	}

	if m.settingsOpen != nil {
		next, cmd := m.settingsOpen.Update(msg)
		m.settingsOpen = next.(*settings.Model)
		return cmd
	}

	ctx := keymap.Context{Typing: m.typing(), Focused: m.focusedID()}
	if cmd, ok := m.router.Route(chord, ctx); ok {
		return cmd
	}
	return m.forwardToFocused(msg)
}

func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	pos, ok := m.arbiter.Focused()
	if !ok {
		return nil
	}
	c, exists := m.widgets[pos]
	if !exists {
		return nil
	}
	next, cmd := c.Update(msg)
	m.widgets[pos] = next
	return cmd
}

// handlePointer feeds pointer activity into the arbiter. Hover and click
// both request focus; the arbiter decides whether the keyboard window still
// suppresses them.
func (m *Model) handlePointer(x, y int) tea.Cmd {
	m.arbiter.PointerMoved()
	pos := layout.CellAt(m.slots, m.width, m.gridHeight(), x, y)
	if pos == 0 || !layout.Filled(m.slots, pos) {
		return nil
	}
	current, focused := m.arbiter.Focused()
	if m.arbiter.RequestFromMouse(pos) && (!focused || current != pos) {
		return m.applyFocus()
	}
	return nil
}

// nextFilled returns the next widget-bearing position in tab order.
func (m *Model) nextFilled(delta int) int {
	n := len(m.slots)
	if n == 0 {
		return 0
	}
	start, ok := m.arbiter.Focused()
	if !ok {
		if delta > 0 {
			start = 0
		} else {
			start = 1
		}
	}
	pos := start
	for i := 0; i < n; i++ {
		pos += delta
		if pos < 1 {
			pos = n
		}
		if pos > n {
			pos = 1
		}
		if layout.Filled(m.slots, pos) {
			return pos
		}
	}
	return 0
}

// broadcast forwards a message to every widget and the footer.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for pos, c := range m.widgets {
		next, cmd := c.Update(msg)
		m.widgets[pos] = next
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	footer, cmd := m.footer.Update(msg)
	m.footer = footer.(*statusbar.Model)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// rebuildForTheme recreates widgets with the new theme, preserving focus.
// Widget state lives in the store, so a rebuild rehydrates everything.
func (m *Model) rebuildForTheme() {
	for _, slot := range m.slots {
		if c := m.buildWidget(slot.Widget, slot.Position); c != nil {
			m.widgets[slot.Position] = c
		}
	}
	m.footer = statusbar.New(m.th)
	m.applySizes()
	pos, _ := m.arbiter.Focused()
	for p, c := range m.widgets {
		if f, ok := c.(ui.Focusable); ok {
			f.SetFocused(p == pos)
		}
	}
}

func (m *Model) handleWatchEvent(ev store.Event) []tea.Cmd {
	var cmds []tea.Cmd
	switch ev.Type {
	case store.EventKeyChanged:
		switch ev.Key {
		case store.KeyWidgets:
			m.slots = layout.Load(m.persistence)
			m.applySizes()
		case store.KeyWallpaper, store.KeyPalette:
			_, pal := wallpaper.Hydrate(m.persistence)
			m.th = theme.FromPalette(pal)
			m.rebuildForTheme()
		}
		if cmd := m.broadcast(events.StoreChangedMsg{Key: ev.Key}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		// Bulk change: reload everything derived from the store.
		m.slots = layout.Load(m.persistence)
		_, pal := wallpaper.Hydrate(m.persistence)
		m.th = theme.FromPalette(pal)
		m.rebuildForTheme()
	}
	return cmds
}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) gridHeight() int {
	h := m.height - 1 // footer
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model) overlayWidth() int {
	w := m.width * 2 / 3
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) overlayHeight() int {
	h := m.height * 2 / 3
	if h < 10 {
		h = 10
	}
	return h
}

// applySizes recalculates widget cell sizes from the terminal size.
func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	cw, ch := layout.CellSize(m.slots, m.width, m.gridHeight())
	for _, c := range m.widgets {
		c.SetSize(cw, ch)
	}
	m.footer.SetSize(m.width, 1)
	if m.helpOverlay != nil {
		m.helpOverlay.SetSize(m.overlayWidth(), m.overlayHeight())
	}
	if m.settingsOpen != nil {
		m.settingsOpen.SetSize(m.overlayWidth(), m.overlayHeight())
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	switch {
	case m.helpOverlay != nil:
		body = lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, m.helpOverlay.View())
	case m.settingsOpen != nil:
		body = lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, m.settingsOpen.View())
	default:
		body = m.grid()
	}

	return body + "\n" + m.footer.View()
}

func (m *Model) grid() string {
	cw, ch := layout.CellSize(m.slots, m.width, m.gridHeight())
	if cw == 0 || ch == 0 {
		return ""
	}

	focused, _ := m.arbiter.Focused()
	var rows []string
	for row := 0; row < layout.Rows(m.slots); row++ {
		var cells []string
		for col := 0; col < layout.Columns; col++ {
			pos := row*layout.Columns + col + 1
			if pos > len(m.slots) {
				break
			}
			if c, ok := m.widgets[pos]; ok {
				cells = append(cells, c.View())
				continue
			}
			cells = append(cells, panel.Render(m.th.Panel, panel.Options{
				Symbol:   "·",
				Title:    "empty",
				Position: pos,
				Focused:  pos == focused,
				Width:    cw,
				Height:   ch,
			}, m.th.Panel.Muted.Render("nothing here")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// Run launches the interactive dashboard.
func Run(p store.Persistence) error {
	prog := tea.NewProgram(New(p), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := prog.Run()
	return err
}
