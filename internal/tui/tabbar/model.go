// Package tabbar renders a tabs.Controller as a row of tab headers and feeds
// it key, mouse and collection changes.
package tabbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/playpen/playpen/internal/logging"
	"github.com/playpen/playpen/internal/tabs"
	"github.com/playpen/playpen/internal/target"
	"github.com/playpen/playpen/internal/tui"
	"github.com/playpen/playpen/internal/tui/keys"
)

// Height of the rendered tab bar: the headers and their underline.
const Height = 2

// ChangeMsg is sent whenever the active tab changes. Key is empty when no tab
// is active.
type ChangeMsg struct {
	Key   string
	Index int
}

// FocusMsg moves keyboard focus to the tab with the given key. It is sent
// after the activation that prompted it has been processed.
type FocusMsg struct {
	Key string
}

// Editor is the component whose displayed file follows the active tab.
type Editor interface {
	Show(name string) tea.Cmd
}

// Model is the tab bar.
type Model struct {
	ctrl   *tabs.Controller
	zones  *zone.Manager
	prefix string
	editor target.Ref[Editor]
	logger logging.Interface

	width int
	// offset is the index of the left-most rendered tab.
	offset int
	// focused is the key of the tab with keyboard focus.
	focused string

	// changes accumulates notifications from the controller until they are
	// turned into messages.
	changes []tabs.Change
}

type Option func(*Model)

// WithEditor configures the editor controlled by the tab bar, either directly
// or by identifier.
func WithEditor(ref target.Ref[Editor]) Option {
	return func(m *Model) {
		m.editor = ref
	}
}

func WithLogger(logger logging.Interface) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

func New(zones *zone.Manager, opts ...Option) *Model {
	m := &Model{
		zones:  zones,
		prefix: zones.NewPrefix(),
		logger: logging.Discard,
	}
	for _, fn := range opts {
		fn(m)
	}
	m.ctrl = tabs.NewController(
		tabs.WithNotify(m.record),
		tabs.WithLogger(m.logger),
	)
	return m
}

func (m *Model) record(c tabs.Change) {
	m.changes = append(m.changes, c)
}

// Controller returns the underlying controller.
func (m *Model) Controller() *tabs.Controller { return m.ctrl }

// ResolveEditor resolves the editor reference if it was given by identifier.
func (m *Model) ResolveEditor(r target.Resolver[Editor]) {
	m.editor = m.editor.Resolve(r)
	if m.editor.State() == target.Missing {
		m.logger.Warn("tab bar editor not found", "editor", m.editor.ID())
	}
}

// Focused returns the key of the tab with keyboard focus.
func (m *Model) Focused() string { return m.focused }

// SetItems replaces the tabs, returning a command emitting any resulting
// change.
func (m *Model) SetItems(items []*tabs.Item) tea.Cmd {
	m.ctrl.SetItems(items)
	m.clampOffset()
	return m.flush()
}

// SetActive activates the tab with the given key. An empty key, or a key with
// no tab, leaves no tab active.
func (m *Model) SetActive(key string) tea.Cmd {
	item, _ := m.ctrl.Lookup(key)
	m.ctrl.SetActive(item)
	if item != nil {
		m.scrollIntoView(item)
	}
	return m.flush()
}

// Navigate activates the neighbouring tab and then moves focus to it.
func (m *Model) Navigate(dir tabs.Direction) tea.Cmd {
	item := m.ctrl.Navigate(dir)
	if item == nil {
		return nil
	}
	m.scrollIntoView(item)
	// Focus is moved only once the activation has been delivered and
	// rendered.
	return tea.Sequence(m.flush(), func() tea.Msg {
		return FocusMsg{Key: item.Key}
	})
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.TabPrevious):
			return m.Navigate(tabs.Previous)
		case key.Matches(msg, keys.Navigation.TabNext):
			return m.Navigate(tabs.Next)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if item := m.ctrl.Activate(m.dispatchPath(msg)); item != nil {
			m.scrollIntoView(item)
			return m.flush()
		}
	case FocusMsg:
		// Only a keyboard-reachable tab can take focus.
		if item, ok := m.ctrl.Lookup(msg.Key); ok && item.TabIndex() >= 0 {
			m.focused = item.Key
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if active := m.ctrl.Active(); active != nil {
			m.scrollIntoView(active)
		}
	}
	return nil
}

// flush turns recorded changes into messages, instructing the editor to show
// the newly active file.
func (m *Model) flush() tea.Cmd {
	if len(m.changes) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, 2*len(m.changes))
	for _, c := range m.changes {
		msg := ChangeMsg{Index: -1}
		if c.Item != nil {
			msg = ChangeMsg{Key: c.Item.Key, Index: c.Item.Index()}
		}
		cmds = append(cmds, tui.CmdHandler(msg))
		if editor, ok := m.editor.Get(); ok {
			cmds = append(cmds, editor.Show(msg.Key))
		}
	}
	m.changes = nil
	return tea.Sequence(cmds...)
}

// dispatchPath returns the identifiers of the zones under the mouse,
// innermost first: a tab's label, then the tab, then the bar itself.
func (m *Model) dispatchPath(msg tea.MouseMsg) []string {
	var labels, headers []string
	for _, item := range m.ctrl.Items() {
		if m.inBounds(labelZone(item.Key), msg) {
			labels = append(labels, labelZone(item.Key))
		}
		if m.inBounds(tabs.Element(item.Key), msg) {
			headers = append(headers, tabs.Element(item.Key))
		}
	}
	path := append(labels, headers...)
	if m.inBounds(barZone, msg) {
		path = append(path, barZone)
	}
	return path
}

func (m *Model) inBounds(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(m.prefix + id)
	return z != nil && z.InBounds(msg)
}

const barZone = "bar"

func labelZone(key string) string {
	return "label:" + key
}

// scrollIntoView adjusts the offset so that item is rendered.
func (m *Model) scrollIntoView(item *tabs.Item) {
	if item.Index() < m.offset {
		m.offset = item.Index()
		return
	}
	if m.width <= 0 {
		return
	}
	items := m.ctrl.Items()
	for m.offset < item.Index() {
		var width int
		for _, i := range items[m.offset : item.Index()+1] {
			width += tui.Width(renderHeading(i, false))
		}
		if width <= m.width-scrollMarkerWidth {
			return
		}
		m.offset++
	}
}

// ActiveX returns the column at which the active tab is rendered.
func (m *Model) ActiveX() int {
	active := m.ctrl.Active()
	if active == nil || active.Index() < m.offset {
		return 0
	}
	var x int
	if m.offset > 0 {
		x = scrollMarkerWidth
	}
	for _, item := range m.ctrl.Items()[m.offset:active.Index()] {
		x += tui.Width(renderHeading(item, false))
	}
	return x
}

func (m *Model) clampOffset() {
	m.offset = max(0, min(m.offset, len(m.ctrl.Items())-1))
}

const scrollMarkerWidth = 2

var (
	activeTabStyle   = tui.Bold.Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Foreground(tui.InactiveTabColor)
	focusedTabStyle  = tui.Bold.Foreground(tui.FocusedTabColor)
)

func renderHeading(item *tabs.Item, focused bool) string {
	style := inactiveTabStyle
	if item.Active() {
		style = activeTabStyle
	}
	if focused && item.Active() {
		style = focusedTabStyle
	}
	return style.Padding(0, 1).Render(item.String())
}

func (m *Model) View() string {
	var (
		headers []string
		width   int
	)
	items := m.ctrl.Items()
	if m.offset > 0 {
		marker := inactiveTabStyle.Render("‹ ")
		headers = append(headers, lipgloss.JoinVertical(lipgloss.Top, marker, inactiveTabStyle.Render("──")))
		width += scrollMarkerWidth
	}
	for _, item := range items[min(m.offset, len(items)):] {
		heading := renderHeading(item, item.Key == m.focused)
		if m.width > 0 && width+tui.Width(heading) > m.width {
			break
		}
		heading = m.zones.Mark(m.prefix+labelZone(item.Key), heading)
		underlineChar := "─"
		style := inactiveTabStyle
		if item.Active() {
			underlineChar = "━"
			style = activeTabStyle
		}
		underline := style.Render(strings.Repeat(underlineChar, tui.Width(heading)))
		header := lipgloss.JoinVertical(lipgloss.Top, heading, underline)
		headers = append(headers, m.zones.Mark(m.prefix+tabs.Element(item.Key), header))
		width += tui.Width(heading)
	}
	// Fill the remaining width with a faint underline.
	remaining := max(0, m.width-width)
	filler := lipgloss.JoinVertical(lipgloss.Top,
		strings.Repeat(" ", remaining),
		inactiveTabStyle.Render(strings.Repeat("─", remaining)),
	)
	headers = append(headers, filler)
	return m.zones.Mark(m.prefix+barZone, lipgloss.JoinHorizontal(lipgloss.Bottom, headers...))
}
