package top

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	zone "github.com/lrstanley/bubblezone"
	"github.com/playpen/playpen/internal/activefile"
	"github.com/playpen/playpen/internal/logging"
	"github.com/playpen/playpen/internal/project"
	"github.com/playpen/playpen/internal/resource"
	"github.com/playpen/playpen/internal/tabs"
	"github.com/playpen/playpen/internal/target"
	"github.com/playpen/playpen/internal/tui"
	"github.com/playpen/playpen/internal/tui/editor"
	"github.com/playpen/playpen/internal/tui/filemenu"
	"github.com/playpen/playpen/internal/tui/keys"
	"github.com/playpen/playpen/internal/tui/tabbar"
	"github.com/playpen/playpen/internal/version"
)

const (
	headerHeight = 1
	footerHeight = shortHelpRows
)

type model struct {
	project *project.Project
	logger  *logging.Logger

	zones      *zone.Manager
	tabbar     *tabbar.Model
	editor     *editor.Model
	menu       *filemenu.Model
	reconciler *activefile.Reconciler

	width  int
	height int

	showHelp bool
	showLogs bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	prompt *tui.Prompt

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File

	workdir string
}

func newModel(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, err
		}
	}

	workdir, err := contractUserPath(opts.Workdir)
	if err != nil {
		return model{}, err
	}

	zones := zone.New()
	ed := editor.New(opts.Project, 0, 0)
	bar := tabbar.New(zones,
		tabbar.WithEditor(target.ByID[tabbar.Editor](editor.ID)),
		tabbar.WithLogger(opts.Logger),
	)
	// The tab bar names its editor; resolve it now that both exist.
	bar.ResolveEditor(target.Registry[tabbar.Editor]{editor.ID: ed})

	m := model{
		project:    opts.Project,
		logger:     opts.Logger,
		zones:      zones,
		tabbar:     bar,
		editor:     ed,
		menu:       filemenu.New(opts.Project),
		reconciler: activefile.New(opts.Logger),
		dump:       dump,
		workdir:    workdir,
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return m.sync()
}

// sync rebuilds the tabs from the project's files and reconciles the active
// file.
func (m model) sync() tea.Cmd {
	files := m.project.Files()
	state := m.reconciler.Reconcile(asActiveFiles(files))
	return m.rebuild(files, state)
}

// activate makes the named file active, reconciling against the project's
// current files.
func (m model) activate(name string) tea.Cmd {
	files := m.project.Files()
	state := m.reconciler.SetActive(name, asActiveFiles(files))
	return m.rebuild(files, state)
}

// rebuild replaces the tabs with one per visible file, reusing existing tabs,
// and activates the tab for the active file.
func (m model) rebuild(files []project.FileEntry, state activefile.State) tea.Cmd {
	ctrl := m.tabbar.Controller()
	items := make([]*tabs.Item, 0, len(files))
	for _, f := range files {
		if f.Hidden {
			continue
		}
		item, ok := ctrl.Lookup(f.Name)
		if !ok {
			item = tabs.NewItem(f.Name)
		}
		item.Label = f.DisplayName()
		// Let the active file win the first-active scan so that no
		// intermediate change is emitted when the previous active tab has
		// gone.
		if f.Name == state.Name && !item.Active() {
			item.Initial = true
		}
		items = append(items, item)
	}
	return tea.Sequence(
		m.tabbar.SetItems(items),
		m.tabbar.SetActive(state.Name),
	)
}

// updateTabBar forwards msg to the tab bar. Should the user have activated a
// tab, the reconciler follows before any further message is handled.
func (m model) updateTabBar(msg tea.Msg) tea.Cmd {
	cmd := m.tabbar.Update(msg)
	active := m.tabbar.Controller().Active()
	if active != nil && active.Key != m.reconciler.State().Name {
		m.reconciler.SetActive(active.Key, asActiveFiles(m.project.Files()))
	}
	return cmd
}

func asActiveFiles(files []project.FileEntry) []activefile.File {
	to := make([]activefile.File, len(files))
	for i, f := range files {
		to[i] = f
	}
	return to
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting playpen"
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		if m.prompt != nil {
			closePrompt, cmd := m.prompt.HandleKey(msg)
			if closePrompt {
				m.prompt = nil
			}
			return m, cmd
		}
		if m.menu.IsOpen() {
			return m, m.menu.Update(msg)
		}

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting the user for
			// confirmation.
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Escape):
			m.showHelp = false
			m.showLogs = false
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Logs):
			m.showLogs = !m.showLogs
		case key.Matches(msg, keys.Global.Menu):
			m.menu.Open(m.reconciler.State().Name, m.tabbar.ActiveX())
		case key.Matches(msg, keys.Navigation.TabPrevious, keys.Navigation.TabNext):
			return m, m.updateTabBar(msg)
		default:
			return m, m.editor.Update(msg)
		}
		return m, nil
	case tea.MouseMsg:
		return m, m.updateTabBar(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tabbar.Update(tea.WindowSizeMsg{Width: m.width, Height: tabbar.Height})
		m.editor.Update(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})
		return m, nil
	case tabbar.ChangeMsg:
		// The reconciler has already followed the change.
		return m, nil
	case tabbar.FocusMsg:
		return m, m.tabbar.Update(msg)
	case tui.ActivateFileMsg:
		return m, m.activate(msg.Name)
	case resource.Event[project.FileEntry]:
		cmds := []tea.Cmd{m.editor.Update(msg)}
		active := m.reconciler.State().Name
		if msg.Type == resource.UpdatedEvent && msg.Previous.Name == active && msg.Payload.Name != active {
			// The active file was renamed: follow it.
			cmds = append(cmds, m.activate(msg.Payload.Name))
		} else {
			cmds = append(cmds, m.sync())
		}
		return m, tea.Batch(cmds...)
	case resource.Event[logging.Message]:
		// Re-render the logs.
		return m, nil
	case tui.PromptMsg:
		var blink tea.Cmd
		m.prompt, blink = tui.NewPrompt(msg)
		return m, blink
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			text := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", text, err)
			m.logger.Error(text, "error", err)
		}
		return m, nil
	case tui.InfoMsg:
		m.info = string(msg)
		return m, nil
	}

	var cmds []tea.Cmd
	if m.prompt != nil {
		cmds = append(cmds, m.prompt.HandleBlink(msg))
	}
	if m.showQuitPrompt {
		var cmd tea.Cmd
		m.quitPrompt, cmd = m.quitPrompt.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.editor.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m model) contentHeight() int {
	return max(0, m.height-headerHeight-tabbar.Height-footerHeight)
}

var (
	titleStyle   = tui.Bold.Padding(0, 1)
	workdirStyle = tui.Regular.Foreground(tui.InactiveTabColor)
	errorStyle   = tui.Regular.Foreground(tui.ErrorLogLevel).Padding(0, 1)
	infoStyle    = tui.Regular.Foreground(tui.InfoLogLevel).Padding(0, 1)
)

func (m model) View() string {
	var (
		content      string
		helpBindings []key.Binding
	)
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().
			Margin(1).
			Render(
				fullHelpView(
					keys.KeyMapToSlice(keys.FileMenu),
					keys.KeyMapToSlice(keys.Global),
					keys.KeyMapToSlice(keys.Navigation),
				),
			)
		helpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	case m.showLogs:
		content = logsView(m.logger, m.width, m.contentHeight())
		helpBindings = []key.Binding{keys.Global.Logs, keys.Global.Escape}
	case m.menu.IsOpen():
		content = m.menu.View()
		helpBindings = m.menu.HelpBindings()
	default:
		content = m.editor.View()
		helpBindings = append(
			[]key.Binding{keys.Navigation.TabPrevious, keys.Navigation.TabNext},
			keys.KeyMapToSlice(keys.Global)...,
		)
	}
	content = lipgloss.NewStyle().
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(content)

	title := titleStyle.Render(fmt.Sprintf("playpen %s", version.Version))
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		workdirStyle.
			Width(max(0, m.width-tui.Width(title))).
			Align(lipgloss.Right).
			Render(m.workdir),
	)

	var footer string
	switch {
	case m.showQuitPrompt:
		footer = tui.Padded.Render(fmt.Sprintf("Quit playpen? (y/N): %s", m.quitPrompt.View()))
	case m.prompt != nil:
		footer = tui.Padded.Render(m.prompt.View())
	case m.err != nil:
		footer = errorStyle.Render(fmt.Sprintf("Error: %s", m.err.Error()))
	case m.info != "":
		footer = infoStyle.Render(m.info)
	default:
		footer = tui.Padded.Render(shortHelpView(helpBindings, m.width-2))
	}
	footer = lipgloss.NewStyle().Height(footerHeight).MaxHeight(footerHeight).Render(footer)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Top,
		header,
		m.tabbar.View(),
		content,
		footer,
	))
}
