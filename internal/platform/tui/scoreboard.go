package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-hopper/internal/registry"
	"github.com/vovakirdan/star-hopper/internal/session"
	"github.com/vovakirdan/star-hopper/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the set list sidebar
	sidebarWidth       = 20  // Width of the set list sidebar
	maxRows            = 100 // Max rows to load per view
)

// BoardView selects which part of the run log the scoreboard shows.
type BoardView int

const (
	ViewBestTimes BoardView = iota
	ViewFullRuns
	ViewScores
	boardViewCount
)

// String returns the tab title of the view.
func (v BoardView) String() string {
	switch v {
	case ViewBestTimes:
		return "Best times"
	case ViewFullRuns:
		return "Full runs"
	case ViewScores:
		return "Scores"
	default:
		return "?"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevView key.Binding
	NextView key.Binding
	NextSet  key.Binding
	PrevSet  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.NextSet, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevView, k.NextView},
		{k.NextSet, k.PrevSet, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next view"),
		),
		NextSet: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next set"),
		),
		PrevSet: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev set"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run log browser.
type ScoreboardModel struct {
	sets        []registry.SetInfo
	setCursor   int
	view        BoardView
	store       *storage.Store
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model over every registered set.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		sets:        registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.reload()
	return m
}

// columns returns the table columns of the current view.
func (m *ScoreboardModel) columns() []table.Column {
	switch m.view {
	case ViewBestTimes:
		return []table.Column{
			{Title: "Level", Width: 22},
			{Title: "Best", Width: 9},
			{Title: "Tokens", Width: 7},
			{Title: "By", Width: 10},
			{Title: "Clears", Width: 7},
		}
	case ViewFullRuns:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Time", Width: 9},
			{Title: "Score", Width: 8},
			{Title: "Deaths", Width: 7},
			{Title: "Date", Width: 14},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Deaths", Width: 7},
			{Title: "Finished", Width: 9},
			{Title: "Date", Width: 14},
		}
	}
}

// createTable creates a new table for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload rebuilds the table for the selected set and view.
func (m *ScoreboardModel) reload() {
	m.table = m.createTable()
	m.rows, m.loadErr = nil, nil
	if m.store != nil && len(m.sets) > 0 {
		m.rows, m.loadErr = m.loadRows(m.sets[m.setCursor].ID)
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) loadRows(setID string) ([]table.Row, error) {
	switch m.view {
	case ViewBestTimes:
		bests, err := m.store.BestTimes(setID)
		if err != nil {
			return nil, err
		}
		names := levelNames(setID)
		rows := make([]table.Row, len(bests))
		for i, b := range bests {
			name := fmt.Sprintf("%d", b.Level+1)
			if b.Level < len(names) {
				name = fmt.Sprintf("%d. %s", b.Level+1, names[b.Level])
			}
			rows[i] = table.Row{
				name,
				session.FormatTime(b.Time),
				fmt.Sprintf("%d", b.Tokens),
				b.Player,
				fmt.Sprintf("%d", b.Count),
			}
		}
		return rows, nil

	case ViewFullRuns:
		runs, err := m.store.FastestRuns(setID, maxRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(runs))
		for i, r := range runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				session.FormatTime(r.Time),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Deaths),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil

	default:
		scores, err := m.store.TopScores(setID, maxRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(scores))
		for i, s := range scores {
			finished := "-"
			if s.Finished {
				finished = "yes"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.Deaths),
				finished,
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil
	}
}

// levelNames returns the level names of a registered set, if it is known.
func levelNames(setID string) []string {
	set, err := registry.Get(setID)
	if err != nil {
		return nil
	}
	names := make([]string, len(set.Levels))
	for i, def := range set.Levels {
		names[i] = def.Name
	}
	return names
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSet):
			if len(m.sets) > 0 {
				m.setCursor = (m.setCursor + 1) % len(m.sets)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSet):
			if len(m.sets) > 0 {
				m.setCursor = (m.setCursor - 1 + len(m.sets)) % len(m.sets)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % boardViewCount
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view - 1 + boardViewCount) % boardViewCount
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	// Scrolling and anything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN LOG"
	if len(m.sets) > 0 {
		title = fmt.Sprintf("RUN LOG - %s", m.sets[m.setCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderViewTabs(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderViewTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, boardViewCount)
	for v := BoardView(0); v < boardViewCount; v++ {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderWideLayout renders the scoreboard with a sidebar for set selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Level sets\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.sets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.setCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + clip(s.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with the set name above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.sets) > 1 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.sets[m.setCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No run log available.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the run log:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("Nothing recorded yet.\nFinish a level to set a time!")
	}
	return m.table.View()
}

// Rows returns the rows of the current view.
func (m ScoreboardModel) Rows() []table.Row { return m.rows }

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText places every line of text in the middle of width columns.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
