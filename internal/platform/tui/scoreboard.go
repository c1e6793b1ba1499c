package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/labyrinth/internal/registry"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

const (
	maxScores        = 100 // Rows loaded per mode
	boardsTabTitle   = "Saved Boards"
	scoreboardChrome = 9 // Rows taken by the title, tabs, borders, stats and help
)

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.NextTab, k.PrevTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.PrevTab}, {k.Back, k.Quit}}
}

// ScoreboardModel shows the high scores of each game mode, with a last tab
// listing the boards saved in the database.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	tab    int // Index into modes; len(modes) is the saved boards tab
	store  *storage.Store
	stats  *storage.GameStats
	empty  string // Shown instead of the table when it has no rows
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) onBoardsTab() bool {
	return m.tab == len(m.modes)
}

// load fills the table for the current tab.
func (m *ScoreboardModel) load() {
	m.stats = nil
	if m.onBoardsTab() {
		m.loadBoards()
	} else {
		m.loadScores(m.modes[m.tab].ID)
	}
	m.table.GotoTop()
}

func (m *ScoreboardModel) loadScores(gameID string) {
	m.table = m.newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 16},
	})
	m.empty = "No scores recorded yet.\nClear a board to set a high score!"
	if m.store == nil {
		m.empty = "No database: scores are not recorded."
		return
	}

	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		m.empty = "Cannot load scores: " + err.Error()
		return
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)

	if stats, err := m.store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		m.stats = stats
	}
}

func (m *ScoreboardModel) loadBoards() {
	nameWidth := min(max(m.width-40, 16), 32)
	m.table = m.newTable([]table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Level", Width: 10},
		{Title: "Saved", Width: 16},
	})
	m.empty = "No saved boards.\nPress ctrl+s in a game to save one."
	if m.store == nil {
		m.empty = "No database: boards cannot be saved."
		return
	}

	boards, err := m.store.ListBoards()
	if err != nil {
		m.empty = "Cannot load boards: " + err.Error()
		return
	}
	rows := make([]table.Row, len(boards))
	for i, b := range boards {
		level := b.LevelID
		if level == "" {
			level = "-"
		}
		rows[i] = table.Row{b.Name, level, b.UpdatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
}

func (m *ScoreboardModel) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
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

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// NextTab moves to the next tab, wrapping around.
func (m *ScoreboardModel) NextTab() {
	m.tab = (m.tab + 1) % (len(m.modes) + 1)
	m.load()
}

// PrevTab moves to the previous tab, wrapping around.
func (m *ScoreboardModel) PrevTab() {
	n := len(m.modes) + 1
	m.tab = (m.tab - 1 + n) % n
	m.load()
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.NextTab()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.PrevTab()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabLine(), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = emptyStyle.Render(m.empty)
	}
	b.WriteString(centerBlock(panelStyle.Render(body), m.width))
	b.WriteString("\n")

	if m.stats != nil {
		line := fmt.Sprintf("Runs: %d  Best: %d  Average: %.0f  Last played: %s",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
			m.stats.LastPlayed.Format("Jan 02 15:04"))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabLine renders the mode tabs, falling back to "< current >" when they
// do not fit.
func (m ScoreboardModel) tabLine() string {
	titles := make([]string, 0, len(m.modes)+1)
	for _, g := range m.modes {
		titles = append(titles, g.Title)
	}
	titles = append(titles, boardsTabTitle)

	tabs := make([]string, len(titles))
	for i, t := range titles {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-2 {
		line = activeTabStyle.Render("< " + titles[m.tab] + " >")
	}
	return line
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	w := lipgloss.Width(block)
	if w >= width {
		return block
	}
	return lipgloss.NewStyle().MarginLeft((width - w) / 2).Render(block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
