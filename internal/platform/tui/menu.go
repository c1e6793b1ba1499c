package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels"
)

// Main menu entries, in display order.
const (
	menuCampaign = iota
	menuEndless
	menuSelectLevel
	menuScores
	menuEntries
)

var menuLabels = [menuEntries]string{
	"Campaign",
	"Endless",
	"Select Level...",
	"High Scores",
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// MenuSelection is the game the player picked.
type MenuSelection struct {
	GameID     string
	StartLevel string // Campaign level ID; empty starts from the first
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	levels        []levels.Level
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keys          MenuKeyMap
	help          help.Model

	quitting       bool
	selected       *MenuSelection // Set when user selects a game
	openScoreboard bool           // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model over the given campaign levels.
func NewMenuModel(lvls []levels.Level, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		levels: lvls,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, menuEntries)
	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, menuEntries)
	case MenuActionSelect:
		switch m.cursor {
		case menuCampaign:
			m.selected = &MenuSelection{GameID: labyrinth.IDCampaign}
			return m, tea.Quit
		case menuEndless:
			m.selected = &MenuSelection{GameID: labyrinth.IDEndless}
			return m, tea.Quit
		case menuSelectLevel:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &MenuSelection{
			GameID:     labyrinth.IDCampaign,
			StartLevel: m.levels[m.levelCursor].ID,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.inLevelSelect {
		b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
		b.WriteString("\n\n")
		m.viewLevels(&b)
	} else {
		b.WriteString(centerText(titleStyle.Render("L A B Y R I N T H"), m.width))
		b.WriteString("\n\n")
		for i, label := range menuLabels {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+label, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// viewLevels writes the window of the level list around the cursor.
func (m MenuModel) viewLevels(b *strings.Builder) {
	visible := max(m.height-8, 3)
	first := 0
	if m.levelCursor >= visible {
		first = m.levelCursor - visible + 1
	}
	last := min(first+visible, len(m.levels))

	for i := first; i < last; i++ {
		lvl := m.levels[i]
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s (%dx%d, par %d)", cursor, lvl.ID, lvl.Name, lvl.Rows, lvl.Columns, lvl.Par)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(lvls []levels.Level, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(lvls, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.MenuSelection = *m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
