// Package labyrinth implements the sliding-tile labyrinth puzzle with
// campaign and endless modes.
package labyrinth

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/labyrinth/internal/config"
	platformcore "github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels/formats"
	"github.com/vovakirdan/labyrinth/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game IDs as registered.
const (
	IDCampaign = "labyrinth"
	IDEndless  = "labyrinth_endless"
)

// Game implements the labyrinth puzzle.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg        config.LabyrinthConfig
	difficulty *config.DifficultyManager
	theme      theme
	tickRate   int

	// Campaign levels; endless mode keeps only the generated current one.
	levels     []levels.Level
	levelIndex int
	level      levels.Level
	loadErr    error

	board   *core.Board
	token   int // Position of the player's token
	goal    int // Position of the goal
	cursor  int
	reach   []bool // Cells the token can walk to
	par     int
	actions int
	score   int
	round   int // Boards cleared this run

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	lastGain        int

	message      string
	messageTicks int

	startLevel string // Per-instance start level, see StartAt
}

// Package-level settings, applied on the next Reset. The SSH server starts
// games from many goroutines, hence the lock.
var (
	settingsMu         sync.Mutex
	selectedStartLevel string
	configPath         string
	difficultyPreset   config.DifficultyPreset
	levelDirs          []string
)

// SetStartLevel sets the campaign level ID to start from. "" means the first.
// The selection is consumed by the next campaign Reset.
func SetStartLevel(id string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = id
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLevelDirs sets extra directories scanned for campaign levels after the
// built-in set.
func SetLevelDirs(dirs []string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	levelDirs = append([]string(nil), dirs...)
}

func takeSettings(mode Mode) (start, cfgPath string, preset config.DifficultyPreset, dirs []string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	start = selectedStartLevel
	if mode == ModeCampaign {
		selectedStartLevel = "" // Reset after use
	}
	return start, configPath, difficultyPreset, append([]string(nil), levelDirs...)
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Labyrinth (Endless)"
	}
	return "Labyrinth"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Generated boards, harder every round"
	}
	return "Hand-made boards, one after another"
}

// StartAt makes the next campaign Reset begin at the level with the given
// ID. Unlike SetStartLevel it only affects this game instance.
func (g *Game) StartAt(levelID string) {
	g.startLevel = levelID
}

// Resize adapts the game to a new screen size without restarting it.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	start, cfgPath, preset, dirs := takeSettings(g.mode)
	if g.startLevel != "" {
		start = g.startLevel
	}

	cfg, err := config.LoadLabyrinth(cfgPath)
	if err != nil {
		cfg = config.DefaultLabyrinthConfig()
	}
	config.ApplyLabyrinthPreset(&cfg, preset)

	g.ResetWith(rc, cfg, nil)
	if g.mode == ModeEndless {
		return
	}

	all, err := levels.LoadCatalog(dirs, nil)
	if err == nil && len(all) == 0 {
		err = fmt.Errorf("no levels found")
	}
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.startCampaign(all, start)
}

// ResetWith restarts the game with an explicit configuration. Campaign
// games play lvls; an empty slice leaves the campaign without a board.
func (g *Game) ResetWith(rc platformcore.RuntimeConfig, cfg config.LabyrinthConfig, lvls []levels.Level) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.theme = newTheme(cfg.Theme)

	g.score = 0
	g.round = 0
	g.levelIndex = 0
	g.loadErr = nil
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.lastGain = 0
	g.message = ""
	g.messageTicks = 0
	g.board = nil

	if g.mode == ModeEndless {
		g.levels = nil
		g.nextEndlessBoard()
		return
	}
	if len(lvls) > 0 {
		g.startCampaign(lvls, "")
	}
}

// startCampaign begins at the level with the given ID, or the first one.
func (g *Game) startCampaign(all []levels.Level, startID string) {
	g.levels = all
	g.levelIndex = 0
	for i, lvl := range all {
		if lvl.ID == startID {
			g.levelIndex = i
			break
		}
	}
	g.loadLevel(g.levels[g.levelIndex])
}

// loadLevel puts a fresh copy of lvl on the table.
func (g *Game) loadLevel(lvl levels.Level) {
	g.level = lvl
	g.board = lvl.ToBoard()
	g.token = g.board.Index(lvl.Start.Row, lvl.Start.Col)
	g.goal = g.board.Index(lvl.Goal.Row, lvl.Goal.Col)
	g.cursor = g.goal
	g.par = lvl.Par
	g.actions = 0
	g.afterChange()
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	minW, minH := boardSize(g.board)
	g.tooSmall = g.screenW < minW || g.screenH < minH+hudHeight+footerHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall || g.board == nil {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		// Auto-advance after two seconds, or at once on Enter
		if g.levelClearTicks >= 2*g.tickRate || in.Has(platformcore.ActionConfirm) {
			g.advance()
		}
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	if in.Has(platformcore.ActionRestart) {
		g.restartBoard()
		return g.result()
	}

	g.handleInput(in)
	return g.result()
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Message: g.message}
}

// handleInput applies at most one board action per tick.
func (g *Game) handleInput(in platformcore.InputFrame) {
	row, col := g.board.RowCol(g.cursor)

	switch {
	case in.Has(platformcore.ActionUp):
		g.moveCursor(row-1, col)
	case in.Has(platformcore.ActionDown):
		g.moveCursor(row+1, col)
	case in.Has(platformcore.ActionLeft):
		g.moveCursor(row, col-1)
	case in.Has(platformcore.ActionRight):
		g.moveCursor(row, col+1)
	}

	switch {
	case in.Has(platformcore.ActionRotateRight):
		g.rotate(core.RotateRight)
	case in.Has(platformcore.ActionRotateLeft):
		g.rotate(core.RotateLeft)
	case in.Has(platformcore.ActionShiftUp):
		g.shift(core.North)
	case in.Has(platformcore.ActionShiftDown):
		g.shift(core.South)
	case in.Has(platformcore.ActionShiftLeft):
		g.shift(core.West)
	case in.Has(platformcore.ActionShiftRight):
		g.shift(core.East)
	case in.Has(platformcore.ActionConfirm):
		g.walk()
	}
}

func (g *Game) moveCursor(row, col int) {
	row = platformcore.Clamp(row, 0, g.board.Rows()-1)
	col = platformcore.Clamp(col, 0, g.board.Columns()-1)
	g.cursor = g.board.Index(row, col)
}

// rotate turns the tile under the cursor.
func (g *Game) rotate(r core.Rotation) {
	g.board.RotatePos(g.cursor, r)
	g.actions++
	g.afterChange()
}

// shift slides the line through the cursor. Pieces on shifted lines ride
// along.
func (g *Game) shift(d core.Direction) {
	if !g.slide(g.cursor, d) {
		g.say("That line is pinned")
		return
	}
	g.actions++
	g.afterChange()
}

// slide performs the move and carries token and goal. Returns false when
// the move is blocked.
func (g *Game) slide(pos int, d core.Direction) bool {
	row, col := g.board.RowCol(pos)
	from, to, ok := g.board.MoveSpan(row, col, d)
	if !ok {
		return false
	}
	g.token = g.ride(g.token, from, to, d)
	g.goal = g.ride(g.goal, from, to, d)
	g.board.Move(row, col, d)
	return true
}

// ride returns where pos ends up after lines [from, to] shift toward d.
func (g *Game) ride(pos, from, to int, d core.Direction) int {
	row, col := g.board.RowCol(pos)
	line := row
	if d.Vertical() {
		line = col
	}
	if line < from || line > to {
		return pos
	}
	dr, dc := d.Delta()
	row = platformcore.Wrap(row+dr, g.board.Rows())
	col = platformcore.Wrap(col+dc, g.board.Columns())
	return g.board.Index(row, col)
}

// walk moves the token to the cursor along the shortest path.
func (g *Game) walk() {
	if g.cursor == g.token {
		return
	}
	path, ok := g.board.ShortestPathPos(g.token, g.cursor)
	if !ok {
		g.say("No path to there")
		return
	}
	g.token = g.cursor
	g.actions++
	g.say(fmt.Sprintf("Walked %d steps", len(path)))
	g.afterChange()
}

// restartBoard puts the current board back to its starting layout.
func (g *Game) restartBoard() {
	g.loadLevel(g.level)
	g.say("Board restarted")
}

// afterChange refreshes derived state and checks for a win.
func (g *Game) afterChange() {
	g.reach = make([]bool, g.board.Size())
	for _, pos := range g.board.Reachable(g.token) {
		g.reach[pos] = true
	}

	if g.actions > 0 && g.token == g.goal {
		g.clearLevel()
	}
}

func (g *Game) clearLevel() {
	g.lastGain = g.cfg.Scoring.Score(g.par, g.actions)
	g.score += g.lastGain
	g.round++
	g.levelCleared = true
	g.levelClearTicks = 0
}

// advance moves to the next board after a clear.
func (g *Game) advance() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.mode == ModeEndless {
		if g.cfg.Endless.Rounds > 0 && g.round >= g.cfg.Endless.Rounds {
			g.won = true
			return
		}
		g.nextEndlessBoard()
		return
	}

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		return
	}
	g.levelIndex++
	g.loadLevel(g.levels[g.levelIndex])
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = 3 * g.tickRate
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// ExportBoard returns the current board in the JSON wire format together
// with the ID of the level it came from.
func (g *Game) ExportBoard() (levelID string, data []byte, err error) {
	if g.board == nil {
		return "", nil, fmt.Errorf("no board loaded")
	}
	data, err = formats.EncodeBoard(g.board)
	if err != nil {
		return "", nil, err
	}
	return g.level.ID, data, nil
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Cursor | x/z: Rotate | W/A/S/D: Shift | Enter: Walk | R: Restart | P: Pause | Q: Quit"
}
