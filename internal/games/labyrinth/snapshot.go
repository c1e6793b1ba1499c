package labyrinth

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	LevelID string
	Round   int // Boards cleared this run
	Score   int
	Actions int
	Par     int
	Board   string // Glyph rows joined by newlines
	Token   int
	Goal    int
	Cursor  int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	var board string
	if g.board != nil {
		board = g.board.String()
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		LevelID: g.level.ID,
		Round:   g.round,
		Score:   g.score,
		Actions: g.actions,
		Par:     g.par,
		Board:   board,
		Token:   g.token,
		Goal:    g.goal,
		Cursor:  g.cursor,
		State:   state,
	}
}
