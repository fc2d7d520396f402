package model

// Config enumerates the options a game is constructed with. It is validated
// up front by NewGame; there is no deferred build step.
type Config struct {
	// Scenario names a test layout; empty means the standard starting
	// layout. Unknown names are rejected.
	Scenario string `json:"scenario"`
	// Fog hides opposing pieces outside the current player's visibility.
	Fog bool `json:"fog"`
	// SinglePlayer suppresses turn alternation, so one player drives both
	// sides.
	SinglePlayer bool `json:"singlePlayer"`
}

// Game is the rules core: the board, the player to move, the current
// selection, and the mode flags. Every public operation executes to
// completion before the next event is processed; the caller serializes
// events.
type Game struct {
	board        *Board
	turn         Player
	selected     Selection
	scenario     string
	fog          bool
	singlePlayer bool
}

// NewGame constructs a game from cfg, failing fast on an unknown scenario
// name.
func NewGame(cfg Config) (*Game, error) {
	board, err := ScenarioBoard(cfg.Scenario)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:        board,
		turn:         White,
		scenario:     cfg.Scenario,
		fog:          cfg.Fog,
		singlePlayer: cfg.SinglePlayer,
	}, nil
}

// Reset replaces the current state with the initial scenario snapshot.
func (g *Game) Reset() {
	board, err := ScenarioBoard(g.scenario)
	if err != nil {
		// The scenario was validated at construction.
		return
	}
	g.board = board
	g.turn = White
	g.selected.Clear()
}

func (g *Game) Board() *Board      { return g.board }
func (g *Game) Turn() Player       { return g.turn }
func (g *Game) Selected() []Coord  { return g.selected.Coords() }
func (g *Game) FogEnabled() bool   { return g.fog }
func (g *Game) SinglePlayer() bool { return g.singlePlayer }

// Select interprets a chosen target cell. With the multi-select modifier it
// extends the selection; otherwise it resolves to a move, an attack, a
// reselect, or a castle attempt. Clicks whose guards fail are silently
// ignored and leave the state unchanged.
func (g *Game) Select(target Coord, multi bool) {
	if multi {
		if g.containsAlly(target) {
			g.selected.Add(target)
		}
		return
	}
	occupant := g.board.Get(target)
	if occupant == nil {
		// Multi selection over an empty target is a compound move. The
		// only compound move in standard chess is the castle, so resolve
		// it directly.
		if g.selected.Len() > 1 {
			g.castleMove()
			return
		}
		if from, ok := g.selected.First(); ok && g.movesContain(from, target) {
			g.moveTurn(from, target)
		}
		return
	}
	if occupant.Player != g.turn && g.selected.Len() == 1 {
		// Attack: capture semantics are implicit in MovePiece.
		if from, ok := g.selected.First(); ok && g.movesContain(from, target) {
			g.moveTurn(from, target)
		}
		return
	}
	if g.containsAlly(target) {
		// A plain click on an own piece always resets to a single
		// selection.
		g.selected.Replace(target)
	}
}

// moveTurn relocates the selected piece and concludes the turn.
func (g *Game) moveTurn(from, to Coord) {
	if !g.containsAlly(from) {
		return
	}
	g.board.MovePiece(from, to)
	if !g.singlePlayer {
		g.turn = g.turn.Opposite()
	}
	g.selected.Clear()
}

// castleMove validates and executes the castle over the first two selected
// coordinates. Preconditions: both cells hold a piece, exactly one king and
// one rook, neither has ever moved, and each piece's landing cell (king two
// columns toward the rook, rook two columns toward the king, per the
// standard layout) is on the board and empty. Any failure leaves the state
// untouched. A successful castle concludes the turn the same way a plain
// move does.
func (g *Game) castleMove() {
	a, b, ok := g.selected.FirstTwo()
	if !ok {
		return
	}
	first, second := g.board.Get(a), g.board.Get(b)
	if first == nil || second == nil {
		return
	}
	kingPos, rookPos := a, b
	king, rook := first, second
	switch {
	case first.Unit == King && second.Unit == Rook:
	case first.Unit == Rook && second.Unit == King:
		kingPos, rookPos = b, a
		king, rook = second, first
	default:
		return
	}
	if king.Moved != 0 || rook.Moved != 0 {
		return
	}
	kingTo := Coord{X: kingPos.X - 2, Y: kingPos.Y}
	rookTo := Coord{X: rookPos.X + 2, Y: rookPos.Y}
	if !kingTo.InRange() || !rookTo.InRange() {
		return
	}
	if g.board.Get(kingTo) != nil || g.board.Get(rookTo) != nil {
		return
	}
	g.board.MovePiece(kingPos, kingTo)
	g.board.MovePiece(rookPos, rookTo)
	g.selected.Clear()
	if !g.singlePlayer {
		g.turn = g.turn.Opposite()
	}
}

// containsAlly reports whether pos holds a piece owned by the player to
// move. Off-board coordinates never contain an ally.
func (g *Game) containsAlly(pos Coord) bool {
	p := g.board.Get(pos)
	return p != nil && p.Player == g.turn
}

// containsEnemy reports whether pos holds a piece owned by the opponent of
// the player to move. Off-board coordinates never contain an enemy.
func (g *Game) containsEnemy(pos Coord) bool {
	p := g.board.Get(pos)
	return p != nil && p.Player != g.turn
}

func (g *Game) movesContain(from, target Coord) bool {
	for _, c := range g.Moves(from) {
		if c == target {
			return true
		}
	}
	return false
}
