package xiangqi

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Move 一步走子：哪个子走到哪
type Move struct {
	Piece *Piece
	To    Point
}

// Game = 棋盘 + 轮到谁走 + 当前一方每个棋子的走法表。
// 非并发安全：同一时间只处理一步棋。
type Game struct {
	board  *Board
	active Color
	moves  map[*Piece][]Point
}

// NewGame 红先，并立即计算红方走法
func NewGame(b *Board) *Game {
	g := &Game{
		board:  b,
		active: Red,
		moves:  make(map[*Piece][]Point, 16),
	}
	g.Recompute()
	return g
}

// NewGameFromLayout 即 initializeBoard：先摆子再开局
func NewGameFromLayout(layout Layout) (*Game, error) {
	b, err := NewBoard(layout)
	if err != nil {
		return nil, err
	}
	return NewGame(b), nil
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) ActiveColor() Color { return g.active }

// TurnText 轮次提示文字
func (g *Game) TurnText() string {
	if g.active == Black {
		return "Black turn"
	}
	return "Red turn"
}

// Recompute 整体重算走子方每个棋子的走法；另一方不计算
func (g *Game) Recompute() {
	maps.Clear(g.moves)
	for _, pc := range g.board.PiecesOf(g.active) {
		g.moves[pc] = PieceMoves(g.board, pc)
	}
}

// LegalMoves 返回棋子本回合可去的点；非走子方或已被吃的子为空
func (g *Game) LegalMoves(pc *Piece) []Point {
	return slices.Clone(g.moves[pc])
}

// Movable 对应界面上“可拖动”
func (g *Game) Movable(pc *Piece) bool {
	if pc == nil || pc.Captured || pc.Color != g.active {
		return false
	}
	_, ok := g.moves[pc]
	return ok
}

// AllMoves 按棋盘顺序列出走子方的全部走法
func (g *Game) AllMoves() []Move {
	var out []Move
	for _, pc := range g.board.PiecesOf(g.active) {
		for _, to := range g.moves[pc] {
			out = append(out, Move{Piece: pc, To: to})
		}
	}
	return out
}

// CommitMove 执行一步棋：吃子、移子、换边、重算。
// 不合法时返回错误，棋盘与轮次都不变。
func (g *Game) CommitMove(pc *Piece, to Point) (*Piece, error) {
	if !OnBoard(to) {
		return nil, &OutOfRangeError{At: to}
	}
	if pc == nil {
		return nil, &IllegalMoveError{To: to, Reason: "no piece"}
	}
	if pc.Captured {
		return nil, &IllegalMoveError{Piece: pc, To: to, Reason: "piece was captured"}
	}
	if pc.Color != g.active {
		return nil, &IllegalMoveError{Piece: pc, To: to, Reason: fmt.Sprintf("%s to move", g.active)}
	}
	if !slices.Contains(g.moves[pc], to) {
		return nil, &IllegalMoveError{Piece: pc, To: to, Reason: "destination not reachable"}
	}
	if g.board.at(pc.Pos) != pc {
		panic(InvariantViolation{Detail: fmt.Sprintf("%v not found on its own square", pc)})
	}
	// 走法表过期（棋盘在两次重算之间被改过）时按当前棋盘再核一次
	if !slices.Contains(PieceMoves(g.board, pc), to) {
		return nil, &IllegalMoveError{Piece: pc, To: to, Reason: "move set is stale"}
	}

	captured := g.board.at(to)
	if captured != nil {
		if captured.Color == pc.Color {
			panic(InvariantViolation{Detail: fmt.Sprintf("%v would capture own %v", pc, captured)})
		}
		g.board.capture(captured)
	}
	g.board.relocate(pc, to)
	g.active = g.active.Opposite()
	g.Recompute()
	return captured, nil
}

// CommitAt 按起点找子再走
func (g *Game) CommitAt(from, to Point) (*Piece, error) {
	pc, err := g.board.At(from)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, &IllegalMoveError{To: to, Reason: fmt.Sprintf("no piece at %s", from)}
	}
	return g.CommitMove(pc, to)
}
