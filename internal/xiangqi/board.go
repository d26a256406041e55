package xiangqi

import "fmt"

const (
	Files     = 9
	Ranks     = 10
	NumPoints = Files * Ranks

	RiverRank = 4 // 红方半场最后一行，河界在 4 与 5 之间
)

func indexOf(p Point) int { return p.Y*Files + p.X }

func pointOf(idx int) Point { return Point{X: idx % Files, Y: idx / Files} }

func OnBoard(p Point) bool {
	return p.X >= 0 && p.X < Files && p.Y >= 0 && p.Y < Ranks
}

// 兵的前进方向：红向上(+1)，黑向下(-1)
func forward(side Color) int {
	if side == Red {
		return +1
	}
	return -1
}

// 是否已经过河
func crossedRiver(side Color, p Point) bool {
	if side == Red {
		return p.Y > RiverRank
	}
	return p.Y <= RiverRank
}

// 是否在本方九宫：固定坐标范围 x∈{3,4,5}，红 y∈{0,1,2}，黑 y∈{7,8,9}
func inPalace(side Color, p Point) bool {
	if p.X < 3 || p.X > 5 {
		return false
	}
	if side == Red {
		return p.Y >= 0 && p.Y <= 2
	}
	return p.Y >= 7 && p.Y <= 9
}

// Board 9x10 交叉点到棋子的映射，只存活子
type Board struct {
	squares [NumPoints]*Piece
	nextID  int
}

// NewBoard 按布局摆子；任何一处出错都整体失败
func NewBoard(layout Layout) (*Board, error) {
	b := &Board{}
	for _, pl := range layout {
		if _, err := b.place(pl.Kind, pl.Color, pl.At); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// At 返回占据 p 的棋子，空位返回 nil
func (b *Board) At(p Point) (*Piece, error) {
	if !OnBoard(p) {
		return nil, &OutOfRangeError{At: p}
	}
	return b.squares[indexOf(p)], nil
}

// 规则函数内部使用，调用方已保证 p 在盘内
func (b *Board) at(p Point) *Piece { return b.squares[indexOf(p)] }

// place 只在摆局时使用；对局中棋盘只由走子执行修改
func (b *Board) place(kind Kind, color Color, p Point) (*Piece, error) {
	if !kind.Valid() || (color != Red && color != Black) {
		return nil, fmt.Errorf("%w: bad piece %v/%v at %s", ErrInvalidLayout, color, kind, p)
	}
	if !OnBoard(p) {
		return nil, &OutOfRangeError{At: p}
	}
	idx := indexOf(p)
	if b.squares[idx] != nil {
		return nil, fmt.Errorf("%w: %s", ErrOccupied, p)
	}
	pc := &Piece{ID: b.nextID, Kind: kind, Color: color, Pos: p}
	b.nextID++
	b.squares[idx] = pc
	return pc, nil
}

// capture 把被吃的子从棋盘上拿掉（被吃的子不再复用）
func (b *Board) capture(pc *Piece) {
	b.squares[indexOf(pc.Pos)] = nil
	pc.Captured = true
}

// relocate 只给走子执行用；目标格必须已清空
func (b *Board) relocate(pc *Piece, to Point) {
	b.squares[indexOf(pc.Pos)] = nil
	b.squares[indexOf(to)] = pc
	pc.Pos = to
}

// Pieces 按棋盘顺序返回所有活子
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, 32)
	for _, pc := range b.squares {
		if pc != nil {
			out = append(out, pc)
		}
	}
	return out
}

func (b *Board) PiecesOf(color Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for _, pc := range b.squares {
		if pc != nil && pc.Color == color {
			out = append(out, pc)
		}
	}
	return out
}

// Verify 检查每个棋子记录的位置与其所在格一致
func (b *Board) Verify() error {
	for idx, pc := range b.squares {
		if pc == nil {
			continue
		}
		if pc.Captured {
			return InvariantViolation{Detail: fmt.Sprintf("captured %v still on %s", pc, pointOf(idx))}
		}
		if indexOf(pc.Pos) != idx {
			return InvariantViolation{Detail: fmt.Sprintf("%v stored at %s", pc, pointOf(idx))}
		}
	}
	return nil
}
