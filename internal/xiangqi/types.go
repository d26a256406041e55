package xiangqi

import "fmt"

type Color int8

const (
	Red   Color = 0 // 红先
	Black Color = 1
)

func (c Color) Opposite() Color {
	if c == Red {
		return Black
	}
	return Red
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Color(%d)", int8(c))
}

// Kind 棋子种类，走法按种类分派
type Kind int8

const (
	Chariot  Kind = iota // 车
	Horse                // 马
	Elephant             // 相 / 象
	Adviser              // 仕 / 士
	General              // 帅 / 将
	Cannon               // 炮
	Soldier              // 兵 / 卒

	numKinds
)

var kindNames = [numKinds]string{
	Chariot:  "chariot",
	Horse:    "horse",
	Elephant: "elephant",
	Adviser:  "adviser",
	General:  "general",
	Cannon:   "cannon",
	Soldier:  "soldier",
}

func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// Point 棋盘交叉点，X 为列 [0,8]，Y 为行 [0,9]，红方在 Y 小的一侧
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func (p Point) add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Piece 只由 Board 创建；被吃后 Captured 置位，不再复用
type Piece struct {
	ID       int
	Kind     Kind
	Color    Color
	Pos      Point
	Captured bool
}

func (pc *Piece) String() string {
	if pc == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s#%d@%s", pc.Color, pc.Kind, pc.ID, pc.Pos)
}

// Placement 是布局中的一个棋子
type Placement struct {
	Kind  Kind
	Color Color
	At    Point
}

// Layout 开局布局，由调用方提供
type Layout []Placement
