package xiangqi

import (
	"fmt"
	"strings"
	"unicode"
)

var letterToKind = map[rune]Kind{
	'r': Chariot,  // 车
	'n': Horse,    // 马
	'b': Elephant, // 相
	'a': Adviser,  // 士
	'k': General,  // 将
	'c': Cannon,   // 炮
	'p': Soldier,  // 兵
}

var kindToLetter = [numKinds]rune{
	Chariot:  'r',
	Horse:    'n',
	Elephant: 'b',
	Adviser:  'a',
	General:  'k',
	Cannon:   'c',
	Soldier:  'p',
}

func pieceToChar(pc *Piece) rune {
	ch := kindToLetter[pc.Kind]
	if pc.Color == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// 简单 FEN：10 行用“/”隔开，第一行是 y=9；空位用数字压缩；空格后 w/b 表示谁走
func encode(b *Board, side Color) string {
	var sb strings.Builder
	for y := Ranks - 1; y >= 0; y-- {
		if y < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Files; x++ {
			pc := b.at(Point{X: x, Y: y})
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if side == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// Encode 当前局面的 FEN 串
func (g *Game) Encode() string {
	return encode(g.board, g.active)
}

// ParseLayout 解析 FEN 串；缺省走子方为红
func ParseLayout(fen string) (Layout, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 || len(parts) > 2 {
		return nil, Red, ErrInvalidLayout
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, Red, fmt.Errorf("%w: %d ranks", ErrInvalidLayout, len(rows))
	}

	var layout Layout
	for i, row := range rows {
		y := Ranks - 1 - i
		x := 0
		for _, ch := range row {
			if x >= Files {
				return nil, Red, fmt.Errorf("%w: rank %d too long", ErrInvalidLayout, y)
			}
			if ch >= '1' && ch <= '9' {
				x += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, Red, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidLayout, ch)
			}
			color := Black
			if unicode.IsUpper(ch) {
				color = Red
			}
			layout = append(layout, Placement{Kind: kind, Color: color, At: Point{X: x, Y: y}})
			x++
		}
		if x != Files {
			return nil, Red, fmt.Errorf("%w: rank %d has %d files", ErrInvalidLayout, y, x)
		}
	}

	side := Red
	if len(parts) == 2 {
		switch parts[1] {
		case "w", "r":
		case "b":
			side = Black
		default:
			return nil, Red, fmt.Errorf("%w: side %q", ErrInvalidLayout, parts[1])
		}
	}
	return layout, side, nil
}

// DecodeGame 从 FEN 串恢复对局（含走子方）
func DecodeGame(fen string) (*Game, error) {
	layout, side, err := ParseLayout(fen)
	if err != nil {
		return nil, err
	}
	b, err := NewBoard(layout)
	if err != nil {
		return nil, err
	}
	g := NewGame(b)
	if side != g.active {
		g.active = side
		g.Recompute()
	}
	return g, nil
}
