package xiangqi

// 马 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dx, Dy int // 终点
	Lx, Ly int // 马腿
}{
	{+2, +1, +1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{-2, -1, -1, 0},
	{+1, +2, 0, +1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{-1, -2, 0, -1},
}

func genHorseMoves(b *Board, from Point, side Color, moves *[]Point) {
	for _, m := range horseLegMoves {
		to := from.add(m.Dx, m.Dy)
		if !OnBoard(to) {
			continue
		}
		// 马腿上有子，不论颜色都走不了
		if b.at(from.add(m.Lx, m.Ly)) != nil {
			continue
		}
		if canLand(b, to, side) {
			*moves = append(*moves, to)
		}
	}
}
