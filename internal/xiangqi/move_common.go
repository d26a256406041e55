package xiangqi

var (
	orthoDirs = [4][2]int{{+1, 0}, {-1, 0}, {0, +1}, {0, -1}}
	diagDirs  = [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}
)

// 空位或敌子都可落
func canLand(b *Board, to Point, side Color) bool {
	dst := b.at(to)
	return dst == nil || dst.Color != side
}

// 车：横竖随便走，遇子即停，敌子可吃
func genChariotMoves(b *Board, from Point, side Color, moves *[]Point) {
	for _, d := range orthoDirs {
		for to := from.add(d[0], d[1]); OnBoard(to); to = to.add(d[0], d[1]) {
			pc := b.at(to)
			if pc == nil {
				*moves = append(*moves, to)
				continue
			}
			if pc.Color != side {
				*moves = append(*moves, to)
			}
			break
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(b *Board, from Point, side Color, moves *[]Point) {
	for _, d := range orthoDirs {
		to := from.add(d[0], d[1])

		// 走子阶段：直到第一个棋子（炮架）
		for OnBoard(to) {
			if b.at(to) != nil {
				to = to.add(d[0], d[1])
				break
			}
			*moves = append(*moves, to)
			to = to.add(d[0], d[1])
		}

		// 吃子阶段：越过炮架，遇到第一子，敌子可吃，然后停
		for ; OnBoard(to); to = to.add(d[0], d[1]) {
			pc := b.at(to)
			if pc == nil {
				continue
			}
			if pc.Color != side {
				*moves = append(*moves, to)
			}
			break
		}
	}
}

// 相：田字，塞象眼不能走；不限过河
func genElephantMoves(b *Board, from Point, side Color, moves *[]Point) {
	for _, d := range diagDirs {
		to := from.add(2*d[0], 2*d[1])
		if !OnBoard(to) {
			continue
		}
		if b.at(from.add(d[0], d[1])) != nil {
			continue
		}
		if canLand(b, to, side) {
			*moves = append(*moves, to)
		}
	}
}

// 士：九宫内斜走一格
func genAdviserMoves(b *Board, from Point, side Color, moves *[]Point) {
	for _, d := range diagDirs {
		to := from.add(d[0], d[1])
		if !inPalace(side, to) {
			continue
		}
		if canLand(b, to, side) {
			*moves = append(*moves, to)
		}
	}
}

// 将：九宫内上下左右一格（不处理照面与将军）
func genGeneralMoves(b *Board, from Point, side Color, moves *[]Point) {
	for _, d := range orthoDirs {
		to := from.add(d[0], d[1])
		if !inPalace(side, to) {
			continue
		}
		if canLand(b, to, side) {
			*moves = append(*moves, to)
		}
	}
}
