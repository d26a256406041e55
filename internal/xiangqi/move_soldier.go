package xiangqi

// 兵：前进一格；过河后可左右一格；永不后退
func genSoldierMoves(b *Board, from Point, side Color, moves *[]Point) {
	if to := from.add(0, forward(side)); OnBoard(to) && canLand(b, to, side) {
		*moves = append(*moves, to)
	}
	if !crossedRiver(side, from) {
		return
	}
	for _, dx := range []int{-1, +1} {
		to := from.add(dx, 0)
		if OnBoard(to) && canLand(b, to, side) {
			*moves = append(*moves, to)
		}
	}
}
