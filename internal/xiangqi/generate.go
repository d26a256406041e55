package xiangqi

// MovesFor 计算 from 处 kind/side 的候选落点。
// 不检查将军，没有可走时返回 nil。
func MovesFor(b *Board, kind Kind, from Point, side Color) []Point {
	if !OnBoard(from) {
		return nil
	}
	var moves []Point
	switch kind {
	case Chariot:
		genChariotMoves(b, from, side, &moves)
	case Horse:
		genHorseMoves(b, from, side, &moves)
	case Elephant:
		genElephantMoves(b, from, side, &moves)
	case Adviser:
		genAdviserMoves(b, from, side, &moves)
	case General:
		genGeneralMoves(b, from, side, &moves)
	case Cannon:
		genCannonMoves(b, from, side, &moves)
	case Soldier:
		genSoldierMoves(b, from, side, &moves)
	}
	return moves
}

// PieceMoves 按棋子当前位置计算走法
func PieceMoves(b *Board, pc *Piece) []Point {
	if pc == nil || pc.Captured {
		return nil
	}
	return MovesFor(b, pc.Kind, pc.Pos, pc.Color)
}
