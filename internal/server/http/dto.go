package httpserver

import "xiangqi/internal/xiangqi"

// 前端用的招法结构
type MoveDTO struct {
	From xiangqi.Point `json:"from"`
	To   xiangqi.Point `json:"to"`
}

// PieceDTO 前端画子、判断能否拖动、高亮落点用
type PieceDTO struct {
	ID      int             `json:"id"`
	Kind    string          `json:"kind"`
	Color   int             `json:"color"` // 0=红, 1=黑
	Pos     xiangqi.Point   `json:"pos"`
	Movable bool            `json:"movable"`
	Moves   []xiangqi.Point `json:"moves,omitempty"`
}

// NewGameRequest Position 为空时用标准开局
type NewGameRequest struct {
	Position string `json:"position"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	GameID     string     `json:"game_id"`
	Position   string     `json:"position"` // FEN 字符串
	ToMove     int        `json:"to_move"`  // 0=红(w),1=黑(b)
	TurnText   string     `json:"turn_text"`
	Pieces     []PieceDTO `json:"pieces"`
	LegalMoves []MoveDTO  `json:"legal_moves"` // 当前所有可走棋
	Status     string     `json:"status"`      // 没有终局判定，恒为 "ongoing"
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type PlayResponse struct {
	StateResponse
	Captured *PieceDTO `json:"captured,omitempty"`
}

// MovesResponse 单个棋子的可走点，拖子时高亮
type MovesResponse struct {
	Piece PieceDTO        `json:"piece"`
	Moves []xiangqi.Point `json:"moves"`
}

func sideToInt(s xiangqi.Color) int {
	if s == xiangqi.Black {
		return 1
	}
	return 0
}

func pieceToDTO(g *xiangqi.Game, pc *xiangqi.Piece) PieceDTO {
	return PieceDTO{
		ID:      pc.ID,
		Kind:    pc.Kind.String(),
		Color:   sideToInt(pc.Color),
		Pos:     pc.Pos,
		Movable: g.Movable(pc),
		Moves:   g.LegalMoves(pc),
	}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = MoveDTO{From: m.Piece.Pos, To: m.To}
	}
	return out
}

func stateOf(id string, g *xiangqi.Game) StateResponse {
	pieces := g.Board().Pieces()
	dtos := make([]PieceDTO, len(pieces))
	for i, pc := range pieces {
		dtos[i] = pieceToDTO(g, pc)
	}
	return StateResponse{
		GameID:     id,
		Position:   g.Encode(),
		ToMove:     sideToInt(g.ActiveColor()),
		TurnText:   g.TurnText(),
		Pieces:     dtos,
		LegalMoves: movesToDTO(g.AllMoves()),
		Status:     "ongoing",
	}
}
