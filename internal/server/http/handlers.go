package httpserver

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 挂在 /api 下的对局接口
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) Register(r fiber.Router) {
	r.Post("/new_game", h.handleNewGame)
	r.Post("/state", h.handleState)
	r.Post("/play", h.handlePlay)
	r.Get("/games/:id/moves", h.handleMoves)
}

func (h *Handler) handleNewGame(c *fiber.Ctx) error {
	var req NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.NewError(fiber.StatusBadRequest, "bad json"))
		}
	}

	var (
		gs  *game.GameState
		err error
	)
	if req.Position == "" {
		gs, err = h.games.NewGame()
	} else {
		gs, err = h.games.NewGameFrom(req.Position)
	}
	if err != nil {
		return writeError(c, err)
	}

	var resp StateResponse
	gs.Snapshot(func(g *xiangqi.Game) { resp = stateOf(gs.ID, g) })
	return c.JSON(resp)
}

func (h *Handler) handleState(c *fiber.Ctx) error {
	var req StateRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.NewError(fiber.StatusBadRequest, "bad json"))
	}
	gs, err := h.games.Get(req.GameID)
	if err != nil {
		return writeError(c, err)
	}

	var resp StateResponse
	gs.Snapshot(func(g *xiangqi.Game) { resp = stateOf(gs.ID, g) })
	return c.JSON(resp)
}

func (h *Handler) handlePlay(c *fiber.Ctx) error {
	var req PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.NewError(fiber.StatusBadRequest, "bad json"))
	}

	var resp PlayResponse
	_, err := h.games.Play(req.GameID, req.Move.From, req.Move.To, func(g *xiangqi.Game, captured *xiangqi.Piece) {
		resp.StateResponse = stateOf(req.GameID, g)
		if captured != nil {
			dto := pieceToDTO(g, captured)
			resp.Captured = &dto
		}
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *Handler) handleMoves(c *fiber.Ctx) error {
	gs, err := h.games.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	at := xiangqi.Point{X: c.QueryInt("x", -1), Y: c.QueryInt("y", -1)}

	var (
		resp MovesResponse
		pc   *xiangqi.Piece
	)
	gs.Snapshot(func(g *xiangqi.Game) {
		pc, err = g.Board().At(at)
		if err != nil || pc == nil {
			return
		}
		resp.Piece = pieceToDTO(g, pc)
		resp.Moves = g.LegalMoves(pc)
	})
	if err != nil {
		return writeError(c, err)
	}
	if pc == nil {
		return writeError(c, fiber.NewError(fiber.StatusNotFound, "no piece at "+at.String()))
	}
	if resp.Moves == nil {
		resp.Moves = []xiangqi.Point{}
	}
	return c.JSON(resp)
}

func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.Is(err, game.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, xiangqi.ErrIllegalMove),
		errors.Is(err, xiangqi.ErrOutOfRange),
		errors.Is(err, xiangqi.ErrInvalidLayout),
		errors.Is(err, xiangqi.ErrOccupied):
		status = fiber.StatusBadRequest
	}
	if status >= fiber.StatusInternalServerError {
		log.Printf("api %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
