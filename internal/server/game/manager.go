package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

// StandardFEN 标准开局，红方在下（y=0..4）
const StandardFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

var ErrGameNotFound = errors.New("game not found")

// StandardLayout 标准开局布局：每方帅、仕、相、马、车、炮各二（帅一）、兵五
func StandardLayout() xiangqi.Layout {
	layout, _, err := xiangqi.ParseLayout(StandardFEN)
	if err != nil {
		panic("standard layout: " + err.Error())
	}
	return layout
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 按标准开局新建一局
func (m *Manager) NewGame() (*GameState, error) {
	return m.NewGameFrom(StandardFEN)
}

// NewGameFrom 从 FEN 串新建一局（调试和残局练习用）
func (m *Manager) NewGameFrom(fen string) (*GameState, error) {
	g, err := xiangqi.DecodeGame(fen)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	gs := &GameState{
		ID:        id,
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = gs
	log.Printf("game %s created, %s to move", id, g.ActiveColor())
	return gs, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Play 在对局 id 上走 from->to，返回被吃的子（可能为 nil）。
// after 非空时在同一把锁内读取走完后的局面，中间不会插进别的着法。
func (m *Manager) Play(id string, from, to xiangqi.Point, after func(g *xiangqi.Game, captured *xiangqi.Piece)) (*xiangqi.Piece, error) {
	gs, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()

	captured, err := gs.Game.CommitAt(from, to)
	if err != nil {
		return nil, err
	}
	gs.UpdatedAt = time.Now()
	if captured != nil {
		log.Printf("game %s: %s captured on %s", id, captured.Kind, to)
	}
	if after != nil {
		after(gs.Game, captured)
	}
	return captured, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
