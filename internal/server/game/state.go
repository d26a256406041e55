package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

// GameState 一局棋；引擎本身不是并发安全的，所有访问都要持有 mu
type GameState struct {
	mu        sync.Mutex
	ID        string
	Game      *xiangqi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot 在锁内读取当前局面
func (g *GameState) Snapshot(fn func(*xiangqi.Game)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.Game)
}
