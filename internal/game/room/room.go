// Package room 实现房间注册表与回合状态机。
//
// 每个房间的全部可变状态收在 Room 一个结构里，只能经由 Manager/Room 的
// 方法访问；每次状态转换都是一段完整持锁的检查加变更，提示定时器在
// 任何会替换 word 的转换前被取消。
package room

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/types"
)

// WordSource 词来源
type WordSource interface {
	Random() string
}

// Player 房间中的玩家
type Player struct {
	Client types.ClientInterface
	Score  int
}

// Room 游戏房间
type Room struct {
	ID string

	mu          sync.Mutex
	players     map[string]*Player
	playerOrder []string // 加入顺序，画手按此轮换
	words       WordSource

	// 回合字段，均由 beginRoundLocked 重置
	started        bool
	drawerIndex    int
	drawerID       string
	word           string // 为空表示没有进行中的回合
	strokes        []json.RawMessage
	revealed       map[int]struct{}    // 本回合已揭示的字母下标
	correct        map[string]struct{} // 本回合已猜对的玩家
	drawingStarted bool
	roundTime      int // 秒

	hintCancel   context.CancelFunc
	hintInterval time.Duration // 非零时覆盖计算值（测试用）
}

func newRoom(id string, roundTime int, words WordSource) *Room {
	return &Room{
		ID:        id,
		players:   make(map[string]*Player),
		words:     words,
		roundTime: roundTime,
		revealed:  make(map[int]struct{}),
		correct:   make(map[string]struct{}),
	}
}

// PlayerCount 返回当前玩家数
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.playerOrder)
}

// Started 返回房间是否已开始过第一回合
func (r *Room) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// RoundTime 返回每回合时长（秒）
func (r *Room) RoundTime() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roundTime
}

// --- 持锁快照辅助 ---

// playersInfoLocked 按加入顺序构建玩家列表
func (r *Room) playersInfoLocked() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.playerOrder))
	for _, id := range r.playerOrder {
		p := r.players[id]
		infos = append(infos, protocol.PlayerInfo{
			ID:    id,
			Name:  p.Client.GetName(),
			Score: p.Score,
		})
	}
	return infos
}

// scoresLocked 构建玩家 ID → 分数映射
func (r *Room) scoresLocked() map[string]int {
	scores := make(map[string]int, len(r.players))
	for id, p := range r.players {
		scores[id] = p.Score
	}
	return scores
}

// currentDrawerIDLocked 按 drawerIndex 取当前画手；房间为空时返回空串
func (r *Room) currentDrawerIDLocked() string {
	if len(r.playerOrder) == 0 {
		return ""
	}
	return r.playerOrder[r.drawerIndex%len(r.playerOrder)]
}

// strokesLocked 返回笔画历史的浅拷贝（用于回放给新连接）
func (r *Room) strokesLocked() []json.RawMessage {
	out := make([]json.RawMessage, len(r.strokes))
	copy(out, r.strokes)
	return out
}
