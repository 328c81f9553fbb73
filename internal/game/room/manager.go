package room

import (
	"log"
	"sync"

	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/types"
)

// Manager 房间注册表。
// 房间在第一个连接到达时创建，在玩家清空的瞬间销毁；
// 成员变更（加入、离开、销毁判定）全部在注册表锁内完成，
// 销毁不会与并发加入交错。房间内部状态只能经由 *Room 方法访问。
type Manager struct {
	mu        sync.RWMutex
	rooms     map[string]*Room
	roundTime int // 每回合时长（秒）
	words     WordSource
}

// NewManager 创建房间注册表
func NewManager(roundTime int, words WordSource) *Manager {
	return &Manager{
		rooms:     make(map[string]*Room),
		roundTime: roundTime,
		words:     words,
	}
}

// Join 注册连接：房间不存在时创建，加入玩家（初始 0 分），
// 给新连接发送 joined 快照并向其余连接广播 player_joined。
func (m *Manager) Join(roomID string, client types.ClientInterface) *Room {
	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		r = newRoom(roomID, m.roundTime, m.words)
		m.rooms[roomID] = r
		log.Printf("🏠 房间 %s 已创建", roomID)
	}
	r.addPlayer(client)
	client.SetRoom(roomID)
	m.mu.Unlock()

	log.Printf("👤 玩家 %s (%s) 加入房间 %s", client.GetName(), client.GetID(), roomID)
	return r
}

// Leave 注销连接：从所在房间移除玩家，房间清空时销毁房间。
// 优雅断开与异常断开都走这一条清理路径。
func (m *Manager) Leave(client types.ClientInterface) {
	roomID := client.GetRoom()
	if roomID == "" {
		return
	}

	m.mu.Lock()
	r, ok := m.rooms[roomID]
	if !ok {
		m.mu.Unlock()
		return
	}

	// 清空判定与注销同在注册表锁内，期间不可能有新玩家加入
	empty := r.removePlayer(client.GetID())
	if empty {
		delete(m.rooms, roomID)
	}
	m.mu.Unlock()

	client.SetRoom("")
	log.Printf("👋 玩家 %s (%s) 离开房间 %s", client.GetName(), client.GetID(), roomID)
	if empty {
		log.Printf("🏠 房间 %s 已清空，销毁", roomID)
	}
}

// Room 获取房间；不存在时返回 nil
func (m *Manager) Room(roomID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[roomID]
}

// RoomCount 返回当前房间数
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// addPlayer 加入玩家并发送加入快照
func (r *Room) addPlayer(client types.ClientInterface) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := client.GetID()
	if _, ok := r.players[id]; !ok {
		r.players[id] = &Player{Client: client}
		r.playerOrder = append(r.playerOrder, id)
	}

	players := r.playersInfoLocked()
	scores := r.scoresLocked()

	// 新连接拿到完整快照：名单、分数、回合标志与笔画回放，但不含词
	r.sendToLocked(id, protocol.MustNewMessage(protocol.MsgJoined, protocol.JoinedPayload{
		PlayerID:  id,
		RoomID:    r.ID,
		Players:   players,
		Scores:    scores,
		Started:   r.started,
		DrawerID:  r.currentDrawerIDLocked(),
		Strokes:   r.strokesLocked(),
		RoundTime: r.roundTime,
	}))

	r.broadcastExceptLocked(id, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		PlayerID: id,
		Name:     client.GetName(),
		Players:  players,
		Scores:   scores,
	}))
}

// removePlayer 移除玩家并修剪其分数条目；返回房间是否已清空。
// 若离开者是进行中回合的画手且房间还有人，立即轮换到下一回合。
func (r *Room) removePlayer(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return len(r.playerOrder) == 0
	}

	delete(r.players, playerID)
	for i, id := range r.playerOrder {
		if id == playerID {
			r.playerOrder = append(r.playerOrder[:i], r.playerOrder[i+1:]...)
			break
		}
	}

	if len(r.playerOrder) == 0 {
		r.cancelHintLocked()
		return true
	}

	// drawerIndex 始终保持在合法区间
	r.drawerIndex %= len(r.playerOrder)

	r.broadcastLocked(protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		PlayerID: playerID,
		Players:  r.playersInfoLocked(),
		Scores:   r.scoresLocked(),
	}))

	// 画手中途离开时不保留指向缺席玩家的 drawerId/word，
	// 直接按加入顺序轮换到下一位（移除后 drawerIndex 已指向后继者）
	if playerID == r.drawerID && r.word != "" {
		r.beginRoundLocked()
	}

	return false
}
