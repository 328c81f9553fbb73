package room

import (
	"github.com/SentaPua/domdrawguess/internal/protocol"
)

// 投递是尽力而为的：SendMessage 内部吞掉单个连接的发送失败，
// 不会中断对其余接收者的投递，也不会传播回状态转换。

// broadcastLocked 广播消息给房间内所有连接
func (r *Room) broadcastLocked(msg *protocol.Message) {
	for _, id := range r.playerOrder {
		r.players[id].Client.SendMessage(msg)
	}
}

// broadcastExceptLocked 广播消息给除指定玩家外的所有连接
func (r *Room) broadcastExceptLocked(excludeID string, msg *protocol.Message) {
	for _, id := range r.playerOrder {
		if id == excludeID {
			continue
		}
		r.players[id].Client.SendMessage(msg)
	}
}

// broadcastToGuessersLocked 广播消息给画手以外的所有连接
func (r *Room) broadcastToGuessersLocked(drawerID string, msg *protocol.Message) {
	r.broadcastExceptLocked(drawerID, msg)
}

// sendToLocked 发送消息给单个玩家
func (r *Room) sendToLocked(playerID string, msg *protocol.Message) {
	if p, ok := r.players[playerID]; ok {
		p.Client.SendMessage(msg)
	}
}
