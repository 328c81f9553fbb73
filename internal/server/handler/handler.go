// Package handler 把入站消息分发到对应的房间操作。
package handler

import (
	"log"

	"github.com/SentaPua/domdrawguess/internal/game/room"
	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/server/storage"
	"github.com/SentaPua/domdrawguess/internal/types"
)

// Deps 处理器依赖
type Deps struct {
	Rooms       *room.Manager
	Leaderboard *storage.LeaderboardManager // 可为 nil（未启用 Redis）
}

// HandlerFunc 消息处理函数
type HandlerFunc func(deps *Deps, client types.ClientInterface, msg *protocol.Message)

// Registry 消息类型 → 处理函数
type Registry map[protocol.MessageType]HandlerFunc

// NewRegistry 构建默认的消息处理注册表
func NewRegistry() Registry {
	return Registry{
		protocol.MsgStroke:         handleStroke,
		protocol.MsgClear:          handleClear,
		protocol.MsgGuess:          handleGuess,
		protocol.MsgStart:          handleStart,
		protocol.MsgStartDrawing:   handleStartDrawing,
		protocol.MsgNextRound:      handleNextRound,
		protocol.MsgGetLeaderboard: handleGetLeaderboard,
	}
}

// Dispatch 分发消息；未知类型只记日志，不回错误
func (reg Registry) Dispatch(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	h, ok := reg[msg.Type]
	if !ok {
		log.Printf("⚠️ 玩家 %s 发来未知消息类型: %s", client.GetID(), msg.Type)
		return
	}
	h(deps, client, msg)
}

// clientRoom 定位发送者所在房间；不在任何房间时返回 nil
func clientRoom(deps *Deps, client types.ClientInterface) *room.Room {
	roomID := client.GetRoom()
	if roomID == "" {
		return nil
	}
	return deps.Rooms.Room(roomID)
}
