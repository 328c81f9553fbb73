package handler

import (
	"context"
	"log"

	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/types"
)

// 非法状态转换按协议约定静默拒绝：房间方法返回的错误只进日志。

func handleStroke(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	r := clientRoom(deps, client)
	if r == nil {
		return
	}

	payload, err := protocol.ParsePayload[protocol.StrokePayload](msg)
	if err != nil {
		log.Printf("⚠️ 解析笔画失败: %v", err)
		return
	}

	r.AddStroke(client.GetID(), payload.Stroke)
}

func handleClear(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	r := clientRoom(deps, client)
	if r == nil {
		return
	}

	r.ClearStrokes(client.GetID())
}

func handleGuess(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	r := clientRoom(deps, client)
	if r == nil {
		return
	}

	payload, err := protocol.ParsePayload[protocol.GuessPayload](msg)
	if err != nil {
		log.Printf("⚠️ 解析猜词失败: %v", err)
		return
	}

	result := r.SubmitGuess(client.GetID(), payload.Guess)
	if result == nil {
		return
	}

	log.Printf("✅ 玩家 %s 第 %d 个猜对，+%d 分", result.Name, result.Rank, result.Points)

	if deps.Leaderboard != nil {
		// 排行榜写入不挡住游戏主流程
		go func() {
			ctx := context.Background()
			if err := deps.Leaderboard.AddScore(ctx, result.PlayerID, result.Name, result.Points); err != nil {
				log.Printf("⚠️ 更新排行榜失败: %v", err)
			}
		}()
	}
}

func handleStart(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	r := clientRoom(deps, client)
	if r == nil {
		return
	}

	if err := r.StartRound(); err != nil {
		log.Printf("⚠️ 玩家 %s 开始游戏被拒: %v", client.GetID(), err)
		return
	}

	log.Printf("🚀 房间 %s 第一回合开始", r.ID)
}

func handleStartDrawing(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	r := clientRoom(deps, client)
	if r == nil {
		return
	}

	if err := r.StartDrawing(client.GetID()); err != nil {
		log.Printf("⚠️ 玩家 %s 开始作画被拒: %v", client.GetID(), err)
		return
	}

	log.Printf("🚀 房间 %s 作画开始", r.ID)
}

func handleNextRound(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	r := clientRoom(deps, client)
	if r == nil {
		return
	}

	if err := r.NextRound(); err != nil {
		log.Printf("⚠️ 玩家 %s 请求下一回合被拒: %v", client.GetID(), err)
		return
	}

	log.Printf("🚀 房间 %s 进入下一回合", r.ID)
}
