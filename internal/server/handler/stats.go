package handler

import (
	"context"
	"log"

	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/types"
)

const defaultLeaderboardLimit = 10

func handleGetLeaderboard(deps *Deps, client types.ClientInterface, msg *protocol.Message) {
	if deps.Leaderboard == nil {
		// 未启用 Redis 时返回空榜，客户端无需区分
		client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboard, protocol.LeaderboardPayload{
			Entries: []protocol.LeaderboardEntry{},
		}))
		return
	}

	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		log.Printf("⚠️ 解析排行榜请求失败: %v", err)
		return
	}

	limit := payload.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	entries, err := deps.Leaderboard.GetLeaderboard(context.Background(), limit)
	if err != nil {
		log.Printf("⚠️ 查询排行榜失败: %v", err)
		return
	}

	out := make([]protocol.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, protocol.LeaderboardEntry{
			Rank:     e.Rank,
			PlayerID: e.PlayerID,
			Name:     e.Name,
			Score:    int(e.Score),
		})
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboard, protocol.LeaderboardPayload{
		Entries: out,
	}))
}
