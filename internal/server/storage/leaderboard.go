// Package storage 实现基于 Redis 的跨房间排行榜。
//
// 排行榜是可选附加功能：房间与回合状态只存在于内存中，
// 这里只累计玩家的历史总分用于展示。
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// leaderboardKey 总分有序集合
	leaderboardKey = "leaderboard:score"
	// playerStatsKeyPrefix 玩家统计哈希键前缀
	playerStatsKeyPrefix = "player:stats:"

	opTimeout = 3 * time.Second
)

// PlayerStats 玩家累计统计
type PlayerStats struct {
	PlayerID     string    `json:"player_id"`
	Name         string    `json:"name"`
	TotalScore   int64     `json:"total_score"`
	CorrectCount int64     `json:"correct_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank     int
	PlayerID string
	Name     string
	Score    int64
}

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	rdb *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器并验证连通性
func NewLeaderboardManager(ctx context.Context, addr, password string, db int) (*LeaderboardManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	return &LeaderboardManager{rdb: rdb}, nil
}

// NewLeaderboardManagerWithClient 用现有客户端创建管理器（测试用）
func NewLeaderboardManagerWithClient(rdb *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{rdb: rdb}
}

// AddScore 累加玩家得分并更新其统计信息
func (m *LeaderboardManager) AddScore(ctx context.Context, playerID, name string, points int) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stats, err := m.GetPlayerStats(ctx, playerID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &PlayerStats{PlayerID: playerID}
	}

	stats.Name = name
	stats.TotalScore += int64(points)
	stats.CorrectCount++
	stats.UpdatedAt = time.Now()

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	pipe := m.rdb.TxPipeline()
	pipe.Set(ctx, playerStatsKeyPrefix+playerID, data, 0)
	pipe.ZIncrBy(ctx, leaderboardKey, float64(points), playerID)
	_, err = pipe.Exec(ctx)
	return err
}

// GetLeaderboard 返回总分前 limit 名的条目
func (m *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	members, err := m.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for i, member := range members {
		playerID, _ := member.Member.(string)
		entry := LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: playerID,
			Score:    int64(member.Score),
		}
		// 名字存在统计信息里，缺失时仅展示 ID
		if stats, err := m.GetPlayerStats(ctx, playerID); err == nil && stats != nil {
			entry.Name = stats.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetPlayerStats 返回玩家统计；不存在时返回 nil
func (m *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := m.rdb.Get(ctx, playerStatsKeyPrefix+playerID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Close 关闭 Redis 连接
func (m *LeaderboardManager) Close() error {
	return m.rdb.Close()
}
