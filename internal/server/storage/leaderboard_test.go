package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *LeaderboardManager {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLeaderboardManagerWithClient(rdb)
}

func TestLeaderboard_AddScoreAccumulates(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddScore(ctx, "p1", "alice", 100))
	require.NoError(t, m.AddScore(ctx, "p1", "alice", 75))

	stats, err := m.GetPlayerStats(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, "alice", stats.Name)
	assert.EqualValues(t, 175, stats.TotalScore)
	assert.EqualValues(t, 2, stats.CorrectCount)
}

func TestLeaderboard_Ranking(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddScore(ctx, "p1", "alice", 50))
	require.NoError(t, m.AddScore(ctx, "p2", "bob", 100))
	require.NoError(t, m.AddScore(ctx, "p3", "carol", 75))

	entries, err := m.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "bob", entries[0].Name)
	assert.EqualValues(t, 100, entries[0].Score)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "carol", entries[1].Name)
}

func TestLeaderboard_UnknownPlayer(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	stats, err := m.GetPlayerStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestLeaderboard_EmptyBoard(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	entries, err := m.GetLeaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
