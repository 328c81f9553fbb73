package handler

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/server/storage"
	"github.com/SentaPua/domdrawguess/internal/testutil"
)

func TestGetLeaderboard_ReturnsRankedEntries(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	deps := newTestDeps()
	deps.Leaderboard = storage.NewLeaderboardManagerWithClient(rdb)

	ctx := context.Background()
	require.NoError(t, deps.Leaderboard.AddScore(ctx, "p1", "alice", 50))
	require.NoError(t, deps.Leaderboard.AddScore(ctx, "p2", "bob", 100))

	reg := NewRegistry()
	c := testutil.NewSimpleClient("p1", "alice")
	deps.Rooms.Join("lobby", c)

	reg.Dispatch(deps, c, decode(t, `{"type":"get_leaderboard","limit":5}`))

	msgs := c.MessagesOfType(protocol.MsgLeaderboard)
	require.Len(t, msgs, 1)
	p, err := protocol.ParsePayload[protocol.LeaderboardPayload](msgs[0])
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)
	assert.Equal(t, "bob", p.Entries[0].Name)
	assert.Equal(t, 100, p.Entries[0].Score)
	assert.Equal(t, 2, p.Entries[1].Rank)
}
