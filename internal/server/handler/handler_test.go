package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentaPua/domdrawguess/internal/game/room"
	"github.com/SentaPua/domdrawguess/internal/game/words"
	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/testutil"
)

func newTestDeps() *Deps {
	return &Deps{
		Rooms: room.NewManager(80, words.NewList([]string{"cat"})),
	}
}

func decode(t *testing.T, raw string) *protocol.Message {
	t.Helper()
	msg, err := protocol.Decode([]byte(raw))
	require.NoError(t, err)
	return msg
}

func TestDispatch_UnknownTypeIgnored(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	reg := NewRegistry()
	c := testutil.NewSimpleClient("p1", "alice")
	deps.Rooms.Join("lobby", c)
	c.Reset()

	reg.Dispatch(deps, c, decode(t, `{"type":"bogus"}`))

	// Nothing comes back on unknown types
	assert.Empty(t, c.Messages())
}

func TestDispatch_GuessFlow(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	reg := NewRegistry()

	drawer := testutil.NewSimpleClient("p1", "alice")
	guesser := testutil.NewSimpleClient("p2", "bob")
	deps.Rooms.Join("lobby", drawer)
	deps.Rooms.Join("lobby", guesser)

	reg.Dispatch(deps, drawer, decode(t, `{"type":"start"}`))
	reg.Dispatch(deps, drawer, decode(t, `{"type":"start_drawing"}`))
	reg.Dispatch(deps, guesser, decode(t, `{"type":"guess","guess":"cat"}`))

	correct := guesser.MessagesOfType(protocol.MsgCorrect)
	require.Len(t, correct, 1)
	p, err := protocol.ParsePayload[protocol.CorrectPayload](correct[0])
	require.NoError(t, err)
	assert.Equal(t, "p2", p.PlayerID)
	assert.Equal(t, 100, p.Points)
}

func TestDispatch_StrokeForwarding(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	reg := NewRegistry()

	a := testutil.NewSimpleClient("p1", "alice")
	b := testutil.NewSimpleClient("p2", "bob")
	deps.Rooms.Join("lobby", a)
	deps.Rooms.Join("lobby", b)

	reg.Dispatch(deps, a, decode(t, `{"type":"stroke","stroke":{"points":[[0,0],[1,1]]}}`))

	assert.Empty(t, a.MessagesOfType(protocol.MsgStroke))
	require.Len(t, b.MessagesOfType(protocol.MsgStroke), 1)

	// Clear reaches the whole room, sender included
	reg.Dispatch(deps, b, decode(t, `{"type":"clear"}`))
	require.Len(t, a.MessagesOfType(protocol.MsgClear), 1)
	require.Len(t, b.MessagesOfType(protocol.MsgClear), 1)
}

func TestDispatch_RejectedTransitionIsSilent(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	reg := NewRegistry()

	c := testutil.NewSimpleClient("p1", "alice")
	deps.Rooms.Join("lobby", c)
	c.Reset()

	// start_drawing with no active word is refused without any reply
	reg.Dispatch(deps, c, decode(t, `{"type":"start_drawing"}`))
	assert.Empty(t, c.Messages())

	// start twice: second refusal is silent too
	reg.Dispatch(deps, c, decode(t, `{"type":"start"}`))
	n := len(c.Messages())
	reg.Dispatch(deps, c, decode(t, `{"type":"start"}`))
	assert.Len(t, c.Messages(), n)
}

func TestDispatch_ClientWithoutRoom(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	reg := NewRegistry()
	c := testutil.NewSimpleClient("p1", "alice")

	// No room assigned: every game message is a no-op
	reg.Dispatch(deps, c, decode(t, `{"type":"guess","guess":"cat"}`))
	reg.Dispatch(deps, c, decode(t, `{"type":"start"}`))
	assert.Empty(t, c.Messages())
}

func TestGetLeaderboard_DisabledReturnsEmpty(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	reg := NewRegistry()
	c := testutil.NewSimpleClient("p1", "alice")
	deps.Rooms.Join("lobby", c)

	reg.Dispatch(deps, c, decode(t, `{"type":"get_leaderboard"}`))

	msgs := c.MessagesOfType(protocol.MsgLeaderboard)
	require.Len(t, msgs, 1)
	p, err := protocol.ParsePayload[protocol.LeaderboardPayload](msgs[0])
	require.NoError(t, err)
	assert.Empty(t, p.Entries)
}
