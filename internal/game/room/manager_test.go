package room

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentaPua/domdrawguess/internal/testutil"
)

func TestManager_ConcurrentJoinLeave(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	// Hammer the same room id with interleaved join/leave pairs:
	// destroy-on-empty must never discard a room a concurrent join landed in
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := testutil.NewSimpleClient(fmt.Sprintf("p%d", i), fmt.Sprintf("player%d", i))
			r := m.Join("lobby", c)
			assert.Same(t, r, m.Room("lobby"))
			m.Leave(c)
		}(i)
	}
	wg.Wait()

	// Everyone left, so the room is gone
	assert.Nil(t, m.Room("lobby"))
	assert.Zero(t, m.RoomCount())

	// A fresh join lands in the registered room, not an orphan
	c := testutil.NewSimpleClient("fresh-id", "fresh")
	r := m.Join("lobby", c)
	require.NotNil(t, r)
	assert.Same(t, r, m.Room("lobby"))
	assert.Equal(t, 1, r.PlayerCount())
	assert.Equal(t, "lobby", c.GetRoom())
}

func TestManager_LeaveThenRejoin(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	a := testutil.NewSimpleClient("a-id", "a")
	m.Join("lobby", a)
	m.Leave(a)

	// Rejoin after dissolve must reach the room the registry serves
	b := testutil.NewSimpleClient("b-id", "b")
	r := m.Join("lobby", b)
	assert.Same(t, r, m.Room("lobby"))
	assert.Equal(t, 1, r.PlayerCount())

	// Leaving twice is harmless
	m.Leave(a)
	assert.Equal(t, 1, m.RoomCount())
}
