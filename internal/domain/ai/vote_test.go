package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/ai"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
	"github.com/andrescamacho/starfront-go/internal/testutil"
)

func members(t *testing.T, w *world.World, n int) []*ship.Ship {
	t.Helper()
	orbit := testutil.Orbital(t, w.Galaxy(), testutil.SolCoord, 1)
	out := make([]*ship.Ship, n)
	for i := range out {
		out[i] = testutil.AddShip(t, w, string(rune('A'+i)), orbit)
		out[i].SetFaction(testutil.Federation)
	}
	return out
}

func TestPreference(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	g := w.Galaxy()
	voter := testutil.AddShipAs(t, w, "Voter", ship.ControllerAI, ship.Miner, testutil.Orbital(t, g, testutil.SolCoord, 1))
	twin := testutil.AddShipAs(t, w, "Twin", ship.ControllerAI, ship.Miner, testutil.Orbital(t, g, testutil.SolCoord, 3))
	neighbour := testutil.AddShipAs(t, w, "Neighbour", ship.ControllerAI, ship.Trader, testutil.Interstellar(t, g, 3, 3))
	stranger := testutil.AddShipAs(t, w, "Stranger", ship.ControllerAI, ship.Fighter, testutil.Interstellar(t, g, 4, 4))
	stranger.ChangeCredits(100)

	assert.Equal(t, 4, ai.Preference(voter, twin))
	assert.Equal(t, 1, ai.Preference(voter, neighbour))
	assert.Equal(t, 1, ai.Preference(voter, stranger))
	assert.Equal(t, 0, ai.Preference(stranger, voter))
}

func TestVote_TiesKeepTheEarliestCandidate(t *testing.T) {
	// Arrange
	w := testutil.NewWorld(t, nil)
	m := members(t, w, 3)

	// Act
	choice, ok := ai.Vote(m[2], m)

	// Assert
	require.True(t, ok)
	assert.Equal(t, m[0].ID(), choice.ID())
}

func TestVote_NeverForSelf(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	m := members(t, w, 1)

	_, ok := ai.Vote(m[0], m)

	assert.False(t, ok)
}

func TestElect_PluralityWins(t *testing.T) {
	// Arrange: B is worth the most, so everyone but B prefers B
	w := testutil.NewWorld(t, nil)
	m := members(t, w, 3)
	m[1].ChangeCredits(1000)

	// Act
	res, ok := ai.Elect(w, testutil.Federation)

	// Assert
	require.True(t, ok)
	assert.Equal(t, m[1].ID(), res.Leader)
	assert.Equal(t, map[shared.ShipID]int{m[0].ID(): 1, m[1].ID(): 2}, res.Votes)
	leader, ok := w.Factions().Leader(testutil.Federation)
	assert.True(t, ok)
	assert.Equal(t, m[1].ID(), leader)
}

func TestElect_TieGoesToEarliestMember(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	m := members(t, w, 2)

	res, ok := ai.Elect(w, testutil.Federation)

	require.True(t, ok)
	assert.Equal(t, m[0].ID(), res.Leader)
}

func TestElect_EmptyFactionHasNoLeader(t *testing.T) {
	w := testutil.NewWorld(t, nil)
	require.NoError(t, w.Factions().SetLeader(testutil.Syndicate, 9))

	_, ok := ai.Elect(w, testutil.Syndicate)

	assert.False(t, ok)
	_, hasLeader := w.Factions().Leader(testutil.Syndicate)
	assert.False(t, hasLeader)
}
