package faction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/domain/faction"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

const (
	fed   shared.FactionID = "federation"
	synd  shared.FactionID = "syndicate"
	guild shared.FactionID = "guild"
)

func newRegistry(t *testing.T) *faction.Registry {
	t.Helper()
	r := faction.NewRegistry()
	for _, id := range []shared.FactionID{fed, synd, guild} {
		_, err := r.Add(id, string(id))
		require.NoError(t, err)
	}
	return r
}

func TestRegistry_AddRejectsDuplicates(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Add(fed, "again")
	assert.Error(t, err)
	_, err = r.Add("", "nobody")
	assert.Error(t, err)
	assert.Equal(t, []shared.FactionID{fed, synd, guild}, r.IDs())
}

func TestRegistry_RelationshipsAreSymmetric(t *testing.T) {
	r := newRegistry(t)

	require.NoError(t, r.SetRelationship(synd, fed, faction.War))

	assert.True(t, r.AtWar(fed, synd))
	assert.True(t, r.AtWar(synd, fed))
	assert.Equal(t, faction.Peace, r.Relationship(fed, guild))
	assert.Equal(t, faction.Alliance, r.Relationship(fed, fed))
	assert.False(t, r.AtWar("", synd))
	assert.Error(t, r.SetRelationship(fed, fed, faction.War))
	assert.Error(t, r.SetRelationship(fed, "pirates", faction.War))
}

func TestRegistry_Leader(t *testing.T) {
	r := newRegistry(t)

	_, ok := r.Leader(fed)
	assert.False(t, ok)

	require.NoError(t, r.SetLeader(fed, 4))
	leader, ok := r.Leader(fed)
	assert.True(t, ok)
	assert.Equal(t, shared.ShipID(4), leader)

	require.NoError(t, r.SetLeader(fed, 0))
	_, ok = r.Leader(fed)
	assert.False(t, ok)
	assert.Error(t, r.SetLeader("pirates", 1))
}

func TestRegistry_StepDown(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.SetLeader(fed, 4))

	assert.False(t, r.StepDown(fed, 5), "only the leader can step down")
	assert.False(t, r.StepDown("pirates", 4))
	assert.True(t, r.StepDown(fed, 4))

	_, ok := r.Leader(fed)
	assert.False(t, ok)
}

func TestParseRelationship(t *testing.T) {
	rel, err := faction.ParseRelationship("war")
	require.NoError(t, err)
	assert.Equal(t, faction.War, rel)

	_, err = faction.ParseRelationship("feud")
	assert.Error(t, err)
}

func TestReputation_DecayMovesTowardZero(t *testing.T) {
	// Arrange
	rep := faction.NewReputation()
	rep.Set(fed, 2)
	rep.Set(synd, -1)

	// Act
	rep.Decay()

	// Assert
	assert.Equal(t, 1, rep.Get(fed))
	assert.Equal(t, 0, rep.Get(synd))
	assert.Equal(t, []shared.FactionID{fed}, rep.Factions(), "zero standings are forgotten")
}

func TestReputation_Thresholds(t *testing.T) {
	rep := faction.NewReputation()
	rep.Adjust(fed, faction.MembershipThreshold)
	rep.Adjust(synd, faction.HostileThreshold)

	assert.True(t, rep.CanJoin(fed))
	assert.False(t, rep.CanJoin(synd))
	assert.True(t, rep.IsHostile(synd))
	assert.False(t, rep.IsHostile(fed))
	assert.False(t, rep.IsHostile(""))
}

func TestReputation_RescuerPrefersHighestThenEarliest(t *testing.T) {
	order := []shared.FactionID{fed, synd, guild}

	tests := []struct {
		name   string
		values map[shared.FactionID]int
		want   shared.FactionID
		wantOK bool
	}{
		{"nobody qualifies", map[shared.FactionID]int{fed: 4, synd: -20}, "", false},
		{"single qualifier", map[shared.FactionID]int{fed: 4, synd: 5}, synd, true},
		{"highest wins", map[shared.FactionID]int{fed: 6, guild: 9}, guild, true},
		{"tie goes to earliest", map[shared.FactionID]int{synd: 7, guild: 7}, synd, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := faction.NewReputation()
			for f, v := range tt.values {
				rep.Set(f, v)
			}

			got, ok := rep.Rescuer(order)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
