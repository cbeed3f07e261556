package turn

import (
	"fmt"
	"sync"

	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/ai"
	"github.com/andrescamacho/starfront-go/internal/domain/combat"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// DefaultElectionInterval is the number of turns between faction elections
const DefaultElectionInterval = 10

// Session owns one running simulation: the world, the pilot that drives AI
// ships, the battle engine and the player intents queued for the next turn.
// All access to the world goes through the session lock.
type Session struct {
	mu sync.Mutex

	name             string
	world            *world.World
	pilot            *ai.Pilot
	engine           *combat.Engine
	electionInterval int
	intents          map[shared.ShipID]action.Action
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithElectionInterval sets how often factions elect leaders; zero disables
// elections
func WithElectionInterval(turns int) SessionOption {
	return func(s *Session) { s.electionInterval = turns }
}

// NewSession wraps w. The pilot doubles as the battle engine's tactician.
func NewSession(name string, w *world.World, opts ...SessionOption) *Session {
	pilot := ai.NewPilot()
	s := &Session{
		name:             name,
		world:            w,
		pilot:            pilot,
		engine:           combat.NewEngine(pilot),
		electionInterval: DefaultElectionInterval,
		intents:          make(map[shared.ShipID]action.Action),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Name() string {
	return s.name
}

// View runs fn with exclusive access to the world
func (s *Session) View(fn func(w *world.World) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.world)
}

// Queue stores a for the player ship id, replacing any earlier intent. The
// action is checked against the current state so obvious mistakes surface
// immediately; it is checked again when the turn runs.
func (s *Session) Queue(id shared.ShipID, a action.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh, ok := s.world.Ship(id)
	if !ok {
		return fmt.Errorf("ship %s not found", id)
	}
	if !sh.IsPlayer() {
		return fmt.Errorf("ship %s is not player controlled", id)
	}
	if err := a.CanExecute(s.world, sh); err != nil {
		return err
	}
	s.intents[id] = a
	return nil
}

// Pending returns the queued intent of id
func (s *Session) Pending(id shared.ShipID) (action.Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.intents[id]
	return a, ok
}
