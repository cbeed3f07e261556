package turn

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/ai"
	"github.com/andrescamacho/starfront-go/internal/domain/combat"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// IntentResult is the outcome of one queued player action
type IntentResult struct {
	Ship   shared.ShipID
	Action string
	Err    error
}

// Report summarises one processed turn
type Report struct {
	Turn         int
	Intents      []IntentResult
	Decisions    []ai.Decision
	Battles      []combat.RoundResult
	Upkeep       int
	Expelled     []shared.ShipID
	Elections    []ai.ElectionResult
	Destroyed    []shared.ShipID
	Transactions []*ledger.Transaction
}

// ProcessTurn advances the simulation by one turn. The order is fixed:
//  1. queued player intents, by ship id
//  2. AI ships, by id
//  3. battles, in creation order
//  4. module upkeep for every living ship
//  5. reputation decay, expelling members who became hostile
//  6. leader elections every election interval
func (s *Session) ProcessTurn(ctx context.Context) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := common.LoggerFromContext(ctx)
	w := s.world
	alive := livingIDs(w)
	rep := Report{Turn: w.Turn()}

	s.runIntents(w, logger, &rep)
	s.runPilots(w, logger, &rep)
	s.runBattles(w, logger, &rep)
	rep.Upkeep = runUpkeep(w)
	rep.Expelled = decayStanding(w)

	completed := w.EndTurn()
	if s.electionInterval > 0 && completed%s.electionInterval == 0 {
		for _, f := range w.Factions().IDs() {
			if res, ok := ai.Elect(w, f); ok {
				rep.Elections = append(rep.Elections, res)
				logger.Log(common.LevelInfo, "Faction elected a leader", map[string]interface{}{
					"faction": string(f),
					"leader":  res.Leader.String(),
				})
			}
		}
	}

	for _, id := range alive {
		if sh, ok := w.Ship(id); ok && sh.IsDestroyed() {
			rep.Destroyed = append(rep.Destroyed, id)
			logger.Log(common.LevelInfo, "Ship destroyed", map[string]interface{}{
				"ship": sh.Name(),
				"turn": rep.Turn,
			})
		}
	}
	rep.Transactions = w.Journal().Drain()
	return rep
}

func (s *Session) runIntents(w *world.World, logger common.TurnLogger, rep *Report) {
	ids := make([]shared.ShipID, 0, len(s.intents))
	for id := range s.intents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		a := s.intents[id]
		delete(s.intents, id)
		sh, ok := w.Ship(id)
		if !ok {
			continue
		}
		err := a.Execute(w, sh)
		rep.Intents = append(rep.Intents, IntentResult{Ship: id, Action: a.Name(), Err: err})
		if err != nil {
			logRejection(logger, sh.Name(), a.Name(), err)
		}
	}
}

func (s *Session) runPilots(w *world.World, logger common.TurnLogger, rep *Report) {
	for _, sh := range w.LivingShips() {
		if sh.IsPlayer() || sh.IsDestroyed() {
			continue
		}
		d := s.pilot.TakeTurn(w, sh)
		if d.Branch == ai.BranchBattle {
			continue
		}
		rep.Decisions = append(rep.Decisions, d)
		if d.Rejection != nil {
			logRejection(logger, sh.Name(), string(d.Branch), d.Rejection)
		}
	}
}

func (s *Session) runBattles(w *world.World, logger common.TurnLogger, rep *Report) {
	for _, b := range w.Battles() {
		res := s.engine.ProcessTurn(w, b)
		rep.Battles = append(rep.Battles, res)
		if res.Resolved {
			logger.Log(common.LevelInfo, "Battle resolved", map[string]interface{}{
				"battle":    res.Battle.String(),
				"rounds":    res.Round,
				"stalemate": res.Stalemate,
			})
		}
	}
}

// runUpkeep charges every living ship with switched-on modules
func runUpkeep(w *world.World) int {
	charged := 0
	upkeep := action.Upkeep{}
	for _, sh := range w.LivingShips() {
		if len(sh.Inventory().ActiveModules()) == 0 {
			continue
		}
		if upkeep.Execute(w, sh) == nil {
			charged++
		}
	}
	return charged
}

// decayStanding moves every standing toward zero and expels members whose
// own faction now treats them as hostile. An expelled leader loses office.
func decayStanding(w *world.World) []shared.ShipID {
	var expelled []shared.ShipID
	for _, sh := range w.LivingShips() {
		sh.Reputation().Decay()
		f := sh.Faction()
		if f.IsZero() || !sh.Reputation().IsHostile(f) {
			continue
		}
		w.Factions().StepDown(f, sh.ID())
		sh.SetFaction("")
		expelled = append(expelled, sh.ID())
		w.Notify(sh, fmt.Sprintf("%s is expelled from %s", sh.Name(), f), world.SoundAlarm)
	}
	return expelled
}

func livingIDs(w *world.World) []shared.ShipID {
	ships := w.LivingShips()
	out := make([]shared.ShipID, len(ships))
	for i, sh := range ships {
		out[i] = sh.ID()
	}
	return out
}

func logRejection(logger common.TurnLogger, ship, act string, err error) {
	logger.Log(common.LevelDebug, "Action rejected", map[string]interface{}{
		"ship":   ship,
		"action": act,
		"reason": err.Error(),
	})
}
