package commands

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/starfront-go/internal/application/common"
)

// RunSimulationCommand advances the session turn after turn. Turns of zero
// runs until the context is cancelled; TurnsPerSecond of zero runs unpaced.
type RunSimulationCommand struct {
	Turns          int
	TurnsPerSecond float64
}

// RunSimulationResponse summarises a run
type RunSimulationResponse struct {
	TurnsRun   int
	Destroyed  int
	Battles    int
	Elections  int
	Snapshots  int
	Cancelled  bool
	FinalTurn  int
	Rejections int
}

// RunSimulationHandler paces AdvanceTurnCommand through the mediator so
// middleware (metrics, logging) sees every turn
type RunSimulationHandler struct {
	mediator common.Mediator
}

func NewRunSimulationHandler(mediator common.Mediator) *RunSimulationHandler {
	return &RunSimulationHandler{mediator: mediator}
}

// Handle executes the RunSimulation command
func (h *RunSimulationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RunSimulationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunSimulationCommand")
	}
	if cmd.Turns < 0 {
		return nil, fmt.Errorf("turns cannot be negative")
	}

	limit := rate.Inf
	if cmd.TurnsPerSecond > 0 {
		limit = rate.Limit(cmd.TurnsPerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)
	logger := common.LoggerFromContext(ctx)

	resp := &RunSimulationResponse{}
	for cmd.Turns == 0 || resp.TurnsRun < cmd.Turns {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				resp.Cancelled = true
				return resp, nil
			}
			return nil, err
		}

		r, err := h.mediator.Send(ctx, &AdvanceTurnCommand{})
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", resp.FinalTurn, err)
		}
		advanced := r.(*AdvanceTurnResponse)
		rep := advanced.Report

		resp.TurnsRun++
		resp.FinalTurn = rep.Turn + 1
		resp.Destroyed += len(rep.Destroyed)
		resp.Elections += len(rep.Elections)
		for _, b := range rep.Battles {
			if b.Resolved {
				resp.Battles++
			}
		}
		for _, d := range rep.Decisions {
			if d.Rejection != nil {
				resp.Rejections++
			}
		}
		if advanced.Snapshot {
			resp.Snapshots++
		}
		logger.Log(common.LevelDebug, "Turn processed", map[string]interface{}{
			"turn":      rep.Turn,
			"decisions": len(rep.Decisions),
			"battles":   len(rep.Battles),
		})
	}
	return resp, nil
}
