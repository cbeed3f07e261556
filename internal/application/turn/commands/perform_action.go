package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	"github.com/andrescamacho/starfront-go/internal/domain/action"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// PerformActionCommand queues a textual command ("raise", "buy fuel 5") as
// the player ship's intent for the next turn
type PerformActionCommand struct {
	ShipID  shared.ShipID
	Command string
}

// PerformActionResponse reports whether the intent was accepted. A rejected
// intent is not an error: Reason carries the game's explanation.
type PerformActionResponse struct {
	Action string
	Queued bool
	Reason string
}

type PerformActionHandler struct {
	session *turn.Session
}

func NewPerformActionHandler(session *turn.Session) *PerformActionHandler {
	return &PerformActionHandler{session: session}
}

// Handle executes the PerformAction command
func (h *PerformActionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PerformActionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PerformActionCommand")
	}

	a, err := action.Parse(cmd.Command)
	if err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	err = h.session.Queue(cmd.ShipID, a)
	if shared.IsRejection(err) {
		common.LoggerFromContext(ctx).Log(common.LevelDebug, "Intent rejected", map[string]interface{}{
			"ship":   cmd.ShipID.String(),
			"action": a.Name(),
			"reason": err.Error(),
		})
		return &PerformActionResponse{Action: a.Name(), Reason: err.Error()}, nil
	}
	if err != nil {
		return nil, err
	}
	return &PerformActionResponse{Action: a.Name(), Queued: true}, nil
}
