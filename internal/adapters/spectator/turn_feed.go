package spectator

import (
	"context"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	turnCommands "github.com/andrescamacho/starfront-go/internal/application/turn/commands"
)

// TurnPayload summarises a processed turn on the wire
type TurnPayload struct {
	Turn      int   `json:"turn"`
	Decisions int   `json:"decisions"`
	Battles   int   `json:"battles"`
	Destroyed []int `json:"destroyed,omitempty"`
	Elections int   `json:"elections"`
	Snapshot  bool  `json:"snapshot,omitempty"`
}

// TurnFeed is mediator middleware that publishes a "turn" message after
// every successful AdvanceTurnCommand
func TurnFeed(h *Hub) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		response, err := next(ctx, request)
		if err != nil {
			return response, err
		}
		if advanced, ok := response.(*turnCommands.AdvanceTurnResponse); ok {
			h.Publish("turn", newTurnPayload(advanced))
		}
		return response, nil
	}
}

func newTurnPayload(resp *turnCommands.AdvanceTurnResponse) TurnPayload {
	rep := resp.Report
	p := TurnPayload{
		Turn:      rep.Turn,
		Decisions: len(rep.Decisions) + len(rep.Intents),
		Battles:   len(rep.Battles),
		Elections: len(rep.Elections),
		Snapshot:  resp.Snapshot,
	}
	for _, id := range rep.Destroyed {
		p.Destroyed = append(p.Destroyed, int(id))
	}
	return p
}
