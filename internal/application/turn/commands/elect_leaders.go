package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	"github.com/andrescamacho/starfront-go/internal/domain/ai"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// ElectLeadersCommand runs an election outside the regular interval. An
// empty Faction elects in every faction.
type ElectLeadersCommand struct {
	Faction shared.FactionID
}

type ElectLeadersResponse struct {
	Results []ai.ElectionResult
}

type ElectLeadersHandler struct {
	session *turn.Session
}

func NewElectLeadersHandler(session *turn.Session) *ElectLeadersHandler {
	return &ElectLeadersHandler{session: session}
}

// Handle executes the ElectLeaders command
func (h *ElectLeadersHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ElectLeadersCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ElectLeadersCommand")
	}

	resp := &ElectLeadersResponse{}
	err := h.session.View(func(w *world.World) error {
		factions := w.Factions().IDs()
		if !cmd.Faction.IsZero() {
			if _, ok := w.Factions().Get(cmd.Faction); !ok {
				return fmt.Errorf("unknown faction %s", cmd.Faction)
			}
			factions = []shared.FactionID{cmd.Faction}
		}
		for _, f := range factions {
			if res, ok := ai.Elect(w, f); ok {
				resp.Results = append(resp.Results, res)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
