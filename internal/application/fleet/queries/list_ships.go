package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// ListShipsQuery lists ships of the session ordered by id
type ListShipsQuery struct {
	IncludeDestroyed bool
	Faction          shared.FactionID
}

type ListShipsResponse struct {
	Ships []ShipDTO
	Turn  int
}

type ListShipsHandler struct {
	session *turn.Session
}

func NewListShipsHandler(session *turn.Session) *ListShipsHandler {
	return &ListShipsHandler{session: session}
}

// Handle executes the ListShips query
func (h *ListShipsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListShipsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListShipsQuery")
	}

	resp := &ListShipsResponse{}
	_ = h.session.View(func(w *world.World) error {
		resp.Turn = w.Turn()
		ships := w.LivingShips()
		if query.IncludeDestroyed {
			ships = w.Ships()
		}
		for _, s := range ships {
			if !query.Faction.IsZero() && s.Faction() != query.Faction {
				continue
			}
			resp.Ships = append(resp.Ships, toShipDTO(s))
		}
		return nil
	})
	return resp, nil
}

// GetShipQuery fetches one ship plus its persistence shape
type GetShipQuery struct {
	ShipID shared.ShipID
}

type GetShipResponse struct {
	Ship ShipDTO
	Bag  ship.PropertyBag
}

type GetShipHandler struct {
	session *turn.Session
}

func NewGetShipHandler(session *turn.Session) *GetShipHandler {
	return &GetShipHandler{session: session}
}

// Handle executes the GetShip query
func (h *GetShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetShipQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetShipQuery")
	}

	var resp *GetShipResponse
	err := h.session.View(func(w *world.World) error {
		s, ok := w.Ship(query.ShipID)
		if !ok {
			return fmt.Errorf("ship %s not found", query.ShipID)
		}
		resp = &GetShipResponse{Ship: toShipDTO(s), Bag: s.Export()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
