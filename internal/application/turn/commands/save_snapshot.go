package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// SaveSnapshotCommand persists every ship of the session
type SaveSnapshotCommand struct{}

type SaveSnapshotResponse struct {
	Ships int
}

type SaveSnapshotHandler struct {
	session  *turn.Session
	shipRepo ship.Repository
}

func NewSaveSnapshotHandler(session *turn.Session, shipRepo ship.Repository) *SaveSnapshotHandler {
	return &SaveSnapshotHandler{session: session, shipRepo: shipRepo}
}

// Handle executes the SaveSnapshot command
func (h *SaveSnapshotHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*SaveSnapshotCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveSnapshotCommand")
	}
	if h.shipRepo == nil {
		return nil, fmt.Errorf("no ship repository configured")
	}
	n, err := saveSnapshot(ctx, h.session, h.shipRepo)
	if err != nil {
		return nil, err
	}
	return &SaveSnapshotResponse{Ships: n}, nil
}

// saveSnapshot exports every ship, destroyed ones included, under the
// session name
func saveSnapshot(ctx context.Context, session *turn.Session, repo ship.Repository) (int, error) {
	var bags []ship.PropertyBag
	_ = session.View(func(w *world.World) error {
		for _, s := range w.Ships() {
			bags = append(bags, s.Export())
		}
		return nil
	})
	if err := repo.SaveAll(ctx, session.Name(), bags); err != nil {
		return 0, fmt.Errorf("failed to save ships: %w", err)
	}
	common.LoggerFromContext(ctx).Log(common.LevelInfo, "Snapshot saved", map[string]interface{}{
		"session": session.Name(),
		"ships":   len(bags),
	})
	return len(bags), nil
}
