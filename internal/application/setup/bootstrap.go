package setup

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/adapters/universe"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// BuildWorld creates the session's world from the universe file. When repo
// holds a snapshot for session, its ships replace the file's spawn list;
// the galaxy and factions always come from the file. Reports whether a
// snapshot was restored.
func BuildWorld(ctx context.Context, uf *universe.File, seed int64, repo ship.Repository, session string, opts ...world.Option) (*world.World, bool, error) {
	var bags []ship.PropertyBag
	if repo != nil {
		var err error
		if bags, err = repo.LoadAll(ctx, session); err != nil {
			return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
		}
	}
	if len(bags) == 0 {
		w, err := uf.Build(seed, opts...)
		return w, false, err
	}

	g, err := uf.BuildGalaxy()
	if err != nil {
		return nil, false, err
	}
	factions, err := uf.BuildFactions()
	if err != nil {
		return nil, false, err
	}
	w := world.New(g, factions, shared.NewSeededRandom(seed, session), opts...)
	if err := RestoreShips(w, bags); err != nil {
		return nil, false, err
	}
	return w, true, nil
}

// RestoreShips reconstructs every bag into w
func RestoreShips(w *world.World, bags []ship.PropertyBag) error {
	for _, bag := range bags {
		s, err := ship.Reconstruct(w.Galaxy(), bag)
		if err != nil {
			return fmt.Errorf("failed to restore ship %s: %w", bag[ship.KeyID], err)
		}
		if err := w.AddShip(s); err != nil {
			return err
		}
	}
	return nil
}
