package ship

import "context"

// Repository persists ship property bags per simulation session
type Repository interface {
	SaveAll(ctx context.Context, session string, bags []PropertyBag) error
	LoadAll(ctx context.Context, session string) ([]PropertyBag, error)
}
