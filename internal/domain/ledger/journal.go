package ledger

import (
	"sync"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Journal keeps the transactions of the running session in memory until
// they are flushed to a repository
type Journal struct {
	mu      sync.Mutex
	entries []*Transaction
}

func NewJournal() *Journal {
	return &Journal{}
}

// Append adds a transaction to the journal
func (j *Journal) Append(t *Transaction) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, t)
}

// ForShip returns the ship's transactions in recording order
func (j *Journal) ForShip(id shared.ShipID) []*Transaction {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []*Transaction
	for _, t := range j.entries {
		if t.shipID == id {
			out = append(out, t)
		}
	}
	return out
}

// Drain removes and returns every pending transaction
func (j *Journal) Drain() []*Transaction {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := j.entries
	j.entries = nil
	return out
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
