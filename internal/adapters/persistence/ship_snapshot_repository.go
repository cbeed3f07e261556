package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starfront-go/internal/domain/ship"
)

// GormShipSnapshotRepository implements ship.Repository using GORM
type GormShipSnapshotRepository struct {
	db *gorm.DB
}

// NewGormShipSnapshotRepository creates a new GORM ship snapshot repository
func NewGormShipSnapshotRepository(db *gorm.DB) *GormShipSnapshotRepository {
	return &GormShipSnapshotRepository{db: db}
}

// SaveAll replaces the session's snapshot with bags
func (r *GormShipSnapshotRepository) SaveAll(ctx context.Context, session string, bags []ship.PropertyBag) error {
	models := make([]ShipSnapshotModel, 0, len(bags))
	for _, bag := range bags {
		model, err := r.bagToModel(session, bag)
		if err != nil {
			return err
		}
		models = append(models, *model)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session = ?", session).Delete(&ShipSnapshotModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		return nil
	})
}

// LoadAll returns the session's bags ordered by ship id. An unknown session
// yields no bags.
func (r *GormShipSnapshotRepository) LoadAll(ctx context.Context, session string) ([]ship.PropertyBag, error) {
	var models []ShipSnapshotModel
	result := r.db.WithContext(ctx).
		Where("session = ?", session).
		Order("ship_id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", result.Error)
	}

	bags := make([]ship.PropertyBag, 0, len(models))
	for _, m := range models {
		var bag ship.PropertyBag
		if err := json.Unmarshal([]byte(m.Bag), &bag); err != nil {
			return nil, fmt.Errorf("corrupt snapshot of ship %d: %w", m.ShipID, err)
		}
		bags = append(bags, bag)
	}
	return bags, nil
}

// Sessions lists every session that has a snapshot
func (r *GormShipSnapshotRepository) Sessions(ctx context.Context) ([]string, error) {
	var sessions []string
	result := r.db.WithContext(ctx).
		Model(&ShipSnapshotModel{}).
		Distinct("session").
		Order("session ASC").
		Pluck("session", &sessions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", result.Error)
	}
	return sessions, nil
}

func (r *GormShipSnapshotRepository) bagToModel(session string, bag ship.PropertyBag) (*ShipSnapshotModel, error) {
	var id int
	if _, err := fmt.Sscanf(bag[ship.KeyID], "%d", &id); err != nil {
		return nil, fmt.Errorf("bag has no ship id: %w", err)
	}
	data, err := json.Marshal(bag)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bag: %w", err)
	}
	return &ShipSnapshotModel{
		Session:   session,
		ShipID:    id,
		Name:      bag[ship.KeyName],
		Destroyed: bag[ship.KeyDestroyed] == "true",
		Bag:       string(data),
	}, nil
}
