package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// EventLog persists notifications of one session. It implements
// world.Notifier; write failures are logged and dropped.
type EventLog struct {
	db      *gorm.DB
	session string
	logger  common.TurnLogger
}

// NewEventLog creates an event log. A nil logger discards write failures.
func NewEventLog(db *gorm.DB, session string, logger common.TurnLogger) *EventLog {
	if logger == nil {
		logger = common.LoggerFromContext(context.Background())
	}
	return &EventLog{db: db, session: session, logger: logger}
}

func (l *EventLog) Notify(n world.Notification) {
	model := &EventModel{
		Session: l.session,
		Turn:    n.Turn,
		ShipID:  int(n.Ship),
		Message: n.Message,
		Sound:   string(n.Sound),
	}
	if err := l.db.Create(model).Error; err != nil {
		l.logger.Log(common.LevelWarn, "failed to persist event", map[string]interface{}{
			"session": l.session,
			"turn":    n.Turn,
			"error":   err.Error(),
		})
	}
}

// Recent returns up to limit events from fromTurn on, oldest first
func (l *EventLog) Recent(ctx context.Context, fromTurn, limit int) ([]world.Notification, error) {
	query := l.db.WithContext(ctx).
		Where("session = ? AND turn >= ?", l.session, fromTurn).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []EventModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	out := make([]world.Notification, len(models))
	for i, m := range models {
		out[i] = world.Notification{
			Turn:    m.Turn,
			Ship:    shared.ShipID(m.ShipID),
			Message: m.Message,
			Sound:   world.Sound(m.Sound),
		}
	}
	return out, nil
}
