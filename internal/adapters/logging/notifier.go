package logging

import (
	"context"
	"log/slog"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Notifier writes every notification as an INFO record
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(l *SlogLogger) *Notifier {
	return &Notifier{logger: l.Slog().With("component", "notifier")}
}

func (n *Notifier) Notify(note world.Notification) {
	attrs := []slog.Attr{
		slog.Int("turn", note.Turn),
		slog.Int("ship", int(note.Ship)),
	}
	if note.Sound != world.SoundNone {
		attrs = append(attrs, slog.String("sound", string(note.Sound)))
	}
	n.logger.LogAttrs(context.Background(), slog.LevelInfo, note.Message, attrs...)
}

// Observer logs structured simulation events: rejected actions at DEBUG,
// battles and destructions at INFO
type Observer struct {
	logger *slog.Logger
}

func NewObserver(l *SlogLogger) *Observer {
	return &Observer{logger: l.Slog().With("component", "simulation")}
}

func (o *Observer) ActionCompleted(ship shared.ShipID, action string, err error) {
	if err == nil {
		return
	}
	o.logger.Debug("action rejected", "ship", int(ship), "action", action, "reason", err.Error())
}

func (o *Observer) BattleOpened(id shared.BattleID) {
	o.logger.Info("battle opened", "battle", string(id))
}

func (o *Observer) BattleResolved(id shared.BattleID, rounds int) {
	o.logger.Info("battle resolved", "battle", string(id), "rounds", rounds)
}

func (o *Observer) ShipDestroyed(id shared.ShipID) {
	o.logger.Info("ship destroyed", "ship", int(id))
}
