package world

import (
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Sound is a symbolic audio cue. Presentation layers may ignore it.
type Sound string

const (
	SoundNone      Sound = ""
	SoundEngine    Sound = "engine"
	SoundDock      Sound = "dock"
	SoundMine      Sound = "mine"
	SoundCoins     Sound = "coins"
	SoundLaser     Sound = "laser"
	SoundTorpedo   Sound = "torpedo"
	SoundBeam      Sound = "beam"
	SoundShield    Sound = "shield"
	SoundExplosion Sound = "explosion"
	SoundAlarm     Sound = "alarm"
)

// Notification is a human-readable message plus an optional sound cue
type Notification struct {
	Turn    int
	Ship    shared.ShipID
	Message string
	Sound   Sound
}

// Notifier receives fire-and-forget notifications. Implementations must not
// feed anything back into the simulation.
type Notifier interface {
	Notify(n Notification)
}

// Observer receives structured simulation events (metrics, logs)
type Observer interface {
	ActionCompleted(ship shared.ShipID, action string, err error)
	BattleOpened(id shared.BattleID)
	BattleResolved(id shared.BattleID, rounds int)
	ShipDestroyed(id shared.ShipID)
}

// MultiNotifier fans out to several notifiers
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(n Notification) {
	for _, x := range m {
		x.Notify(n)
	}
}

// MultiObserver fans out to several observers
type MultiObserver []Observer

func (m MultiObserver) ActionCompleted(ship shared.ShipID, action string, err error) {
	for _, o := range m {
		o.ActionCompleted(ship, action, err)
	}
}

func (m MultiObserver) BattleOpened(id shared.BattleID) {
	for _, o := range m {
		o.BattleOpened(id)
	}
}

func (m MultiObserver) BattleResolved(id shared.BattleID, rounds int) {
	for _, o := range m {
		o.BattleResolved(id, rounds)
	}
}

func (m MultiObserver) ShipDestroyed(id shared.ShipID) {
	for _, o := range m {
		o.ShipDestroyed(id)
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

type nopObserver struct{}

func (nopObserver) ActionCompleted(shared.ShipID, string, error) {}
func (nopObserver) BattleOpened(shared.BattleID) {}
func (nopObserver) BattleResolved(shared.BattleID, int) {}
func (nopObserver) ShipDestroyed(shared.ShipID) {}

// RecordingNotifier keeps every notification, for tests and replays
type RecordingNotifier struct {
	Notifications []Notification
}

func (r *RecordingNotifier) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Messages returns the recorded message texts
func (r *RecordingNotifier) Messages() []string {
	out := make([]string, len(r.Notifications))
	for i, n := range r.Notifications {
		out[i] = n.Message
	}
	return out
}
