package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "starfront"
	// Subsystem for simulation metrics
	subsystem = "sim"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalTurnRecorder is set by SetGlobalTurnRecorder() when metrics are enabled
	globalTurnRecorder TurnRecorder
)

// TurnRecorder records per-turn and ledger events. Application handlers call
// the package-level helpers, which are no-ops while metrics are disabled.
type TurnRecorder interface {
	RecordTurn(duration time.Duration, livingShips, activeBattles int)
	RecordTransaction(transactionType, category string, amount int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry, nil when disabled
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalTurnRecorder sets the recorder used by RecordTurn and RecordTransaction
func SetGlobalTurnRecorder(r TurnRecorder) {
	globalTurnRecorder = r
}

// RecordTurn records a processed turn globally
func RecordTurn(duration time.Duration, livingShips, activeBattles int) {
	if globalTurnRecorder != nil {
		globalTurnRecorder.RecordTurn(duration, livingShips, activeBattles)
	}
}

// RecordTransaction records a ledger entry globally
func RecordTransaction(transactionType, category string, amount int) {
	if globalTurnRecorder != nil {
		globalTurnRecorder.RecordTransaction(transactionType, category, amount)
	}
}

func register(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
