package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

var _ world.Observer = (*SimulationCollector)(nil)
var _ TurnRecorder = (*SimulationCollector)(nil)

// SimulationCollector exports simulation events: actions, battles,
// destructions, turns and ledger entries
type SimulationCollector struct {
	actionsTotal      *prometheus.CounterVec
	battlesOpened     prometheus.Counter
	battlesResolved   prometheus.Counter
	battleRounds      prometheus.Histogram
	shipsDestroyed    prometheus.Counter
	turnsTotal        prometheus.Counter
	turnDuration      prometheus.Histogram
	livingShips       prometheus.Gauge
	activeBattles     prometheus.Gauge
	transactionsTotal *prometheus.CounterVec
	transactionAmount *prometheus.HistogramVec
}

// NewSimulationCollector creates the simulation collectors
func NewSimulationCollector() *SimulationCollector {
	return &SimulationCollector{
		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "actions_total",
				Help:      "Actions attempted by name and outcome",
			},
			[]string{"action", "status"},
		),
		battlesOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "battles_opened_total",
			Help:      "Battles started",
		}),
		battlesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "battles_resolved_total",
			Help:      "Battles torn down",
		}),
		battleRounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "battle_rounds",
			Help:      "Rounds fought per resolved battle",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		shipsDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ships_destroyed_total",
			Help:      "Ships destroyed",
		}),
		turnsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "turns_total",
			Help:      "Turns processed",
		}),
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "turn_duration_seconds",
			Help:      "Wall time spent processing one turn",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		livingShips: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "living_ships",
			Help:      "Ships not yet destroyed",
		}),
		activeBattles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_battles",
			Help:      "Battles still running after the last turn",
		}),
		transactionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transactions_total",
				Help:      "Ledger entries by type and category",
			},
			[]string{"type", "category"},
		),
		transactionAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transaction_amount",
				Help:      "Absolute credit amount per ledger entry",
				Buckets:   []float64{5, 10, 25, 50, 100, 200, 400, 800},
			},
			[]string{"type", "category"},
		),
	}
}

// Register registers all simulation metrics with the Prometheus registry
func (c *SimulationCollector) Register() error {
	return register(
		c.actionsTotal,
		c.battlesOpened,
		c.battlesResolved,
		c.battleRounds,
		c.shipsDestroyed,
		c.turnsTotal,
		c.turnDuration,
		c.livingShips,
		c.activeBattles,
		c.transactionsTotal,
		c.transactionAmount,
	)
}

func (c *SimulationCollector) ActionCompleted(ship shared.ShipID, action string, err error) {
	status := "success"
	if err != nil {
		status = "rejected"
	}
	c.actionsTotal.WithLabelValues(action, status).Inc()
}

func (c *SimulationCollector) BattleOpened(id shared.BattleID) {
	c.battlesOpened.Inc()
}

func (c *SimulationCollector) BattleResolved(id shared.BattleID, rounds int) {
	c.battlesResolved.Inc()
	c.battleRounds.Observe(float64(rounds))
}

func (c *SimulationCollector) ShipDestroyed(id shared.ShipID) {
	c.shipsDestroyed.Inc()
}

func (c *SimulationCollector) RecordTurn(duration time.Duration, livingShips, activeBattles int) {
	c.turnsTotal.Inc()
	c.turnDuration.Observe(duration.Seconds())
	c.livingShips.Set(float64(livingShips))
	c.activeBattles.Set(float64(activeBattles))
}

func (c *SimulationCollector) RecordTransaction(transactionType, category string, amount int) {
	if amount < 0 {
		amount = -amount
	}
	c.transactionsTotal.WithLabelValues(transactionType, category).Inc()
	c.transactionAmount.WithLabelValues(transactionType, category).Observe(float64(amount))
}
