package config

// SimulationConfig controls how a session is built and paced
type SimulationConfig struct {
	// YAML universe description (galaxy, factions, ships)
	UniversePath string `mapstructure:"universe_path" validate:"required"`

	// Seed of the session's random source
	Seed int64 `mapstructure:"seed"`

	// Turns to run; 0 runs until interrupted
	Turns int `mapstructure:"turns" validate:"min=0"`

	// Pacing of the daemon loop; 0 runs unthrottled
	TurnsPerSecond float64 `mapstructure:"turns_per_second" validate:"min=0"`

	ElectionInterval int `mapstructure:"election_interval" validate:"min=1"`

	// Key under which ship snapshots are persisted
	SessionName string `mapstructure:"session_name" validate:"required"`

	// Persist every ship each N turns; 0 only at shutdown
	SnapshotEvery int `mapstructure:"snapshot_every" validate:"min=0"`
}
