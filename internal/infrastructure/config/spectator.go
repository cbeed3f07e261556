package config

// SpectatorConfig controls the websocket notification feed
type SpectatorConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Listen address, host:port
	Address string `mapstructure:"address" validate:"required_if=Enabled true"`

	// Messages buffered per client before it is dropped
	ClientBuffer int `mapstructure:"client_buffer" validate:"min=1"`
}
