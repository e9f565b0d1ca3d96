package config

// DiscoveryConfig contains discovery feed configuration.
type DiscoveryConfig struct {
	// MaxListLimit caps how many jobs a single list request may return.
	MaxListLimit int `env:"DISCOVERY_MAX_LIST_LIMIT" envDefault:"200"`
}

// Sanitize applies guardrails to discovery configuration values.
func (d *DiscoveryConfig) Sanitize() {
	if d.MaxListLimit <= 0 {
		d.MaxListLimit = 200
	}
}
