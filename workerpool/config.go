package workerpool

import "errors"

// Config sizes the pool.
type Config struct {
	Producers        int `yaml:"producers"`
	Consumers        int `yaml:"consumers"`
	ItemsPerProducer int `yaml:"items_per_producer"`
}

// DefaultConfig returns the classic 4 producers x 4 consumers demo setup.
func DefaultConfig() Config {
	return Config{
		Producers:        4,
		Consumers:        4,
		ItemsPerProducer: 1_000_000,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Producers < 1 {
		return errors.New("workerpool: at least one producer required")
	}
	if c.Consumers < 1 {
		return errors.New("workerpool: at least one consumer required")
	}
	if c.ItemsPerProducer < 1 {
		return errors.New("workerpool: items per producer must be positive")
	}
	return nil
}
