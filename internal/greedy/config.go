package greedy

import "fmt"

type Config struct {
	// MaxScans ограничивает количество просмотров окрестности; 0 - до локального оптимума
	MaxScans int `yaml:"max_scans"`
}

func DefaultConfig() Config {
	return Config{MaxScans: 0}
}

func (c Config) Validate() error {
	if c.MaxScans < 0 {
		return fmt.Errorf(
			"MaxScans должно быть >= 0 (получено %d)",
			c.MaxScans,
		)
	}
	return nil
}
