package ts

import "fmt"

type Config struct {
	Iterations int `yaml:"iterations"`

	// Capacity - длина табу-списка (количество запоминаемых решений)
	Capacity int `yaml:"capacity"`
}

func DefaultConfig() Config {
	return Config{
		Iterations: 20,
		Capacity:   1200,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf(
			"Iterations должно быть > 0 (получено %d)",
			c.Iterations,
		)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf(
			"Capacity должно быть > 0 (получено %d)",
			c.Capacity,
		)
	}
	return nil
}
