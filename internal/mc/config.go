package mc

import "fmt"

type Config struct {
	Iterations int `yaml:"iterations"`
}

func DefaultConfig() Config {
	return Config{Iterations: 1000}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf(
			"Iterations должно быть > 0 (получено %d)",
			c.Iterations,
		)
	}
	return nil
}
