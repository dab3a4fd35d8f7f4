package sa

import "fmt"

type Config struct {
	Iterations int `yaml:"iterations"`

	// Beta0 - начальная обратная температура
	Beta0 float64 `yaml:"beta0"`
	// Epsilon - после каждой итерации beta умножается на (1 + Epsilon)
	Epsilon float64 `yaml:"epsilon"`
}

func DefaultConfig() Config {
	return Config{
		Iterations: 800,
		Beta0:      3.2,
		Epsilon:    10.0 / 320.0,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf(
			"Iterations должно быть > 0 (получено %d)",
			c.Iterations,
		)
	}
	if c.Beta0 < 0 {
		return fmt.Errorf(
			"Beta0 должно быть >= 0 (получено %f)",
			c.Beta0,
		)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf(
			"Epsilon должно быть >= 0 (получено %f)",
			c.Epsilon,
		)
	}
	return nil
}
