// internal/workers/assessment/calculate-lifestyle-cost/config.go
package calculatelifestylecost

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
