// internal/workers/career/match-jobs/config.go
package matchjobs

import "time"

type Config struct {
	Timeout    time.Duration
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    30 * time.Second,
		MaxResults: 50,
	}
}
