// internal/workers/data-access/query-job-catalog/config.go
package queryjobcatalog

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
