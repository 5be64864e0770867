package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recipekeeper/internal/flagx"
	"github.com/dmitrijs2005/recipekeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Durations
// accept "10s" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDSN      string         `json:"database_dsn"`
	LogLevel         string         `json:"log_level"`
	BcryptCost       int            `json:"bcrypt_cost"`
	TokenBytes       int            `json:"token_bytes"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	AllowedOrigins   []string       `json:"allowed_origins"`
}

// parseJson overlays values from the file named by -c / -config onto config.
// Fields absent from the file keep their current value. A missing flag
// means no file is read; an unreadable or malformed file panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.TokenBytes != 0 {
		config.TokenBytes = c.TokenBytes
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
}
