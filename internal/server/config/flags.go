package config

import (
	"flag"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN, or "memory"
//	-l string   log level
//	-b int      bcrypt cost
//	-k int      auth token size in random bytes
//	-t int      shutdown timeout, seconds
//	-o string   comma-separated CORS origins
//
// Only these flags are picked out of args (see flagx.FilterArgs), so the JSON
// config flag and unrelated arguments do not collide.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-b", "-k", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.IntVar(&config.TokenBytes, "k", config.TokenBytes, "auth token size (random bytes)")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins, comma separated")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
	config.AllowedOrigins = splitCSV(*origins)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
