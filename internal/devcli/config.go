// Package devcli carries the shared plumbing of the uqdev developer CLI:
// environment-backed configuration, client construction and output helpers.
package devcli

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/urlquery/urlquery-go/urlquery"
)

// Environment keys for defaults.
const (
	EnvBaseURL = "URLQUERY_BASE_URL"
	EnvAPIKey  = "URLQUERY_API_KEY"
	EnvGzip    = "URLQUERY_GZIP"
	EnvVersion = "URLQUERY_API_VERSION"
	EnvTimeout = "URLQUERY_TIMEOUT" // seconds
)

const DefaultTimeoutSec = 30

// GlobalFlags captures CLI-wide settings and defaults.
type GlobalFlags struct {
	BaseURL    string
	APIKey     string
	Gzip       bool
	Version    string
	TimeoutSec int
	Verbose    bool
}

// Timeout returns the per-request deadline.
func (g *GlobalFlags) Timeout() time.Duration {
	return time.Duration(g.TimeoutSec) * time.Second
}

// Register binds the global flags to the root command. Defaults come from the
// environment; a .env file is honored when present.
func Register(cmd *cobra.Command) *GlobalFlags {
	_ = godotenv.Load()

	g := &GlobalFlags{}
	pf := cmd.PersistentFlags()
	pf.StringVar(&g.BaseURL, "base", getenvDefault(EnvBaseURL, urlquery.DefaultBaseURL), "API base URL")
	pf.StringVar(&g.APIKey, "apikey", getenvDefault(EnvAPIKey, ""), "API key")
	pf.BoolVar(&g.Gzip, "gzip", boolDefault(os.Getenv(EnvGzip), false), "Request compressed responses")
	pf.StringVar(&g.Version, "api-version", getenvDefault(EnvVersion, "v3"), "API version: v1 or v3")
	pf.IntVar(&g.TimeoutSec, "timeout", atoiDefault(os.Getenv(EnvTimeout), DefaultTimeoutSec), "Request timeout in seconds")
	pf.BoolVarP(&g.Verbose, "verbose", "v", false, "Verbose request/response logs")
	return g
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func boolDefault(s string, def bool) bool {
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
