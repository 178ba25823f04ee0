package devcli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/urlquery/urlquery-go/urlquery"
)

// NewClient constructs an SDK client from the global flags.
func NewClient(g *GlobalFlags) (*urlquery.Client, error) {
	version, err := parseVersion(g.Version)
	if err != nil {
		return nil, err
	}
	opts := []urlquery.Option{
		urlquery.WithBaseURL(g.BaseURL),
		urlquery.WithVersion(version),
		urlquery.WithGzip(g.Gzip),
		urlquery.WithHTTPClient(&http.Client{Timeout: g.Timeout()}),
	}
	if g.APIKey != "" {
		opts = append(opts, urlquery.WithAPIKey(g.APIKey))
	}
	if g.Verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, urlquery.WithLogger(func(event string, metadata map[string]any) {
			log.Info().Fields(metadata).Msg(event)
		}))
	}
	return urlquery.New(opts...), nil
}

// Ctx returns a context with the CLI-configured timeout.
func Ctx(g *GlobalFlags) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), g.Timeout())
}

func parseVersion(s string) (urlquery.APIVersion, error) {
	switch strings.ToLower(s) {
	case "", "v3":
		return urlquery.V3, nil
	case "v1":
		return urlquery.V1, nil
	default:
		return urlquery.V3, fmt.Errorf("unknown API version %q (want v1 or v3)", s)
	}
}
