package cmdutil

import (
	"io"
	"net/http"
	"strings"

	"github.com/agentmart-dev/agentmart/internal/cli/config"
	"github.com/agentmart-dev/agentmart/internal/client"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// Options is the per-invocation state built once in the root command and
// threaded into every handler. No command reaches for globals; handlers are
// testable with injected streams and an httptest base URL.
type Options struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// JSON switches to machine output: one JSON value on Out, diagnostics
	// on ErrOut.
	JSON bool

	// Color is resolved from NO_COLOR and TTY detection before commands run.
	Color bool

	// Resolved credentials and endpoint (flag > env > config file).
	APIKey  string
	BaseURL string
	AgentID string

	// Config is the loaded config file; ConfigPath overrides its location
	// (used by tests).
	Config     *config.Config
	ConfigPath string

	// HTTPClient optionally overrides the client's transport (tests).
	HTTPClient *http.Client

	client  *client.Client
	printer *printer.Printer
}

// Client returns the API client, constructing it on first use. Commands
// requiring auth fail here with ErrNotAuthenticated before any network
// work.
func (o *Options) Client() (*client.Client, error) {
	if o.client != nil {
		return o.client, nil
	}
	if strings.TrimSpace(o.APIKey) == "" {
		return nil, ErrNotAuthenticated
	}
	c, err := client.New(client.Config{
		APIKey:     o.APIKey,
		BaseURL:    o.BaseURL,
		AgentID:    o.AgentID,
		HTTPClient: o.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	o.client = c
	return c, nil
}

// Printer returns the shared output printer.
func (o *Options) Printer() *printer.Printer {
	if o.printer == nil {
		o.printer = printer.New(o.Out, o.ErrOut, o.JSON, o.Color)
	}
	return o.printer
}
