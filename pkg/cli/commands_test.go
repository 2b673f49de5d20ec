package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

func newTestOptions(t *testing.T) (*cmdutil.Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("AGENTMART_API_KEY", "")
	t.Setenv("AGENTMART_BASE_URL", "")
	t.Setenv("AGENTMART_AGENT_ID", "")
	t.Setenv("NO_COLOR", "1")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	opts := &cmdutil.Options{
		In:         strings.NewReader(""),
		Out:        out,
		ErrOut:     errOut,
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
	}
	return opts, out, errOut
}

// TestCommandTree verifies the CLI command hierarchy is correct.
func TestCommandTree(t *testing.T) {
	opts, _, _ := newTestOptions(t)
	root := New(opts)

	expectedTopLevel := []string{
		"agent",
		"auth",
		"buy",
		"categories",
		"license-validate",
		"list",
		"purchases",
		"register",
		"reviews",
		"search",
		"skills",
		"souls",
		"version",
		"wallet",
	}

	gotTopLevel := childNamesForTest(root)
	slices.Sort(expectedTopLevel)
	slices.Sort(gotTopLevel)

	if len(expectedTopLevel) != len(gotTopLevel) {
		t.Fatalf("top-level command count: got %d, want %d\n  got:  %v\n  want: %v",
			len(gotTopLevel), len(expectedTopLevel), gotTopLevel, expectedTopLevel)
	}
	for i := range expectedTopLevel {
		if expectedTopLevel[i] != gotTopLevel[i] {
			t.Errorf("top-level command mismatch at index %d: got %q, want %q",
				i, gotTopLevel[i], expectedTopLevel[i])
			break
		}
	}

	expectedSubcmdCounts := map[string]int{
		// list, get, buy, create, download, featured
		"skills": 6,
		// list, get, buy, create
		"souls": 4,
		// balance, deposit-address, withdraw, withdrawals, donate
		"wallet": 5,
		// me, status, profile
		"agent": 3,
		// list, create
		"reviews": 2,
	}

	for _, cmd := range root.Commands() {
		expected, ok := expectedSubcmdCounts[cmd.Name()]
		if !ok {
			continue
		}
		got := len(cmd.Commands())
		if got != expected {
			t.Errorf("%s subcommand count: got %d, want %d (commands: %v)",
				cmd.Name(), got, expected, childNamesForTest(cmd))
		}
	}
}

// TestCommandsHaveRequiredMetadata verifies every command has Use and Short set.
func TestCommandsHaveRequiredMetadata(t *testing.T) {
	opts, _, _ := newTestOptions(t)
	root := New(opts)

	var walk func(cmd *cobra.Command, path string)
	walk = func(cmd *cobra.Command, path string) {
		if cmd.Use == "" {
			t.Errorf("%s: Use field is empty", path)
		}
		if cmd.Short == "" {
			t.Errorf("%s: Short field is empty", path)
		}
		for _, child := range cmd.Commands() {
			walk(child, path+"/"+child.Name())
		}
	}

	for _, cmd := range root.Commands() {
		walk(cmd, "amctl/"+cmd.Name())
	}
}

// TestLegacyAliasesHidden verifies the v1 aliases exist but stay out of help.
func TestLegacyAliasesHidden(t *testing.T) {
	opts, _, _ := newTestOptions(t)
	root := New(opts)

	tests := []struct {
		name       string
		wantHidden bool
	}{
		{"search", true},
		{"buy", true},
		{"list", true},
		{"skills", false},
		{"wallet", false},
		{"version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := findSubcommandForTest(root, tt.name)
			if cmd == nil {
				t.Fatalf("command %q not found", tt.name)
			}
			if cmd.Hidden != tt.wantHidden {
				t.Errorf("command %q Hidden = %v, want %v", tt.name, cmd.Hidden, tt.wantHidden)
			}
		})
	}
}

// TestRootPersistentFlags verifies persistent flags on the root command.
func TestRootPersistentFlags(t *testing.T) {
	opts, _, _ := newTestOptions(t)
	root := New(opts)

	for _, name := range []string{"json", "api-key", "base-url", "agent-id"} {
		t.Run(name, func(t *testing.T) {
			if root.PersistentFlags().Lookup(name) == nil {
				t.Fatalf("persistent flag --%s not found on root command", name)
			}
		})
	}
}

// TestUnknownCommandSuggestion verifies typo suggestions are produced.
func TestUnknownCommandSuggestion(t *testing.T) {
	opts, _, _ := newTestOptions(t)
	root := New(opts)

	suggestions := root.SuggestionsFor("serach")
	if !slices.Contains(suggestions, "search") {
		t.Errorf("SuggestionsFor(%q) = %v, want it to contain %q", "serach", suggestions, "search")
	}
}

// TestMachineModeStreamSeparation verifies --json keeps stdout to exactly one
// JSON value with diagnostics on stderr, for success and failure alike.
func TestMachineModeStreamSeparation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"balance":"12.50","currency":"USDT"}`))
	}))
	defer srv.Close()

	opts, out, errOut := newTestOptions(t)
	root := New(opts)
	root.SetArgs([]string{"wallet", "balance", "--json", "--api-key", "k", "--base-url", srv.URL})

	if code := Run(root, opts); code != cmdutil.ExitOK {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errOut.String())
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not a single JSON value: %v\n%s", err, out.String())
	}
	if result["balance"] != "12.50" {
		t.Errorf("balance = %v, want %q", result["balance"], "12.50")
	}
}

func TestMachineModeErrorObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"Insufficient balance"}`))
	}))
	defer srv.Close()

	opts, out, _ := newTestOptions(t)
	root := New(opts)
	root.SetArgs([]string{"skills", "buy", "sk-1", "--yes", "--json", "--api-key", "k", "--base-url", srv.URL})

	code := Run(root, opts)
	if code != cmdutil.ExitInsufficientBalance {
		t.Fatalf("exit code = %d, want %d", code, cmdutil.ExitInsufficientBalance)
	}

	var result struct {
		Error   bool   `json:"error"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not a single JSON value: %v\n%s", err, out.String())
	}
	if !result.Error || result.Code != cmdutil.ExitInsufficientBalance {
		t.Errorf("error object = %+v, want error=true code=%d", result, cmdutil.ExitInsufficientBalance)
	}
	if !strings.Contains(result.Message, "Insufficient balance") {
		t.Errorf("message = %q, want it to mention the balance", result.Message)
	}
}

// TestUnauthenticatedFailsBeforeNetwork verifies commands needing a key fail
// locally with the documented remediation tip.
func TestUnauthenticatedFailsBeforeNetwork(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	opts, _, errOut := newTestOptions(t)
	root := New(opts)
	root.SetArgs([]string{"wallet", "balance", "--base-url", srv.URL})

	if code := Run(root, opts); code != cmdutil.ExitGeneral {
		t.Fatalf("exit code = %d, want %d", code, cmdutil.ExitGeneral)
	}
	if calls != 0 {
		t.Errorf("server saw %d requests, want 0", calls)
	}
	if !strings.Contains(errOut.String(), "AGENTMART_API_KEY") {
		t.Errorf("stderr missing remediation tip:\n%s", errOut.String())
	}
}

// TestAPIKeyPrecedence verifies flag > env resolution.
func TestAPIKeyPrecedence(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		w.Write([]byte(`{"balance":"0","currency":"USDT"}`))
	}))
	defer srv.Close()

	opts, _, errOut := newTestOptions(t)
	t.Setenv("AGENTMART_API_KEY", "env-key")

	root := New(opts)
	root.SetArgs([]string{"wallet", "balance", "--json", "--api-key", "flag-key", "--base-url", srv.URL})
	if code := Run(root, opts); code != cmdutil.ExitOK {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errOut.String())
	}
	if gotKey != "flag-key" {
		t.Errorf("X-API-Key = %q, want the flag value to win over the environment", gotKey)
	}
}

func childNamesForTest(cmd *cobra.Command) []string {
	children := cmd.Commands()
	names := make([]string, 0, len(children))
	for _, c := range children {
		if c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		names = append(names, c.Name())
	}
	slices.Sort(names)
	return names
}

func findSubcommandForTest(parent *cobra.Command, name string) *cobra.Command {
	for _, cmd := range parent.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}
