package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestResultEmitsSingleJSONValue(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, true, false)

	p.Errorf("something diagnostic")
	p.Tipf("another diagnostic")
	p.Progressf("working...")
	if err := p.Result(map[string]string{"id": "sk-1"}); err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not one JSON value: %v\n%s", err, out.String())
	}
	if got["id"] != "sk-1" {
		t.Errorf("result = %v", got)
	}
	for _, want := range []string{"something diagnostic", "another diagnostic", "working..."} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
}

func TestErrorResultShape(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &bytes.Buffer{}, true, false)
	p.ErrorResult(3, "insufficient balance")

	var got struct {
		Error   bool   `json:"error"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Error || got.Code != 3 || got.Message != "insufficient balance" {
		t.Errorf("error object = %+v", got)
	}
}

func TestTableRender(t *testing.T) {
	var out bytes.Buffer
	table := NewTable(&out)
	table.SetHeaders("id", "title", "price")
	table.AddRow("sk-1", "CSV Wrangler", "1.50")
	table.AddRow("sk-2", "Long Title Here", "free")
	if err := table.Render(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "PRICE") {
		t.Errorf("header line = %q", lines[0])
	}
	colTitle := strings.Index(lines[1], "CSV")
	if colTitle < 0 || !strings.HasPrefix(lines[2][colTitle:], "Long") {
		t.Errorf("columns not aligned:\n%s", out.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this one is too long", 10, "this on..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
