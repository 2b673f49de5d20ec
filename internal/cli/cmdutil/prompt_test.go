package cmdutil

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		skip  bool
		json  bool
		want  bool
	}{
		{"yes", "y\n", false, false, true},
		{"yes long form", "Yes\n", false, false, true},
		{"no", "n\n", false, false, false},
		{"empty defaults to no", "\n", false, false, false},
		{"eof defaults to no", "", false, false, false},
		{"skip flag bypasses prompt", "", true, false, true},
		{"machine mode bypasses prompt", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			opts := &Options{
				In:     strings.NewReader(tt.input),
				Out:    io.Discard,
				ErrOut: &errOut,
				JSON:   tt.json,
			}
			assert.Equal(t, tt.want, opts.Confirm("Proceed?", tt.skip))
			if tt.skip || tt.json {
				assert.Empty(t, errOut.String(), "bypassed prompts must not write")
			}
		})
	}
}
