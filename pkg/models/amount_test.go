package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Amount
	}{
		{"number", `{"balance": 12.5}`, "12.5"},
		{"integer", `{"balance": 3}`, "3"},
		{"string", `{"balance": "12.50"}`, "12.50"},
		{"high precision string survives", `{"balance": "0.123456789012345678"}`, "0.123456789012345678"},
		{"null", `{"balance": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Balance Amount `json:"balance"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, tt.want, out.Balance)
		})
	}
}

func TestAmountUnmarshalRejectsNonNumeric(t *testing.T) {
	var a Amount
	err := json.Unmarshal([]byte(`{"nope":1}`), &a)
	assert.Error(t, err)
}

func TestAmountMarshal(t *testing.T) {
	b, err := json.Marshal(Amount("9.99"))
	require.NoError(t, err)
	assert.Equal(t, `"9.99"`, string(b))
}

func TestAmountFloat64(t *testing.T) {
	f, err := Amount("12.50").Float64()
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	f, err = Amount("").Float64()
	require.NoError(t, err)
	assert.Zero(t, f)

	_, err = Amount("not-a-number").Float64()
	assert.Error(t, err)
}
