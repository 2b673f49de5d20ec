package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a monetary value carried as text. The backend declares these
// fields numeric but has been observed returning strings (e.g. wallet
// balances), so the type accepts both JSON representations and preserves
// the text form it received.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// Float64 parses the amount as a float. Empty amounts parse as zero.
func (a Amount) Float64() (float64, error) {
	if a == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(a), 64)
}

func (a Amount) String() string {
	return string(a)
}
