package client

import (
	"bytes"
	"encoding/json"

	"github.com/stoewer/go-strcase"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// The backend's list endpoints have drifted across versions: some wrap the
// payload in a {success, data} envelope and some return it bare, and field
// names appear in both snake_case and camelCase. Everything that probes for
// those shapes lives here so group methods stay thin.

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// unwrapData returns the payload inside a {success, data} envelope, or the
// body unchanged when it is not wrapped.
func unwrapData(raw json.RawMessage) json.RawMessage {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if env.Data != nil && (env.Success != nil || isObjectOrArray(env.Data)) {
		return env.Data
	}
	return raw
}

func isObjectOrArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// objectFields decodes raw as a JSON object, returning false for arrays and
// scalars.
func objectFields(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// lookup fetches a field by name, tolerating snake_case vs camelCase drift.
func lookup(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := fields[name]; ok {
		return v, true
	}
	if v, ok := fields[strcase.SnakeCase(name)]; ok {
		return v, true
	}
	if v, ok := fields[strcase.LowerCamelCase(name)]; ok {
		return v, true
	}
	return nil, false
}

// decodeList normalizes a list response into items plus total pagination.
// It accepts an enveloped or bare object keyed by any of the given names, or
// a bare array. Absent pagination yields the documented defaults; a nil
// items field yields an empty slice via the caller's make.
func decodeList(raw json.RawMessage, items any, keys ...string) (models.Pagination, error) {
	raw = unwrapData(raw)
	pagination := models.DefaultPagination()

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, items); err != nil {
			return pagination, newTransportError("decode list response", err)
		}
		return pagination, nil
	}

	fields, ok := objectFields(raw)
	if !ok {
		return pagination, nil
	}
	for _, key := range keys {
		v, found := lookup(fields, key)
		if !found {
			continue
		}
		if err := json.Unmarshal(v, items); err != nil {
			return pagination, newTransportError("decode list response", err)
		}
		break
	}
	if v, found := lookup(fields, "pagination"); found {
		// Unmarshal over the defaults so absent fields keep them.
		if err := json.Unmarshal(v, &pagination); err != nil {
			return models.DefaultPagination(), newTransportError("decode pagination", err)
		}
	}
	return pagination, nil
}
