package upstream

import (
	"bytes"
	"encoding/json"
	"errors"
)

// envelopeKeys are the wrapper fields the platform services put around
// collections and single records.
var envelopeKeys = []string{"data", "payments", "items", "result"}

// decodeInto accepts a bare JSON value or one wrapped, possibly more than
// once, in a known envelope: {"data": ...}, {"data": {"payments": [...]}}.
func decodeInto(body []byte, v any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return errors.New("empty body")
	}

	if body[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(body, &env); err == nil {
			for _, k := range envelopeKeys {
				if raw, ok := env[k]; ok && !isNull(raw) {
					return decodeInto(raw, v)
				}
			}
		}
	}

	return json.Unmarshal(body, v)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
