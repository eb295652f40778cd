package normalize

import "encoding/json"

// listEnvelope matches the `{"data": [...]}` wrapper some backend
// endpoints use.
type listEnvelope struct {
	Data []Raw `json:"data"`
}

// Records extracts the record list from a raw API response body. The
// backend returns either a bare array or an object with a `data` array;
// any other shape (including invalid JSON) yields an empty slice rather
// than an error.
func Records(body []byte) []Raw {
	var bare []Raw
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}

	var wrapped listEnvelope
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data
	}

	return []Raw{}
}

// Record extracts a single record from a raw API response body,
// unwrapping a `{"data": {...}}` envelope when present. A nil map is
// returned for any other shape.
func Record(body []byte) Raw {
	var bare Raw
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil
	}
	if data, ok := bare["data"].(map[string]any); ok {
		return Raw(data)
	}
	return bare
}
