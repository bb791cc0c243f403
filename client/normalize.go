package client

import (
	"bytes"
	"encoding/json"
)

// The API's collection endpoints have been observed answering in two
// shapes: a bare array of records, or an envelope {data: [...]} where each
// record may additionally nest its fields under "attributes" next to "id".
// collectionItems is the single adapter that flattens all of them, keeping
// the rest of the package ignorant of the wire variance.
func collectionItems(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)

	var items []json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
	} else {
		var envelope struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		items = envelope.Data
	}

	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		out = append(out, flattenAttributes(item))
	}
	return out, nil
}

func flattenAttributes(raw json.RawMessage) json.RawMessage {
	var record struct {
		ID         json.RawMessage            `json:"id"`
		Attributes map[string]json.RawMessage `json:"attributes"`
	}
	if err := json.Unmarshal(raw, &record); err != nil || record.Attributes == nil {
		return raw
	}

	flat := record.Attributes
	if record.ID != nil {
		flat["id"] = record.ID
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return raw
	}
	return b
}

func decodeCollection[T any](body []byte) ([]T, error) {
	items, err := collectionItems(body)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		var entry T
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
