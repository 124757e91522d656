package api

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ProcessTextRequest is the body sent to the processing endpoint.
type ProcessTextRequest struct {
	Text string `json:"text"`
}

// ProcessTextResponse is the body returned by the processing endpoint.
type ProcessTextResponse struct {
	ProcessedText string `json:"processed_text"`
}

// UnmarshalJSON reads processed_text without checking its type. Strings are
// kept as is, numbers and booleans keep their literal text, nested values are
// kept as compact JSON. A missing or null field, or a body that is not an
// object, gives "".
func (r *ProcessTextResponse) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var body interface{}
	if err := dec.Decode(&body); err != nil {
		return err
	}

	r.ProcessedText = ""
	fields, ok := body.(map[string]interface{})
	if !ok {
		return nil
	}

	switch value := fields["processed_text"].(type) {
	case nil:
	case string:
		r.ProcessedText = value
	case json.Number:
		r.ProcessedText = value.String()
	case bool:
		if value {
			r.ProcessedText = "true"
		} else {
			r.ProcessedText = "false"
		}
	default:
		nested, err := json.Marshal(value)
		if err != nil {
			return err
		}
		r.ProcessedText = strings.TrimSpace(string(nested))
	}
	return nil
}
