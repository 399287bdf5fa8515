package routing

import (
	"bytes"
	"encoding/json"

	"github.com/getmockd/fakeapi/pkg/records"
)

// DecodeJSON unmarshals the request body into v.
func (r *Request) DecodeJSON(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return ErrEmptyRequestBody
	}
	return json.Unmarshal(r.Body, v)
}

// Fields decodes the body as a free-form JSON object, keeping numbers exact.
func (r *Request) Fields() (map[string]any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, ErrEmptyRequestBody
	}
	return records.DecodeFields(r.Body)
}
