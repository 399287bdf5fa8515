package cli

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseFields turns key=value pairs into an item payload. Values that parse
// as JSON (numbers, booleans, null, arrays, objects) keep their type;
// anything else is a string.
func parseFields(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", pair)
		}
		if key == "id" {
			return nil, fmt.Errorf("invalid field %q: id is assigned by the store", pair)
		}
		fields[key] = parseValue(value)
	}
	return fields, nil
}

func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		if _, isString := v.(string); !isString {
			return json.RawMessage(s)
		}
	}
	return s
}
