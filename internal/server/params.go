package server

import "fmt"

// requireString extracts a required string argument from a tool call's
// flat argument map.
func requireString(params map[string]any, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string, got %T (%v)", key, raw, raw)
	}
	if s == "" {
		return "", fmt.Errorf("parameter %q must not be empty", key)
	}
	return s, nil
}
