package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument marks a tool argument with the wrong type or value.
var ErrInvalidArgument = errors.New("invalid argument")

// optionalString returns the string under key, or "" when absent or null.
func optionalString(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

func requiredString(args map[string]any, key string) (string, error) {
	s, err := optionalString(args, key)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return s, nil
}

// optionalLimit reads a positive whole number. Absent, null and zero all fall
// back to def.
func optionalLimit(args map[string]any, key string, def int) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return def, nil
	}
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
		}
		v = f
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
	}
	switch {
	case v == 0:
		return def, nil
	case v < 0 || v != math.Trunc(v) || v > math.MaxInt32:
		return 0, fmt.Errorf("%w: %s must be a positive whole number", ErrInvalidArgument, key)
	}
	return int(v), nil
}

// prettyJSON renders v with two-space indentation and without HTML escaping,
// so bodies such as "<#> Your code is 1234" come back verbatim.
func prettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
