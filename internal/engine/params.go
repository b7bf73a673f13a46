package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseGlossary parses a glossary given on the command line. Two forms are
// accepted: a JSON object ({"term": "translation"}) or comma separated
// Key=Value pairs. An empty input yields a nil map.
func ParseGlossary(s string) (map[string]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if strings.HasPrefix(s, "{") {
		var m map[string]string
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, fmt.Errorf("invalid glossary JSON: %w", err)
		}
		return m, nil
	}

	m := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid glossary pair %q, expected Key=Value", pair)
		}
		m[key] = value
	}
	if len(m) == 0 {
		return nil, nil
	}
	return m, nil
}
