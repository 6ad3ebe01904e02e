package aria

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseLivePolicy converts a loosely typed table (for example a decoded
// config section) into a LivePolicy. Keys accept the aliases understood by
// ParseValidationMode.
func ParseLivePolicy(raw map[string]string) (LivePolicy, error) {
	policy := make(LivePolicy, len(raw))
	for key, value := range raw {
		mode, err := ParseValidationMode(key)
		if err != nil {
			return nil, err
		}
		if mode == ValidationUnset {
			return nil, fmt.Errorf("aria: live policy key %q does not name a validation mode", key)
		}
		politeness := Politeness(strings.ToLower(strings.TrimSpace(value)))
		if !politeness.Valid() {
			return nil, fmt.Errorf("aria: live policy mode %q has invalid politeness %q", key, value)
		}
		policy[mode] = politeness
	}
	return policy, nil
}

// LoadLivePolicy decodes a YAML (or JSON) mapping of mode to politeness.
//
//	eager: polite
//	blur: assertive
func LoadLivePolicy(data []byte) (LivePolicy, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("aria: decode live policy: %w", err)
	}
	return ParseLivePolicy(raw)
}
