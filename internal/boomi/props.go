package boomi

import (
	"fmt"
	"strings"

	"boomictl/pkg/api"
)

// ParseProperties parses a "name:value;name:value" string into dynamic
// process properties. Empty segments from leading, trailing, or doubled
// semicolons are skipped; a segment without a colon is an error. Values may
// themselves contain colons, only the first one splits.
func ParseProperties(s string) ([]api.DynamicProcessProperty, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var props []api.DynamicProcessProperty
	for _, pair := range strings.Split(s, ";") {
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid property %q: expected name:value", pair)
		}
		props = append(props, api.DynamicProcessProperty{Name: name, Value: value})
	}
	return props, nil
}
