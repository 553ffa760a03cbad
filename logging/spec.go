package logging

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Spec is a parsed log spec.
type Spec struct {
	Base       Level
	Components map[string]Level
}

// ParseSpec parses "<level>[,<component>=<level>]...". The base level
// may be omitted, eg. "btf=debug", and defaults to warn. An empty spec
// is the default spec.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{Base: LevelWarn, Components: map[string]Level{}}

	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		component, levelName, isComponent := strings.Cut(part, "=")
		if !isComponent {
			if i != 0 {
				return spec, fmt.Errorf("base level %q must come first", part)
			}
			l, err := ParseLevel(part)
			if err != nil {
				return spec, err
			}
			spec.Base = l
			continue
		}

		component = strings.TrimSpace(component)
		if component == "" {
			return spec, fmt.Errorf("missing component name in %q", part)
		}
		l, err := ParseLevel(levelName)
		if err != nil {
			return spec, fmt.Errorf("component %s: %w", component, err)
		}
		spec.Components[component] = l
	}

	return spec, nil
}

// LevelFor returns the level in effect for component.
func (s Spec) LevelFor(component string) Level {
	if l, ok := s.Components[component]; ok {
		return l
	}
	return s.Base
}

// String formats s so that ParseSpec(s.String()) yields s. Components
// are sorted by name.
func (s Spec) String() string {
	parts := []string{s.Base.String()}
	for _, c := range slices.Sorted(maps.Keys(s.Components)) {
		parts = append(parts, c+"="+s.Components[c].String())
	}
	return strings.Join(parts, ",")
}
