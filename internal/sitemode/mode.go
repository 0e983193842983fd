// Package sitemode defines the URL topology a build uses and the page set and
// navigation features each topology carries.
package sitemode

import (
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/foundation/normalization"
)

// Mode is the URL topology selected for one build.
type Mode int

const (
	// Regular emits /{city}-{st}/ pages alongside cost and how-to guides.
	Regular Mode = iota + 1
	// Cost is Regular plus one cost page per city under /cost/.
	Cost
	// State nests cities under per-state index pages.
	State
	// Subdomain serves every city from its own host.
	Subdomain
	// RegularCityOnly emits city pages and contact only.
	RegularCityOnly
)

// All lists every mode in declaration order.
var All = []Mode{Regular, Cost, State, Subdomain, RegularCityOnly}

var names = map[Mode]string{
	Regular:         "regular",
	Cost:            "cost",
	State:           "state",
	Subdomain:       "subdomain",
	RegularCityOnly: "regular_city_only",
}

var modeNormalizer = normalization.NewNormalizer(map[string]Mode{
	"regular":           Regular,
	"cost":              Cost,
	"state":             State,
	"subdomain":         Subdomain,
	"regular_city_only": RegularCityOnly,
	"regular-city-only": RegularCityOnly,
}, 0)

// Parse converts a mode name into a Mode. Unknown names are configuration errors.
func Parse(raw string) (Mode, error) {
	m, err := modeNormalizer.NormalizeWithError(raw)
	if err != nil {
		return 0, errors.WrapError(err, errors.CategoryConfig, "invalid site mode").
			Fatal().WithContext("value", raw).Build()
	}
	return m, nil
}

// String returns the canonical mode name.
func (m Mode) String() string {
	if n, ok := names[m]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether m is one of the five declared modes.
func (m Mode) Valid() bool {
	_, ok := names[m]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.InternalError("cannot marshal unknown site mode").Build()
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be read from
// YAML and CLI flags.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
