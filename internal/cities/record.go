// Package cities holds the build's city records and the per-state cost index
// derived from them.
package cities

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// Record is one (city, state, cost index) row. Records are immutable once loaded.
type Record struct {
	City      string
	State     string  // two-letter uppercase code
	CostIndex float64 // strictly positive multiplier
	Row       int     // source location (CSV line or table row) for error messages
}

// Key identifies a record for duplicate detection.
type Key struct {
	City  string
	State string
}

// Key returns the record's identity.
func (r Record) Key() Key { return Key{City: r.City, State: r.State} }

var stateCode = regexp.MustCompile(`^[A-Z]{2}$`)

// NewRecord normalizes and validates a raw row. row is used only for error context.
func NewRecord(city, state string, costIndex float64, row int) (Record, error) {
	city = strings.TrimSpace(city)
	state = strings.ToUpper(strings.TrimSpace(state))
	if city == "" {
		return Record{}, errors.ConfigError("missing city").WithContext("row", row).Build()
	}
	if !stateCode.MatchString(state) {
		return Record{}, errors.ConfigError("state must be a two-letter code").
			WithContext("row", row).WithContext("value", state).Build()
	}
	if math.IsNaN(costIndex) || math.IsInf(costIndex, 0) || costIndex <= 0 {
		return Record{}, errors.ConfigError("cost index must be a positive number").
			WithContext("row", row).WithContext("value", costIndex).Build()
	}
	return Record{City: city, State: state, CostIndex: costIndex, Row: row}, nil
}

// Store is the loaded, validated record set plus its derived state index.
type Store struct {
	records    []Record
	stateIndex map[string]float64
	byState    map[string][]Record
	states     []string
}

// NewStore validates uniqueness of (city, state) and derives the state index.
// Records are kept in alphabetical order by city name (case-insensitive), then
// state, so every listing and emission order is independent of input row order.
func NewStore(records []Record) (*Store, error) {
	seen := make(map[Key]int, len(records))
	for _, r := range records {
		if prev, dup := seen[r.Key()]; dup {
			return nil, errors.ConfigError("duplicate city/state record").
				WithContext("value", r.City+", "+r.State).
				WithContext("row", r.Row).
				WithContext("first_row", prev).
				Build()
		}
		seen[r.Key()] = r.Row
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	SortByCity(sorted)

	s := &Store{
		records:    sorted,
		stateIndex: make(map[string]float64),
		byState:    make(map[string][]Record),
	}
	sums := make(map[string]float64)
	for _, r := range sorted {
		sums[r.State] += r.CostIndex
		s.byState[r.State] = append(s.byState[r.State], r)
	}
	for st, recs := range s.byState {
		s.stateIndex[st] = sums[st] / float64(len(recs))
		s.states = append(s.states, st)
	}
	sort.Strings(s.states)
	return s, nil
}

// Records returns the records in alphabetical city order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// States returns the distinct state codes, sorted.
func (s *Store) States() []string {
	out := make([]string, len(s.states))
	copy(out, s.states)
	return out
}

// InState returns the records for one state in alphabetical city order.
func (s *Store) InState(state string) []Record {
	recs := s.byState[state]
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}

// StateIndex returns the arithmetic mean cost index of the state's records.
func (s *Store) StateIndex(state string) (float64, bool) {
	v, ok := s.stateIndex[state]
	return v, ok
}

// SortByCity orders records by case-folded city name, then state code.
func SortByCity(records []Record) {
	fold := cases.Fold()
	sort.SliceStable(records, func(i, j int) bool {
		a, b := fold.String(records[i].City), fold.String(records[j].City)
		if a != b {
			return a < b
		}
		return records[i].State < records[j].State
	})
}
