package cities

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

func mustStore(t *testing.T, recs ...Record) *Store {
	t.Helper()
	s, err := NewStore(recs)
	require.NoError(t, err)
	return s
}

func rec(t *testing.T, city, state string, idx float64, row int) Record {
	t.Helper()
	r, err := NewRecord(city, state, idx, row)
	require.NoError(t, err)
	return r
}

func TestNewRecordNormalizes(t *testing.T) {
	r, err := NewRecord("  Austin ", " tx", 1.1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Austin", r.City)
	assert.Equal(t, "TX", r.State)
	assert.Equal(t, 2, r.Row)
}

func TestNewRecordRejects(t *testing.T) {
	tests := []struct {
		name  string
		city  string
		state string
		idx   float64
	}{
		{"empty city", " ", "TX", 1},
		{"long state", "Austin", "TEX", 1},
		{"numeric state", "Austin", "T1", 1},
		{"zero index", "Austin", "TX", 0},
		{"negative index", "Austin", "TX", -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.city, tt.state, tt.idx, 5)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
			ce, ok := errors.AsClassified(err)
			require.True(t, ok)
			row, _ := ce.Context().Get("row")
			assert.Equal(t, 5, row)
		})
	}
}

func TestStoreStateIndexIsMean(t *testing.T) {
	s := mustStore(t,
		rec(t, "Dallas", "TX", 0.9, 3),
		rec(t, "Austin", "TX", 1.1, 2),
		rec(t, "Boise", "ID", 0.8, 4),
	)
	tx, ok := s.StateIndex("TX")
	require.True(t, ok)
	assert.InDelta(t, 1.0, tx, 1e-9)

	id, ok := s.StateIndex("ID")
	require.True(t, ok)
	assert.InDelta(t, 0.8, id, 1e-9)

	_, ok = s.StateIndex("CA")
	assert.False(t, ok)
	assert.Equal(t, []string{"ID", "TX"}, s.States())
}

func TestStoreOrdersCaseInsensitively(t *testing.T) {
	s := mustStore(t,
		rec(t, "dallas", "TX", 1, 2),
		rec(t, "Austin", "TX", 1, 3),
		rec(t, "Boise", "ID", 1, 4),
		rec(t, "austin", "MN", 1, 5),
	)
	var got []string
	for _, r := range s.Records() {
		got = append(got, r.City+","+r.State)
	}
	assert.Equal(t, []string{"austin,MN", "Austin,TX", "Boise,ID", "dallas,TX"}, got)

	inTX := s.InState("TX")
	require.Len(t, inTX, 2)
	assert.Equal(t, "Austin", inTX[0].City)
	assert.Equal(t, "dallas", inTX[1].City)
}

func TestStoreRejectsDuplicates(t *testing.T) {
	_, err := NewStore([]Record{
		rec(t, "Austin", "TX", 1.1, 2),
		rec(t, "Dallas", "TX", 0.9, 3),
		rec(t, "Austin", "TX", 1.2, 4),
	})
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryConfig, ce.Category())
	row, _ := ce.Context().Get("row")
	first, _ := ce.Context().Get("first_row")
	assert.Equal(t, 4, row)
	assert.Equal(t, 2, first)
}

func TestReadCSV(t *testing.T) {
	in := "city,state,col\nAustin,tx,1.1\n\nDallas, TX ,0.9\n"
	recs, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, Record{City: "Austin", State: "TX", CostIndex: 1.1, Row: 2}, recs[0])
	assert.Equal(t, "Dallas", recs[1].City)
	assert.Equal(t, "TX", recs[1].State)
	assert.Equal(t, 4, recs[1].Row)
}

func TestReadCSVColumnOrderAndExtras(t *testing.T) {
	in := "col,notes,State,City\n1.25,big,ca,Los Angeles\n"
	recs, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Los Angeles", recs[0].City)
	assert.Equal(t, "CA", recs[0].State)
	assert.InDelta(t, 1.25, recs[0].CostIndex, 1e-9)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		row     any
		message string
	}{
		{"empty input", "", nil, "empty"},
		{"missing column", "city,state\nAustin,TX\n", nil, "headers"},
		{"missing value", "city,state,col\nAustin,,1.0\n", 2, "missing"},
		{"bad number", "city,state,col\nAustin,TX,1.0\nDallas,TX,abc\n", 3, "invalid cost index"},
		{"non-positive", "city,state,col\nAustin,TX,0\n", 2, "positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
			assert.Contains(t, err.Error(), tt.message)
			if tt.row != nil {
				ce, ok := errors.AsClassified(err)
				require.True(t, ok)
				row, _ := ce.Context().Get("row")
				assert.Equal(t, tt.row, row)
			}
		})
	}
}

func TestLoadCSVFileAddsFileContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte("city,state,col\nAustin,TX,1.1\nAustin,TX,1.2\n"), 0o600))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	file, _ := ce.Context().GetString("file")
	assert.Equal(t, path, file)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE cities (city TEXT, state TEXT, col REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO cities (city, state, col) VALUES ('Dallas', 'tx', 0.9), ('Austin', 'TX', 1.1)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "Austin", s.Records()[0].City)
	idx, _ := s.StateIndex("TX")
	assert.InDelta(t, 1.0, idx, 1e-9)
}

func TestLoadSQLiteNullValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE cities (city TEXT, state TEXT, col REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO cities (city, state, col) VALUES ('Austin', 'TX', NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "Texas", StateName("TX"))
	assert.Equal(t, "District of Columbia", StateName("dc"))
	assert.Equal(t, "ZZ", StateName("zz"))
}
