package cities

import (
	"context"
	"database/sql"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// SQLite driver for .db/.sqlite inputs.
	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// Required input columns.
const (
	ColumnCity  = "city"
	ColumnState = "state"
	ColumnCost  = "col"
)

// Load reads records from path. Files ending in .db, .sqlite or .sqlite3 are
// read from their "cities" table; anything else is parsed as CSV with a
// header row.
func Load(ctx context.Context, path string) (*Store, error) {
	var (
		records []Record
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		records, err = LoadSQLite(ctx, path)
	default:
		var f *os.File
		f, err = os.Open(filepath.Clean(path))
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "open city input").
				Fatal().WithContext("file", path).Build()
		}
		defer func() { _ = f.Close() }()
		records, err = ReadCSV(f)
	}
	if err != nil {
		return nil, withFile(err, path)
	}
	store, err := NewStore(records)
	if err != nil {
		return nil, withFile(err, path)
	}
	return store, nil
}

// ReadCSV parses a header row containing at least city, state and col, then
// one record per line. Row numbers in errors are file line numbers, so the
// first data row is usually row 2.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.ConfigError("city input is empty; expected header city,state,col").Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "read CSV header").Fatal().Build()
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []Record
	for {
		row, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			b := errors.WrapError(err, errors.CategoryConfig, "malformed CSV row").Fatal()
			var pe *csv.ParseError
			if stderrors.As(err, &pe) {
				b = b.WithContext("row", pe.Line)
			}
			return nil, b.Build()
		}
		line, _ := cr.FieldPos(0)
		if isBlank(row) {
			continue
		}
		city, state, rawCost := field(row, idx[ColumnCity]), field(row, idx[ColumnState]), field(row, idx[ColumnCost])
		if city == "" || state == "" || rawCost == "" {
			return nil, errors.ConfigError("missing city/state/col value").
				WithContext("row", line).WithContext("value", strings.Join(row, ",")).Build()
		}
		cost, err := strconv.ParseFloat(rawCost, 64)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "invalid cost index").
				Fatal().WithContext("row", line).WithContext("column", ColumnCost).WithContext("value", rawCost).Build()
		}
		rec, err := NewRecord(city, state, cost, line)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// LoadSQLite reads records from the "cities" table of a SQLite database.
// Row numbers in errors are 1-based positions in rowid order.
func LoadSQLite(ctx context.Context, path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "open city input").Fatal().Build()
	}
	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(path)+"?mode=ro")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "open city database").Fatal().Build()
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT %s, %s, %s FROM cities ORDER BY rowid", ColumnCity, ColumnState, ColumnCost)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "query cities table (need columns city, state, col)").Fatal().Build()
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	n := 0
	for rows.Next() {
		n++
		var (
			city, state sql.NullString
			cost        sql.NullFloat64
		)
		if err := rows.Scan(&city, &state, &cost); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "invalid cities row").
				Fatal().WithContext("row", n).Build()
		}
		if !city.Valid || !state.Valid || !cost.Valid {
			return nil, errors.ConfigError("missing city/state/col value").WithContext("row", n).Build()
		}
		rec, err := NewRecord(city.String, state.String, cost.Float64, n)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "read cities table").Fatal().Build()
	}
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	var missing []string
	for _, col := range []string{ColumnCity, ColumnState, ColumnCost} {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.ConfigError("city input must have headers city,state,col").
			WithContext("column", strings.Join(missing, ",")).
			WithContext("value", strings.Join(header, ",")).
			Build()
	}
	return idx, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// withFile attaches the input path to a classified error's context.
func withFile(err error, path string) error {
	if ce, ok := errors.AsClassified(err); ok && ce.Context() != nil {
		if _, has := ce.Context().Get("file"); !has {
			ce.Context().Set("file", path)
		}
	}
	return err
}
