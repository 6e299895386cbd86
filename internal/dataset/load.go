package dataset

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
)

// Terminal load failures. Both halt the session; no partial table is ever
// returned alongside an error.
var (
	// ErrSourceNotFound reports a missing input file.
	ErrSourceNotFound = eris.New("dataset: source file not found")
	// ErrLoad reports an unreadable or structurally invalid input file,
	// including a column override that names a nonexistent column.
	ErrLoad = eris.New("dataset: load failed")
)

// dateLayouts are tried in order for every date cell. ISO first, since that
// is what the INRAE station exports use.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02/01/2006",
	"20060102",
}

// LoadOptions configures a single dataset load.
type LoadOptions struct {
	Path      string
	Delimiter rune // CSV field separator, default ','
	Overrides Overrides
}

// Load reads the input file, infers the schema, and builds the enriched
// table. Rows whose date cell cannot be parsed are dropped and counted;
// missing measurements never drop a row. The returned table is complete and
// immutable, or nil with a terminal error.
func Load(opts LoadOptions) (*Table, error) {
	rows, err := readRows(opts)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, eris.Wrapf(ErrLoad, "no data rows in %s", opts.Path)
	}

	header := trimmed(rows[0])
	schema, err := InferSchema(header, opts.Overrides)
	if err != nil {
		return nil, eris.Wrapf(ErrLoad, "%v", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[col] = i
	}

	t := &Table{
		Records:      make([]EnrichedRecord, 0, len(rows)-1),
		Schema:       schema,
		Capabilities: schema.Capabilities(),
		SourcePath:   opts.Path,
		Header:       header,
		LoadedAt:     clock.Now(),
	}

	dateIdx := colIdx[schema.DateColumn]
	for _, row := range rows[1:] {
		date, ok := parseDate(cellAt(row, dateIdx))
		if !ok {
			t.RowsDropped++
			continue
		}

		rec := enrich(date)
		rec.TempMean = meanValue(row, colIdx, schema.TempMeanColumns)
		rec.TempMax = floatValue(row, colIdx, schema.TempMaxColumn)
		rec.TempMin = floatValue(row, colIdx, schema.TempMinColumn)
		rec.Precipitation = precipValue(row, colIdx, schema.PrecipitationColumn)

		t.Records = append(t.Records, rec)
	}
	t.RowsLoaded = len(t.Records)

	if t.RowsLoaded == 0 {
		return nil, eris.Wrapf(ErrLoad, "no row in %s has a parseable date in column %q", opts.Path, schema.DateColumn)
	}

	zap.L().Info("dataset loaded",
		zap.String("path", opts.Path),
		zap.Int("rows", t.RowsLoaded),
		zap.Int("dropped", t.RowsDropped),
		zap.String("date_column", schema.DateColumn),
		zap.Bool("has_temp_mean", t.Capabilities.TempMean),
		zap.Bool("has_precipitation", t.Capabilities.Precipitation),
	)
	return t, nil
}

// readRows reads the raw grid from a CSV or XLSX file, dispatching on the
// file extension.
func readRows(opts LoadOptions) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(opts.Path), ".xlsx") {
		return readXLSX(opts.Path)
	}
	return readCSV(opts.Path, opts.Delimiter)
}

func readCSV(path string, delimiter rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if eris.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrSourceNotFound, "%s", path)
		}
		return nil, eris.Wrapf(ErrLoad, "open %s: %v", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1 // station exports sometimes pad trailing columns

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(ErrLoad, "read %s: %v", path, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if eris.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrSourceNotFound, "%s", path)
		}
		return nil, eris.Wrapf(ErrLoad, "stat %s: %v", path, err)
	}

	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(ErrLoad, "open xlsx %s: %v", path, err)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Wrapf(ErrLoad, "xlsx %s has no sheets", path)
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// parseDate tries each supported layout against a trimmed date cell.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cellAt returns the cell at idx, or "" for short rows.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// floatValue parses the cell bound to a role, nil when the role is unbound
// or the cell is blank or unparseable.
func floatValue(row []string, colIdx map[string]int, col string) *float64 {
	if col == "" {
		return nil
	}
	idx, ok := colIdx[col]
	if !ok {
		return nil
	}
	s := strings.TrimSpace(cellAt(row, idx))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

// meanValue computes the mean temperature for a row: the bound column's
// value directly, or the average of the min/max pair. The pair average
// requires both cells; a missing half makes the mean missing rather than
// passing the surviving extreme off as a daily mean.
func meanValue(row []string, colIdx map[string]int, cols []string) *float64 {
	switch len(cols) {
	case 0:
		return nil
	case 1:
		return floatValue(row, colIdx, cols[0])
	default:
		a := floatValue(row, colIdx, cols[0])
		b := floatValue(row, colIdx, cols[1])
		if a == nil || b == nil {
			return nil
		}
		m := (*a + *b) / 2
		return &m
	}
}

// precipValue parses a precipitation cell. Negative values are sentinel
// codes for missing measurements (e.g. -999.9) and are treated as absent.
func precipValue(row []string, colIdx map[string]int, col string) *float64 {
	v := floatValue(row, colIdx, col)
	if v != nil && *v < 0 {
		return nil
	}
	return v
}

func trimmed(row []string) []string {
	out := make([]string, len(row))
	for i, s := range row {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
