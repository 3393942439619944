package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ckasturi/sift/internal/common"
)

// DefaultTimeout bounds a full multi-file load. Exports are at most a few
// hundred thousand rows; anything slower indicates a stuck read.
const DefaultTimeout = 30 * time.Second

// Table is a decoded spreadsheet: the header row in source order plus one
// record per data row.
type Table struct {
	Headers []string
	Records []RawRecord
}

// ReadFile loads one CSV or XLSX export. The first non-empty row is the
// header; rows with no cell content are skipped.
func ReadFile(ctx context.Context, path string) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, fmt.Errorf("%w: %v", common.ErrTimeout, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return Table{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		table, err := ReadCSV(f)
		if err != nil {
			return Table{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return table, nil
	case ".xlsx", ".xls":
		table, err := ReadXLSX(path)
		if err != nil {
			return Table{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return table, nil
	default:
		return Table{}, fmt.Errorf("%w: unsupported file type %q", common.ErrParse, filepath.Ext(path))
	}
}

// ReadCSV decodes comma-separated rows into a table.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", common.ErrParse, err)
	}

	return rowsToTable(rows)
}

// ReadXLSX decodes the first sheet of a workbook into a table.
func ReadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", common.ErrParse, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", common.ErrParse, err)
	}

	return rowsToTable(rows)
}

// LoadResult pairs a file path with its decoded table.
type LoadResult struct {
	Path  string
	Table Table
}

// ReadFiles loads every file concurrently, one goroutine per file, and
// returns results in input order. The first failure or a context deadline
// aborts the load.
func ReadFiles(ctx context.Context, paths []string) ([]LoadResult, error) {
	if len(paths) == 0 {
		return nil, common.ErrEmptyInput
	}

	type indexed struct {
		err   error
		table Table
		idx   int
	}

	ch := make(chan indexed, len(paths))
	for i, path := range paths {
		go func(idx int, p string) {
			table, err := ReadFile(ctx, p)
			ch <- indexed{idx: idx, table: table, err: err}
		}(i, path)
	}

	results := make([]LoadResult, len(paths))
	for range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", common.ErrTimeout, ctx.Err())
		case res := <-ch:
			if res.err != nil {
				return nil, res.err
			}
			results[res.idx] = LoadResult{Path: paths[res.idx], Table: res.table}
		}
	}

	return results, nil
}

func rowsToTable(rows [][]string) (Table, error) {
	var headers []string
	start := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headers = make([]string, len(row))
			for j, h := range row {
				headers[j] = strings.TrimSpace(h)
			}
			start = i + 1
			break
		}
	}
	if headers == nil {
		return Table{}, common.ErrEmptyInput
	}

	var records []RawRecord
	for _, row := range rows[start:] {
		if rowEmpty(row) {
			continue
		}
		record := make(RawRecord, len(headers))
		for j, h := range headers {
			if h == "" {
				continue
			}
			if j < len(row) {
				record[h] = row[j]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return Table{}, common.ErrNoUsableData
	}

	cleaned := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			cleaned = append(cleaned, h)
		}
	}
	return Table{Headers: cleaned, Records: records}, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
