// Package spreadsheet contains the CSV adapter bridging exported
// spreadsheet files and the planner's dynamic row shape.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/example/labops/internal/core/item"
)

// ReadRows parses a CSV stream into items. The first record is the header
// row; every later record becomes one item keyed by header. Blank cells
// are omitted so downstream validity checks see absent fields, not empty
// strings. Headers keep their original spelling since item lookups are
// case-insensitive anyway.
func ReadRows(r io.Reader) ([]item.Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var rows []item.Item
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		row := make(item.Item, len(header))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			row[strings.TrimSpace(header[i])] = cell
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ReadFile reads a CSV file into items.
func ReadFile(path string) ([]item.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRows(f)
}

// WriteRows renders items back to CSV under the given column order.
// Columns absent from an item come out empty.
func WriteRows(w io.Writer, columns []string, rows []item.Item) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row.Field(col)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes items to a CSV file under the given column order.
func WriteFile(path string, columns []string, rows []item.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return WriteRows(f, columns, rows)
}

// Columns collects the union of field names across rows, with lifecycle
// bookkeeping fields pushed to the end. Items are unordered maps, so
// within a row the names come out sorted.
func Columns(rows []item.Item) []string {
	seen := make(map[string]bool)
	var cols, lifecycle []string
	for _, row := range rows {
		names := make([]string, 0, len(row))
		for k := range row {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			key := strings.TrimSpace(k)
			lower := strings.ToLower(key)
			if seen[lower] {
				continue
			}
			seen[lower] = true
			if isLifecycleField(key) {
				lifecycle = append(lifecycle, key)
			} else {
				cols = append(cols, key)
			}
		}
	}
	return append(cols, lifecycle...)
}

func isLifecycleField(name string) bool {
	switch {
	case strings.EqualFold(name, item.FieldLocalID),
		strings.EqualFold(name, item.FieldExecutionStatus),
		strings.EqualFold(name, item.FieldNotOKReason),
		strings.EqualFold(name, item.FieldPreparationStatus),
		strings.EqualFold(name, item.FieldIsReturned),
		strings.EqualFold(name, item.FieldReturnReason),
		strings.EqualFold(name, item.FieldReturnedBy),
		strings.EqualFold(name, item.FieldIsManualEntry):
		return true
	}
	return false
}
