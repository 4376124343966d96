// workbook.go

package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Date layouts accepted in workbook date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a date in one of the layouts commonly found in exported
// sheets, in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ReadWorkbook reads one sheet of an xlsx file into columns. The first row
// holds dataset names, the first column holds dates, and every other column
// becomes a dataset. Empty cells are missing values. An empty sheet name
// selects the first sheet.
func ReadWorkbook(path, sheet string, loc *time.Location) ([]Column, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return columnsFromRows(rows, loc)
}

func columnsFromRows(rows [][]string, loc *time.Location) ([]Column, error) {
	if len(rows) < 1 || len(rows[0]) < 2 {
		return nil, fmt.Errorf("sheet needs a header row with a date column and at least one dataset")
	}
	header := rows[0]
	columns := make([]Column, len(header)-1)
	for i := range columns {
		columns[i] = Column{
			Name:   strings.TrimSpace(header[i+1]),
			Values: make(map[time.Time]float64),
		}
	}

	for r, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		date, err := ParseDate(row[0], loc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+2, err)
		}
		for c := range columns {
			cell := ""
			if c+1 < len(row) {
				cell = strings.TrimSpace(row[c+1])
			}
			if cell == "" {
				columns[c].Missing = append(columns[c].Missing, date)
				continue
			}
			v, err := ParseValue(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", r+2, columns[c].Name, err)
			}
			if strings.Contains(cell, ":") {
				columns[c].ValueType = Time
			}
			columns[c].Values[date] = v
		}
	}
	return columns, nil
}

// ParseValue reads a number, or an HH:MM[:SS] clock time as seconds after midnight.
func ParseValue(cell string) (float64, error) {
	if strings.Contains(cell, ":") {
		parts := strings.Split(cell, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return 0, fmt.Errorf("bad time value %q", cell)
		}
		total := 0.0
		for i, unit := range []float64{3600, 60, 1}[:len(parts)] {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return 0, fmt.Errorf("bad time value %q", cell)
			}
			total += float64(n) * unit
		}
		return total, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", cell)
	}
	return v, nil
}
