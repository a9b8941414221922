// Package ingest turns uploaded workbook bytes into header-keyed rows.
// Only the first sheet is read; the first row is the header row.
package ingest

import (
	"bytes"
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyWorkbook = errors.New("workbook has no data rows")

// Rows parses an xlsx payload and returns one map per data row, keyed by
// the trimmed header cells. Rows whose cells are all blank are skipped.
func Rows(content []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) < 2 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var v string
			if i < len(cells) {
				v = strings.TrimSpace(cells[i])
			}
			if v != "" {
				empty = false
			}
			row[header] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}
	return rows, nil
}
