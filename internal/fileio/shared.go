// Package fileio reads tabular catalog sheets (CSV, XLS, XLSX) into
// header-keyed records, keeping the sheet's row order.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported: расширение файла не поддерживается.
var ErrUnsupported = errors.New("fileio: unsupported file")

// Sheet: таблица после разбора шапки.
type Sheet struct {
	Header []string
	Rows   []map[string]string
}

// Supported сообщает, умеет ли пакет читать файл с таким именем.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xls", ".xlsx":
		return true
	}
	return false
}

// Read выберет парсер по расширению. headerRow, номер строки заголовков (1-based).
func Read(r io.Reader, filename string, headerRow int) (Sheet, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".xls":
		rows, err = readXLS(r, headerRow)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return Sheet{}, fmt.Errorf("%w: %s", ErrUnsupported, filename)
	}
	if err != nil {
		return Sheet{}, fmt.Errorf("fileio: %s: %w", filepath.Base(filename), err)
	}
	if len(rows) == 0 {
		return Sheet{}, nil
	}
	h := pickHeader(rows, headerRow)
	return Sheet{Header: h, Rows: rowsToMaps(rows, h, headerRow)}, nil
}

// pickHeader берёт строку заголовков и подставляет Column N для пустых.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff")) // BOM из Excel
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps: AoA → []map по заголовкам, полностью пустые строки пропускаются.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	start := headerRow
	if start < 1 {
		start = 1
	}
	var out []map[string]string
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = strings.TrimSpace(rec[c])
			}
			if v != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
