package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// старые .xls-меню бывают в cp1252 и реже в utf-8
var xlsCharsets = []string{"utf-8", "windows-1252", "iso-8859-1"}

func readXLS(r io.Reader, headerRow int) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range xlsCharsets {
		wb, lastErr = xls.OpenReader(bytes.NewReader(b), ch)
		if lastErr == nil && wb != nil {
			break
		}
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	// ширину фиксируем сами: Row.LastCol() у xls ненадёжен
	width := sheetWidth(sheet, headerRow)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		cols := make([]string, width)
		if row := sheet.Row(i); row != nil {
			for j := 0; j < width; j++ {
				cols[j] = cellText(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

// ширина = самая правая непустая ячейка в шапке и ниже
func sheetWidth(sheet *xls.WorkSheet, headerRow int) int {
	const probeMax = 64
	width := 0
	start := headerRow - 1
	if start < 0 {
		start = 0
	}
	for i := start; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := width; j < probeMax; j++ {
			if cellText(row.Col(j)) != "" {
				width = j + 1
			}
		}
	}
	if width == 0 {
		width = 1
	}
	return width
}

func cellText(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s))
}
