package fileio

import (
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// первый лист книги
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(f.GetSheetName(0))
}
