package fileio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestReadCSVSemicolon(t *testing.T) {
	src := "Section;Name;Price\nstarters;Samosa;$4.99\n;;\nbreads;Naan;\n"
	sh, err := Read(strings.NewReader(src), "menu.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Section", "Name", "Price"}, sh.Header)
	require.Len(t, sh.Rows, 2)
	assert.Equal(t, "Samosa", sh.Rows[0]["Name"])
	assert.Equal(t, "$4.99", sh.Rows[0]["Price"])
	assert.Equal(t, "", sh.Rows[1]["Price"])
}

func TestReadCSVQuotedComma(t *testing.T) {
	src := "name,price_options\n\"Gobi Manchurian\",\"gravy=$7.99, dry=$6.99\"\n"
	sh, err := Read(strings.NewReader(src), "menu.CSV", 1)
	require.NoError(t, err)
	require.Len(t, sh.Rows, 1)
	assert.Equal(t, "gravy=$7.99, dry=$6.99", sh.Rows[0]["price_options"])
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"name", "price"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Mango Lassi", "$3.99"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	sh, err := Read(&buf, "menu.xlsx", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, sh.Header)
	require.Len(t, sh.Rows, 1)
	assert.Equal(t, "Mango Lassi", sh.Rows[0]["name"])
	assert.Equal(t, "$3.99", sh.Rows[0]["price"])
}

func TestReadBlankHeaderCell(t *testing.T) {
	sh, err := Read(strings.NewReader("name,,price\nSamosa,x,$4.99\n"), "menu.csv", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "Column 2", "price"}, sh.Header)
	assert.Equal(t, "x", sh.Rows[0]["Column 2"])
}

func TestReadUnsupported(t *testing.T) {
	_, err := Read(strings.NewReader("x"), "menu.pdf", 1)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, Supported("menu.pdf"))
	assert.True(t, Supported("Menu.XLSX"))
}
