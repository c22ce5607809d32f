package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"voiceorder-service/internal/fileio"
)

// ErrUnsupportedFormat: расширение файла каталога не поддерживается.
var ErrUnsupportedFormat = errors.New("catalog: unsupported format")

// ReadFile выбирает парсер по расширению: .json, .yaml/.yml, .csv, .xlsx, .xls.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read делает то же по уже открытому потоку; name нужен только для расширения.
func Read(r io.Reader, name string) (Document, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); {
	case ext == ".json":
		return ParseJSON(r)
	case ext == ".yaml" || ext == ".yml":
		return ParseYAML(r)
	case fileio.Supported(name):
		sh, err := fileio.Read(r, name, 1)
		if err != nil {
			return Document{}, fmt.Errorf("catalog: %w", err)
		}
		return FromSheet(sh), nil
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(name))
	}
}
