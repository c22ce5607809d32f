package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject: значение не является JSON-объектом.
var ErrNotObject = errors.New("json: not an object")

// EachField обходит поля JSON-объекта в порядке документа
// (map[string]... порядок теряет, а он важен для меню и корзины).
func EachField(raw []byte, fn func(key string, val json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotObject
	}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("json: unexpected key token %v", kt)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("json: field %q: %w", key, err)
		}
		if err := fn(key, val); err != nil {
			return err
		}
	}
	_, err = dec.Token() // '}'
	return err
}

// IsArray: грубая проверка, что значение начинается с '['.
func IsArray(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
