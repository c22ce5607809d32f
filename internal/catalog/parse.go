package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"voiceorder-service/internal/utils"
)

// ParseJSON читает {"menu": {section: [...]}} либо {section: [...]}.
// Порядок разделов и позиций сохраняется.
func ParseJSON(r io.Reader) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("catalog: read json: %w", err)
	}

	body := json.RawMessage(raw)
	var nested json.RawMessage
	err = utils.EachField(raw, func(k string, v json.RawMessage) error {
		if k == "menu" && nested == nil && !utils.IsArray(v) {
			nested = v
		}
		return nil
	})
	if err != nil {
		return Document{}, fmt.Errorf("catalog: parse json: %w", err)
	}
	if nested != nil {
		body = nested
	}

	var doc Document
	err = utils.EachField(body, func(name string, v json.RawMessage) error {
		if !utils.IsArray(v) {
			doc.SkippedSections++
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			doc.SkippedSections++
			return nil
		}
		sec := Section{Name: name}
		for _, it := range items {
			var e Entry
			if err := json.Unmarshal(it, &e); err != nil {
				sec.Skipped++
				continue
			}
			sec.Entries = append(sec.Entries, e)
		}
		doc.Sections = append(doc.Sections, sec)
		return nil
	})
	if err != nil {
		return Document{}, fmt.Errorf("catalog: parse json: %w", err)
	}
	return doc, nil
}

// ParseYAML делает то же для YAML (yaml.Node хранит порядок ключей).
func ParseYAML(r io.Reader) (Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = top.Content[0]
	}
	if top.Kind != yaml.MappingNode {
		return Document{}, fmt.Errorf("catalog: parse yaml: top level is not a mapping")
	}
	if m := mappingValue(top, "menu"); m != nil && m.Kind == yaml.MappingNode {
		top = m
	}

	var doc Document
	for i := 0; i+1 < len(top.Content); i += 2 {
		name, val := top.Content[i].Value, top.Content[i+1]
		if val.Kind != yaml.SequenceNode {
			doc.SkippedSections++
			continue
		}
		sec := Section{Name: name}
		for _, it := range val.Content {
			var e Entry
			if it.Kind != yaml.MappingNode || it.Decode(&e) != nil {
				sec.Skipped++
				continue
			}
			sec.Entries = append(sec.Entries, e)
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
