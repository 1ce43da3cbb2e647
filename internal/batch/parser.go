package batch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

type Entry struct {
	Source string `mapstructure:"source"`
	Expect *int64 `mapstructure:"expect"`
}

type Batch struct {
	Entries []Entry
}

type batchDef struct {
	Expressions []any `json:"expressions"`
}

func ParseYAML(r io.Reader) (*Batch, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	return ParseJSON(bytes.NewReader(jsonBytes))
}

func ParseJSON(r io.Reader) (*Batch, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var def batchDef
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	return def.compile()
}

func (d *batchDef) compile() (*Batch, error) {
	if len(d.Expressions) == 0 {
		return nil, fmt.Errorf("expressions is required in batch")
	}

	b := &Batch{Entries: make([]Entry, len(d.Expressions))}
	for i, expr := range d.Expressions {
		switch v := expr.(type) {
		case string:
			b.Entries[i] = Entry{Source: v}

		case map[string]any:
			m, err := decodeJSONNumberRecursive(v)
			if err != nil {
				return nil, fmt.Errorf("expressions[%d]: %w", i, err)
			}

			var entry Entry
			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				ErrorUnused: true,
				Result:      &entry,
			})
			if err != nil {
				return nil, fmt.Errorf("mapstructure.NewDecoder: %w", err)
			}
			if err := decoder.Decode(m); err != nil {
				return nil, fmt.Errorf("expressions[%d]: %w", i, err)
			}
			if _, ok := v["source"]; !ok {
				return nil, fmt.Errorf("expressions[%d]: source is required", i)
			}
			b.Entries[i] = entry

		default:
			return nil, fmt.Errorf("expressions[%d]: invalid type %T", i, expr)
		}
	}
	return b, nil
}
