package batch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

func decodeJSONNumberRecursive(v any) (any, error) {
	switch vv := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(vv))
		for key, value := range vv {
			var err error
			m[key], err = decodeJSONNumberRecursive(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
		return m, nil

	case []any:
		s := make([]any, len(vv))
		for i, value := range vv {
			var err error
			s[i], err = decodeJSONNumberRecursive(value)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return s, nil

	case json.Number:
		return decodeJSONNumber(vv)

	default:
		return v, nil
	}
}

// integers stay int64, anything with a fraction or exponent is rejected
func decodeJSONNumber(n json.Number) (any, error) {
	if strings.ContainsAny(n.String(), ".eE") {
		return nil, fmt.Errorf("not an integer: %s", n)
	}
	i, err := n.Int64()
	if errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("integer out of range: %s", n)
	} else if err != nil {
		return nil, err
	}
	return i, nil
}
