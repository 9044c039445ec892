package service

import (
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/marcboeker/go-duckdb"
)

// normalizeValue converts scanned DuckDB values into something
// encoding/json can always marshal.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		if utf8.Valid(val) {
			return string(val)
		}
		return val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil
		}
		return val
	case *big.Int:
		if val == nil {
			return nil
		}
		return val.String()
	case duckdb.Decimal:
		return val.Float64()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case duckdb.Map:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// uuidString renders a scanned UUID value in its canonical text form.
func uuidString(v any) any {
	switch val := v.(type) {
	case []byte:
		if id, err := uuid.FromBytes(val); err == nil {
			return id.String()
		}
	case [16]byte:
		return uuid.UUID(val).String()
	case string:
		return val
	}
	return normalizeValue(v)
}
