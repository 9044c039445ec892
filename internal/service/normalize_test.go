package service

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	hugeint, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "utf8 bytes", input: []byte("abc"), expected: "abc"},
		{name: "binary bytes", input: []byte{0xff, 0xfe}, expected: []byte{0xff, 0xfe}},
		{name: "nan", input: math.NaN(), expected: nil},
		{name: "inf", input: math.Inf(1), expected: nil},
		{name: "float32 nan", input: float32(math.NaN()), expected: nil},
		{name: "plain float", input: 1.5, expected: 1.5},
		{name: "hugeint", input: hugeint, expected: "170141183460469231731687303715884105727"},
		{name: "nil hugeint", input: (*big.Int)(nil), expected: nil},
		{name: "int passthrough", input: int64(42), expected: int64(42)},
		{
			name:     "list",
			input:    []any{[]byte("x"), math.NaN(), int32(1)},
			expected: []any{"x", nil, int32(1)},
		},
		{
			name:     "struct",
			input:    map[string]any{"a": []byte("y")},
			expected: map[string]any{"a": "y"},
		},
		{
			name:     "map",
			input:    duckdb.Map{int32(1): "one"},
			expected: map[string]any{"1": "one"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeValue(tc.input))
		})
	}
}

func TestNormalizeValueDecimal(t *testing.T) {
	d := duckdb.Decimal{Width: 10, Scale: 2, Value: big.NewInt(12345)}
	assert.InDelta(t, 123.45, normalizeValue(d), 1e-9)
}

func TestNormalizedValuesMarshal(t *testing.T) {
	row := map[string]any{
		"nan":  normalizeValue(math.NaN()),
		"map":  normalizeValue(duckdb.Map{"k": []byte("v")}),
		"huge": normalizeValue(big.NewInt(7)),
	}
	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nan":null,"map":{"k":"v"},"huge":"7"}`, string(out))
}

func TestUUIDString(t *testing.T) {
	raw := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}
	var arr [16]byte
	copy(arr[:], raw)

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "raw bytes", input: raw, expected: "12345678-9abc-def0-1234-56789abcdef0"},
		{name: "array", input: arr, expected: "12345678-9abc-def0-1234-56789abcdef0"},
		{name: "text", input: "12345678-9abc-def0-1234-56789abcdef0", expected: "12345678-9abc-def0-1234-56789abcdef0"},
		{name: "null", input: nil, expected: nil},
		{name: "wrong length falls back", input: []byte("abc"), expected: "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, uuidString(tc.input))
		})
	}
}
