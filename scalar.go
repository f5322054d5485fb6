package llfschema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AsInt reports v as an integer. Go integer kinds and integral json.Number
// text are accepted; floats never are, even when integral.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt(n)
	case json.Number:
		if isRealText(string(n)) {
			return 0, false
		}
		i, err := strconv.ParseInt(string(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func uintToInt(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// AsReal reports v as a real number. Integers are not accepted.
func AsReal(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		if !isRealText(string(n)) {
			return 0, false
		}
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	return 0, false
}

// AsNumber reports v as a float64 whether it is an integer or a real.
func AsNumber(v any) (float64, bool) {
	if f, ok := AsReal(v); ok {
		return f, true
	}
	if i, ok := AsInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

func isRealText(s string) bool { return strings.ContainsAny(s, ".eE") }

// Equal compares two scalars the way Literal and OneOf do: integers compare
// with integers, reals with reals, no cross-kind coercion.
func Equal(a, b any) bool {
	if ai, ok := AsInt(a); ok {
		bi, ok := AsInt(b)
		return ok && ai == bi
	}
	if af, ok := AsReal(a); ok {
		bf, ok := AsReal(b)
		return ok && af == bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return false
}

// kindOf names the primitive type of v for diagnostics.
func kindOf(v any) string {
	if _, ok := AsInt(v); ok {
		return KindInteger.String()
	}
	if _, ok := AsReal(v); ok {
		return KindReal.String()
	}
	switch v.(type) {
	case string:
		return KindText.String()
	case bool:
		return "boolean"
	case nil:
		return "null"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	}
	return "unknown"
}
