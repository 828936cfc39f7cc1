package binding

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"accessor-generator/primitive"
	"accessor-generator/utils"
)

var ErrLiteral = errors.New("invalid literal")

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// Coerce converts a manifest or command line literal to a value of type t.
// Numbers must fit t exactly; strings are parsed the way Go literals are,
// so "0x10", "1.5s" and RFC 3339 timestamps are accepted where they fit.
func Coerce(value any, t reflect.Type) (any, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: no value for %s", ErrLiteral, t)
	}

	if reflect.TypeOf(value) == t {
		return value, nil
	}

	switch t {
	case durationType:
		return coerceDuration(value)
	case timeType:
		return coerceTime(value)
	}

	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Bool:
		b, err := toBool(value)
		if err != nil {
			return nil, err
		}

		out.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt(value)
		if err != nil {
			return nil, err
		}

		if lo, hi := primitive.IntRange(t.Bits()); !utils.IsInRange(lo, n, hi) {
			return nil, fmt.Errorf("%w: %d overflows %s", ErrLiteral, n, t)
		}

		out.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := toUint(value)
		if err != nil {
			return nil, err
		}

		if lo, hi := primitive.UintRange(t.Bits()); !utils.IsInRange(lo, n, hi) {
			return nil, fmt.Errorf("%w: %d overflows %s", ErrLiteral, n, t)
		}

		out.SetUint(n)

	case reflect.UnsafePointer:
		n, err := toUint(value)
		if err != nil {
			return nil, err
		}

		out.SetPointer(unsafe.Pointer(uintptr(n))) //nolint:govet

	case reflect.Float32, reflect.Float64:
		f, err := toFloat(value)
		if err != nil {
			return nil, err
		}

		if t.Kind() == reflect.Float32 && !math.IsInf(f, 0) && !math.IsNaN(f) &&
			!utils.IsInRange(-math.MaxFloat32, f, math.MaxFloat32) {
			return nil, fmt.Errorf("%w: %g overflows %s", ErrLiteral, f, t)
		}

		out.SetFloat(f)

	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v is not a string", ErrLiteral, value)
		}

		out.SetString(s)

	default:
		return nil, fmt.Errorf("%w: no literals of type %s", ErrLiteral, t)
	}

	return out.Interface(), nil
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a bool", ErrLiteral, v)
		}

		return b, nil
	default:
		return false, fmt.Errorf("%w: %v is not a bool", ErrLiteral, value)
	}
}

func toInt(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrLiteral, v)
		}

		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %g is not an integer", ErrLiteral, v)
		}

		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrLiteral, v)
		}

		return n, nil
	default:
		return 0, fmt.Errorf("%w: %v is not an integer", ErrLiteral, value)
	}
}

func toUint(value any) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrLiteral, v)
		}

		return n, nil
	}

	n, err := toInt(value)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrLiteral, n)
	}

	return uint64(n), nil
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrLiteral, v)
		}

		return f, nil
	default:
		return 0, fmt.Errorf("%w: %v is not a number", ErrLiteral, value)
	}
}

func coerceDuration(value any) (any, error) {
	if s, ok := value.(string); ok {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a duration", ErrLiteral, s)
		}

		return d, nil
	}

	n, err := toInt(value)
	if err != nil {
		return nil, err
	}

	return time.Duration(n), nil
}

func coerceTime(value any) (any, error) {
	if s, ok := value.(string); ok {
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an RFC 3339 timestamp", ErrLiteral, s)
		}

		return ts, nil
	}

	n, err := toInt(value)
	if err != nil {
		return nil, err
	}

	return time.Unix(n, 0).UTC(), nil
}
