package geometry

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ToDecimal converts a single numeric-like value (integers, floats, numeric
// strings, decimals, big integers or anything cast can render as a string)
// into a decimal.
func ToDecimal(value any) (decimal.Decimal, error) {
	switch x := value.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, fmt.Errorf("%w: nil decimal", ErrInvalidArgument)
		}
		return *x, nil
	case *big.Int:
		if x == nil {
			return decimal.Zero, fmt.Errorf("%w: nil big.Int", ErrInvalidArgument)
		}
		return decimal.NewFromBigInt(x, 0), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, x)
		}
		return d, nil
	case int, int8, int16, int32, int64:
		n, err := cast.ToInt64E(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return decimal.NewFromInt(n), nil
	case uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToUint64E(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero, fmt.Errorf("%w: %v is not a finite number", ErrInvalidArgument, x)
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, fmt.Errorf("%w: %v is not a finite number", ErrInvalidArgument, x)
		}
		return decimal.NewFromFloat(x), nil
	case bool, nil:
		return decimal.Zero, fmt.Errorf("%w: %v is not a number", ErrInvalidArgument, x)
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot convert %T to a decimal", ErrInvalidArgument, value)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, s)
	}
	return d, nil
}

// FromValues builds a vector from any slice or array of numeric-like values
// using DefaultPrecision.
func FromValues(values any) (Vector, error) {
	return FromValuesWithPrecision(DefaultPrecision, values)
}

func FromValuesWithPrecision(precision int32, values any) (Vector, error) {
	rv := reflect.ValueOf(values)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return Vector{}, fmt.Errorf("%w: coordinates must be a sequence", ErrInvalidArgument)
	}
	if rv.Len() == 0 {
		return Vector{}, fmt.Errorf("%w: coordinates must be nonempty", ErrInvalidArgument)
	}

	coords := make([]decimal.Decimal, rv.Len())
	for i := range coords {
		d, err := ToDecimal(rv.Index(i).Interface())
		if err != nil {
			return Vector{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = d
	}

	return newVector(precision, coords)
}
