package calculator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/meghashyamc/vectorcalc/geometry"
	"github.com/meghashyamc/vectorcalc/logger"
	"github.com/shopspring/decimal"
)

const displayPlaces = 3

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArgCount         = errors.New("wrong number of arguments")
)

// Calculator runs named vector operations on raw coordinate lists.
type Calculator struct {
	precision int32
	tolerance float64
	logger    logger.Logger
}

// New creates a Calculator whose vectors keep precision significant digits in
// quotients and whose parallel-within test uses tolerance.
func New(precision int32, tolerance float64, log logger.Logger) (*Calculator, error) {
	if precision < 1 {
		return nil, fmt.Errorf("%w: precision must be positive, got %d", geometry.ErrInvalidArgument, precision)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: tolerance must not be negative, got %g", geometry.ErrInvalidArgument, tolerance)
	}

	return &Calculator{
		precision: precision,
		tolerance: tolerance,
		logger:    log,
	}, nil
}

// Operations returns the names accepted by Run, sorted.
func Operations() []string {
	return slices.Sorted(maps.Keys(operations))
}

// Usage returns the argument description for an operation.
func Usage(op string) (string, bool) {
	o, ok := operations[op]
	if !ok {
		return "", false
	}
	return o.usage, true
}

// Run parses args and applies the named operation, returning the formatted result.
func (c *Calculator) Run(op string, args ...string) (string, error) {
	o, ok := operations[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(args) != o.arity {
		return "", fmt.Errorf("%s: %w: expected %d (%s), got %d", op, ErrArgCount, o.arity, o.usage, len(args))
	}

	c.logger.Debug("running operation", "op", op, "args", args, "precision", c.precision)

	result, err := o.run(c, args)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	c.logger.Debug("operation finished", "op", op, "result", result)
	return result, nil
}

// ParseCoordinates splits a raw coordinate list such as "1, 2, 3" or
// "[1,2,3]" into its elements.
func ParseCoordinates(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	if len(strings.TrimSpace(trimmed)) == 0 {
		return nil, fmt.Errorf("%w: coordinates must be nonempty", geometry.ErrInvalidArgument)
	}

	parts := strings.Split(trimmed, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if len(parts[i]) == 0 {
			return nil, fmt.Errorf("%w: empty coordinate at position %d in %q", geometry.ErrInvalidArgument, i, raw)
		}
	}

	return parts, nil
}

func (c *Calculator) parseVector(raw string) (geometry.Vector, error) {
	parts, err := ParseCoordinates(raw)
	if err != nil {
		return geometry.Vector{}, err
	}
	return geometry.FromValuesWithPrecision(c.precision, parts)
}

func (c *Calculator) parseVectors(args []string) ([]geometry.Vector, error) {
	vectors := make([]geometry.Vector, len(args))
	for i, raw := range args {
		v, err := c.parseVector(raw)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		vectors[i] = v
	}
	return vectors, nil
}

func formatDecimal(d decimal.Decimal) string {
	return d.StringFixedBank(displayPlaces)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', displayPlaces, 64)
}
