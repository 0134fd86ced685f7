package calculator

import (
	"strconv"

	"github.com/meghashyamc/vectorcalc/geometry"
	"github.com/shopspring/decimal"
)

type operation struct {
	arity int
	usage string
	run   func(c *Calculator, args []string) (string, error)
}

var operations = map[string]operation{
	"magnitude": unary(func(_ *Calculator, v geometry.Vector) (string, error) {
		return formatDecimal(v.Magnitude()), nil
	}),
	"normalize": unary(func(_ *Calculator, v geometry.Vector) (string, error) {
		return vectorResult(v.Normalize())
	}),
	"is-zero": unary(func(_ *Calculator, v geometry.Vector) (string, error) {
		return strconv.FormatBool(v.IsZero()), nil
	}),
	"equal": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return strconv.FormatBool(a.Equal(b)), nil
	}),
	"plus": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return vectorResult(a.Plus(b))
	}),
	"minus": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return vectorResult(a.Minus(b))
	}),
	"scale": {
		arity: 2,
		usage: "<vector> <scalar>",
		run: func(c *Calculator, args []string) (string, error) {
			v, err := c.parseVector(args[0])
			if err != nil {
				return "", err
			}
			factor, err := geometry.ToDecimal(args[1])
			if err != nil {
				return "", err
			}
			return v.TimesScalar(factor).String(), nil
		},
	},
	"dot": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return decimalResult(a.DotProduct(b))
	}),
	"angle-rad": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return floatResult(a.AngleRadians(b))
	}),
	"angle-deg": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return floatResult(a.AngleDegrees(b))
	}),
	"parallel": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return boolResult(a.IsParallel(b))
	}),
	"parallel-within": binary(func(c *Calculator, a, b geometry.Vector) (string, error) {
		return boolResult(a.IsParallelWithin(b, c.tolerance))
	}),
	"orthogonal": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return boolResult(a.IsOrthogonal(b))
	}),
	"project": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return vectorResult(a.ProjectedOnto(b))
	}),
	"orthogonal-component": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return vectorResult(a.OrthogonalComponent(b))
	}),
	"cross": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return vectorResult(a.CrossProduct(b))
	}),
	"area-parallelogram": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return decimalResult(a.AreaParallelogram(b))
	}),
	"area-triangle": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return decimalResult(a.AreaTriangle(b))
	}),
	"reflect": binary(func(_ *Calculator, a, b geometry.Vector) (string, error) {
		return vectorResult(a.Reflect(b))
	}),
	"distance": {
		arity: 3,
		usage: "<point> <line-start> <line-end>",
		run: func(c *Calculator, args []string) (string, error) {
			vectors, err := c.parseVectors(args)
			if err != nil {
				return "", err
			}
			return decimalResult(geometry.DistanceToLine(vectors[0], vectors[1], vectors[2]))
		},
	},
}

func unary(fn func(c *Calculator, v geometry.Vector) (string, error)) operation {
	return operation{
		arity: 1,
		usage: "<vector>",
		run: func(c *Calculator, args []string) (string, error) {
			v, err := c.parseVector(args[0])
			if err != nil {
				return "", err
			}
			return fn(c, v)
		},
	}
}

func binary(fn func(c *Calculator, a, b geometry.Vector) (string, error)) operation {
	return operation{
		arity: 2,
		usage: "<vector> <vector>",
		run: func(c *Calculator, args []string) (string, error) {
			vectors, err := c.parseVectors(args)
			if err != nil {
				return "", err
			}
			return fn(c, vectors[0], vectors[1])
		},
	}
}

func vectorResult(v geometry.Vector, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func decimalResult(d decimal.Decimal, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return formatDecimal(d), nil
}

func floatResult(f float64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return formatFloat(f), nil
}

func boolResult(b bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b), nil
}
