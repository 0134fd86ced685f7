package geometry

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DistanceToLine calculates the shortest distance from a point to the line
// through lineStart and lineEnd.
func DistanceToLine(point, lineStart, lineEnd Vector) (decimal.Decimal, error) {
	// Vector from line start to end
	lineVec, err := lineEnd.Minus(lineStart)
	if err != nil {
		return decimal.Zero, err
	}
	if lineVec.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: line points coincide", ErrDomain)
	}
	// Vector from line start to point
	pointVec, err := point.Minus(lineStart)
	if err != nil {
		return decimal.Zero, err
	}

	perpendicular, err := pointVec.OrthogonalComponent(lineVec)
	if err != nil {
		return decimal.Zero, err
	}
	return perpendicular.Magnitude(), nil
}

// reflected = incident - 2*(incident·n)*n, with n the unit normal
func (v Vector) Reflect(normal Vector) (Vector, error) {
	if err := v.sameDimension(normal, "reflection"); err != nil {
		return Vector{}, err
	}
	unitNormal, err := Vector{coordinates: normal.coordinates, precision: v.Precision()}.Normalize()
	if err != nil {
		return Vector{}, err
	}
	dotProduct, err := v.DotProduct(unitNormal)
	if err != nil {
		return Vector{}, err
	}

	return v.Minus(unitNormal.TimesScalar(two.Mul(dotProduct)))
}
