package geometry

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of significant digits kept in quotients.
// Sums, differences and products are exact.
const DefaultPrecision int32 = 28

// comparisonPlaces is how many decimal places dot products are rounded to
// before they are compared or fed into acos.
const comparisonPlaces = 3

var two = decimal.NewFromInt(2)

// Vector is an immutable, n-dimensional vector of decimal coordinates.
// The zero value is not a valid vector; use New or FromValues. Binary
// operations reject it with ErrInvalidArgument, and unary operations
// (TimesScalar, Neg) return another zero value.
type Vector struct {
	coordinates []decimal.Decimal
	precision   int32
}

// New creates a vector from the given coordinates using DefaultPrecision.
func New(coordinates ...decimal.Decimal) (Vector, error) {
	return NewWithPrecision(DefaultPrecision, coordinates...)
}

// NewWithPrecision creates a vector whose divisions keep precision
// significant digits.
func NewWithPrecision(precision int32, coordinates ...decimal.Decimal) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, fmt.Errorf("%w: coordinates must be nonempty", ErrInvalidArgument)
	}
	coords := make([]decimal.Decimal, len(coordinates))
	copy(coords, coordinates)
	return newVector(precision, coords)
}

// newVector takes ownership of coords.
func newVector(precision int32, coords []decimal.Decimal) (Vector, error) {
	if precision < 1 {
		return Vector{}, fmt.Errorf("%w: precision must be positive, got %d", ErrInvalidArgument, precision)
	}
	return Vector{coordinates: coords, precision: precision}, nil
}

// WithPrecision returns a copy of v whose divisions keep precision significant digits.
func (v Vector) WithPrecision(precision int32) (Vector, error) {
	return NewWithPrecision(precision, v.coordinates...)
}

// Precision returns the number of significant digits kept in quotients.
func (v Vector) Precision() int32 {
	if v.precision == 0 {
		return DefaultPrecision
	}
	return v.precision
}

// derive wraps coordinates computed by an operation on v.
func (v Vector) derive(coords []decimal.Decimal) Vector {
	return Vector{coordinates: coords, precision: v.Precision()}
}

// divide returns a/b with about v.Precision() significant digits.
func (v Vector) divide(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	places := v.Precision() - (leadingExponent(a) - leadingExponent(b))
	return a.DivRound(b, places)
}

// leadingExponent is the power of ten just above the most significant digit
// of d: 5 -> 1, 0.25 -> 0, 0.001 -> -2.
func leadingExponent(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coordinates)
}

// Len is the same as Dimension.
func (v Vector) Len() int {
	return len(v.coordinates)
}

// At returns the coordinate at index i.
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coordinates) {
		return decimal.Zero, fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfBounds, i, len(v.coordinates))
	}
	return v.coordinates[i], nil
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	coords := make([]decimal.Decimal, len(v.coordinates))
	copy(coords, v.coordinates)
	return coords
}

// All yields index/coordinate pairs in order. Each call returns an
// independent sequence.
func (v Vector) All() iter.Seq2[int, decimal.Decimal] {
	return func(yield func(int, decimal.Decimal) bool) {
		for i, c := range v.coordinates {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Values yields the coordinates in order.
func (v Vector) Values() iter.Seq[decimal.Decimal] {
	return func(yield func(decimal.Decimal) bool) {
		for _, c := range v.coordinates {
			if !yield(c) {
				return
			}
		}
	}
}

// String renders the vector with every coordinate rounded to 3 places,
// e.g. "Vector: [1.000, 2.000, 3.000]".
func (v Vector) String() string {
	parts := make([]string, len(v.coordinates))
	for i, c := range v.coordinates {
		parts[i] = c.StringFixedBank(comparisonPlaces)
	}
	return "Vector: [" + strings.Join(parts, ", ") + "]"
}

// Equal reports whether both vectors have the same dimension and
// numerically identical coordinates.
func (v Vector) Equal(other Vector) bool {
	if len(v.coordinates) != len(other.coordinates) {
		return false
	}
	for i, c := range v.coordinates {
		if !c.Equal(other.coordinates[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every coordinate is exactly zero.
func (v Vector) IsZero() bool {
	for _, c := range v.coordinates {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// IsNearZero reports whether every coordinate is within eps of zero.
func (v Vector) IsNearZero(eps float64) bool {
	for _, c := range v.coordinates {
		if !NearZero(c, eps) {
			return false
		}
	}
	return true
}

// NearZero reports whether |d| < eps.
func NearZero(d decimal.Decimal, eps float64) bool {
	return d.Abs().LessThan(decimal.NewFromFloat(eps))
}

func (v Vector) sameDimension(other Vector, op string) error {
	if len(v.coordinates) == 0 || len(other.coordinates) == 0 {
		return fmt.Errorf("%w: %s of an empty vector", ErrInvalidArgument, op)
	}
	if len(v.coordinates) != len(other.coordinates) {
		return fmt.Errorf("%w: %s of %d-dimensional and %d-dimensional vectors",
			ErrDimensionMismatch, op, len(v.coordinates), len(other.coordinates))
	}
	return nil
}

// Plus adds other to v coordinate by coordinate.
func (v Vector) Plus(other Vector) (Vector, error) {
	if err := v.sameDimension(other, "plus"); err != nil {
		return Vector{}, err
	}
	coords := make([]decimal.Decimal, len(v.coordinates))
	for i, c := range v.coordinates {
		coords[i] = c.Add(other.coordinates[i])
	}
	return v.derive(coords), nil
}

// Minus subtracts other from v coordinate by coordinate.
func (v Vector) Minus(other Vector) (Vector, error) {
	if err := v.sameDimension(other, "minus"); err != nil {
		return Vector{}, err
	}
	coords := make([]decimal.Decimal, len(v.coordinates))
	for i, c := range v.coordinates {
		coords[i] = c.Sub(other.coordinates[i])
	}
	return v.derive(coords), nil
}

// TimesScalar multiplies every coordinate by factor.
func (v Vector) TimesScalar(factor decimal.Decimal) Vector {
	coords := make([]decimal.Decimal, len(v.coordinates))
	for i, c := range v.coordinates {
		coords[i] = c.Mul(factor)
	}
	return v.derive(coords)
}

// Neg returns v pointing the opposite way.
func (v Vector) Neg() Vector {
	coords := make([]decimal.Decimal, len(v.coordinates))
	for i, c := range v.coordinates {
		coords[i] = c.Neg()
	}
	return v.derive(coords)
}

// Magnitude returns the Euclidean norm. Coordinates are scaled by the largest
// absolute coordinate so the float64 square root stays within range for any
// exponent; the scale is multiplied back in decimal.
func (v Vector) Magnitude() decimal.Decimal {
	largest := decimal.Zero
	for _, c := range v.coordinates {
		if c.Abs().GreaterThan(largest) {
			largest = c.Abs()
		}
	}
	if largest.IsZero() {
		return decimal.Zero
	}

	// every ratio is in [-1, 1], so the sum is at most the dimension
	sum := decimal.Zero
	for _, c := range v.coordinates {
		ratio := v.divide(c, largest)
		sum = sum.Add(ratio.Mul(ratio))
	}
	return largest.Mul(decimal.NewFromFloat(math.Sqrt(sum.InexactFloat64())))
}

// Normalize returns the unit vector pointing in the same direction as v.
func (v Vector) Normalize() (Vector, error) {
	magnitude := v.Magnitude()
	if magnitude.IsZero() {
		return Vector{}, fmt.Errorf("%w: cannot normalize the zero vector", ErrDomain)
	}
	return v.TimesScalar(v.divide(decimal.NewFromInt(1), magnitude)), nil
}

// DotProduct returns the exact sum of the coordinate-wise products.
func (v Vector) DotProduct(other Vector) (decimal.Decimal, error) {
	if err := v.sameDimension(other, "dot product"); err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for i, c := range v.coordinates {
		sum = sum.Add(c.Mul(other.coordinates[i]))
	}
	return sum, nil
}

// AngleRadians returns the angle between v and other. The dot product of the
// unit vectors is rounded to 3 places and clamped to [-1, 1] before acos.
func (v Vector) AngleRadians(other Vector) (float64, error) {
	if err := v.sameDimension(other, "angle"); err != nil {
		return 0, err
	}
	unitV, err := v.Normalize()
	if err != nil {
		return 0, err
	}
	unitOther, err := other.Normalize()
	if err != nil {
		return 0, err
	}
	dot, err := unitV.DotProduct(unitOther)
	if err != nil {
		return 0, err
	}

	// Clamp to [-1, 1] in case rounding still leaves acos out of its domain
	cosTheta := clampValue(dot.RoundBank(comparisonPlaces).InexactFloat64(), -1, 1)

	return math.Acos(cosTheta), nil
}

// AngleDegrees is AngleRadians converted to degrees.
func (v Vector) AngleDegrees(other Vector) (float64, error) {
	radians, err := v.AngleRadians(other)
	if err != nil {
		return 0, err
	}
	return radians * (180 / math.Pi), nil
}

// IsParallel reports whether v and other are parallel: either is the zero
// vector, or the angle between them is exactly 0 or exactly π.
func (v Vector) IsParallel(other Vector) (bool, error) {
	if err := v.sameDimension(other, "parallel test"); err != nil {
		return false, err
	}
	if v.IsZero() || other.IsZero() {
		return true, nil
	}
	angle, err := v.AngleRadians(other)
	if err != nil {
		return false, err
	}
	return angle == 0 || angle == math.Pi, nil
}

// IsParallelWithin is a tolerance-based parallel test: either vector is
// within eps of zero, or | |v·other| / (|v||other|) - 1 | <= eps, i.e.
// |v·other| matches |v||other| to a relative tolerance of eps. Unlike
// IsParallel it does not depend on the rounded angle.
func (v Vector) IsParallelWithin(other Vector, eps float64) (bool, error) {
	if err := v.sameDimension(other, "parallel test"); err != nil {
		return false, err
	}
	if v.IsZero() || other.IsZero() || v.IsNearZero(eps) || other.IsNearZero(eps) {
		return true, nil
	}
	dot, err := v.DotProduct(other)
	if err != nil {
		return false, err
	}
	cosTheta := v.divide(dot.Abs(), v.Magnitude().Mul(other.Magnitude()))
	return math.Abs(cosTheta.InexactFloat64()-1) <= eps, nil
}

// IsOrthogonal reports whether the dot product rounded to 3 places is zero.
func (v Vector) IsOrthogonal(other Vector) (bool, error) {
	dot, err := v.DotProduct(other)
	if err != nil {
		return false, err
	}
	return dot.RoundBank(comparisonPlaces).IsZero(), nil
}

// ProjectedOnto returns the component of v along the direction of basis.
func (v Vector) ProjectedOnto(basis Vector) (Vector, error) {
	if err := v.sameDimension(basis, "projection"); err != nil {
		return Vector{}, err
	}
	unit, err := Vector{coordinates: basis.coordinates, precision: v.Precision()}.Normalize()
	if err != nil {
		return Vector{}, err
	}
	weight, err := v.DotProduct(unit)
	if err != nil {
		return Vector{}, err
	}
	return unit.TimesScalar(weight), nil
}

// OrthogonalComponent returns the part of v perpendicular to basis.
func (v Vector) OrthogonalComponent(basis Vector) (Vector, error) {
	projection, err := v.ProjectedOnto(basis)
	if err != nil {
		return Vector{}, err
	}
	return v.Minus(projection)
}

// CrossProduct is only defined for 3-dimensional vectors.
func (v Vector) CrossProduct(other Vector) (Vector, error) {
	if len(v.coordinates) != 3 || len(other.coordinates) != 3 {
		return Vector{}, fmt.Errorf("%w: cross product needs two 3-dimensional vectors, got %d and %d",
			ErrDimensionMismatch, len(v.coordinates), len(other.coordinates))
	}
	x1, y1, z1 := v.coordinates[0], v.coordinates[1], v.coordinates[2]
	x2, y2, z2 := other.coordinates[0], other.coordinates[1], other.coordinates[2]

	return v.derive([]decimal.Decimal{
		y1.Mul(z2).Sub(y2.Mul(z1)),
		x1.Mul(z2).Sub(x2.Mul(z1)).Neg(),
		x1.Mul(y2).Sub(x2.Mul(y1)),
	}), nil
}

// AreaParallelogram returns the area of the parallelogram spanned by v and other.
func (v Vector) AreaParallelogram(other Vector) (decimal.Decimal, error) {
	cross, err := v.CrossProduct(other)
	if err != nil {
		return decimal.Zero, err
	}
	return cross.Magnitude(), nil
}

// AreaTriangle returns the area of the triangle spanned by v and other.
func (v Vector) AreaTriangle(other Vector) (decimal.Decimal, error) {
	area, err := v.AreaParallelogram(other)
	if err != nil {
		return decimal.Zero, err
	}
	return v.divide(area, two), nil
}
