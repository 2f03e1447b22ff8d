package uncert

import "math"

// Number is the arithmetic capability generic numerical code is written
// against: addition, multiplication, real powers, and base-10
// exponentiation, each returning a new scalar of the same type.
type Number[T any] interface {
	// Add returns the sum with another scalar.
	Add(T) T
	// Mul returns the product with another scalar.
	Mul(T) T
	// AddReal returns the sum with an exact constant.
	AddReal(float64) T
	// MulReal returns the product with an exact constant.
	MulReal(float64) T
	// PowReal raises the scalar to an exact real power.
	PowReal(float64) T
	// Exp10 returns 10 raised to the scalar.
	Exp10() T
}

// Real is a plain float64 satisfying [Number] with no propagation
// overhead.
type Real float64

func (r Real) Add(o Real) Real        { return r + o }
func (r Real) Mul(o Real) Real        { return r * o }
func (r Real) AddReal(c float64) Real { return r + Real(c) }
func (r Real) MulReal(c float64) Real { return r * Real(c) }
func (r Real) PowReal(p float64) Real { return Real(math.Pow(float64(r), p)) }
func (r Real) Exp10() Real            { return Real(math.Pow(10, float64(r))) }

// Value is a measurement with a standard error. Every operation
// propagates the error to first order, treating operands as
// uncorrelated; independent contributions combine in quadrature.
type Value struct {
	Val float64
	Err float64
}

// New returns a Value with the given central value and standard error.
// A negative error is folded to its magnitude.
func New(val, err float64) Value {
	return Value{Val: val, Err: math.Abs(err)}
}

// Exact returns a Value with zero uncertainty.
func Exact(val float64) Value {
	return Value{Val: val}
}

// Relative returns Err/|Val|, or 0 when the central value is zero.
func (v Value) Relative() float64 {
	if v.Val == 0 {
		return 0
	}

	return v.Err / math.Abs(v.Val)
}

// Add returns v + o with errors combined in quadrature.
func (v Value) Add(o Value) Value {
	return Value{Val: v.Val + o.Val, Err: math.Hypot(v.Err, o.Err)}
}

// Mul returns v·o; the error terms v.Err·o.Val and o.Err·v.Val combine
// in quadrature.
func (v Value) Mul(o Value) Value {
	return Value{
		Val: v.Val * o.Val,
		Err: math.Hypot(v.Err*o.Val, o.Err*v.Val),
	}
}

// AddReal shifts the central value by an exact constant.
func (v Value) AddReal(c float64) Value {
	return Value{Val: v.Val + c, Err: v.Err}
}

// MulReal scales both the central value and the error by an exact
// constant.
func (v Value) MulReal(c float64) Value {
	return Value{Val: v.Val * c, Err: math.Abs(c) * v.Err}
}

// PowReal returns v^p with error |p·v^(p−1)|·Err.
func (v Value) PowReal(p float64) Value {
	val := math.Pow(v.Val, p)

	return Value{Val: val, Err: math.Abs(p*math.Pow(v.Val, p-1)) * v.Err}
}

// Exp10 returns 10^v with error ln(10)·10^v·Err.
func (v Value) Exp10() Value {
	val := math.Pow(10, v.Val)

	return Value{Val: val, Err: math.Ln10 * val * v.Err}
}
