package tilted

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// Number is a value computed by an expression. A Number is either an exact
// integer in the range of a 128-bit two's complement integer or a float64.
// The zero value is the integer 0.
//
// Numbers are immutable. Arithmetic between two integers produces an integer
// except where the result cannot be one, i.e. exponentiation with a negative
// exponent. Arithmetic involving a float promotes the integer operand first.
type Number struct {
	// flt indicates the float variant.
	flt bool
	// i is the integer value. nil means 0. It is never modified after the
	// Number is created.
	i *big.Int
	// f is the float value.
	f float64
}

var (
	// MaxInt and MinInt are the bounds of integer Numbers.
	MaxInt = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	MinInt = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	bigzero = new(big.Int)
	bigone  = big.NewInt(1)
	maxexp  = big.NewInt(127)
)

// Int creates an integer Number.
func Int(x int64) Number {
	return Number{i: big.NewInt(x)}
}

// Uint creates an integer Number from an unsigned value, such as an integer
// literal.
func Uint(x uint64) Number {
	return Number{i: new(big.Int).SetUint64(x)}
}

// FromBig creates an integer Number from a copy of x. The result is an error
// wrapping ErrOverflow if x does not fit in 128 bits.
func FromBig(x *big.Int) (Number, error) {
	if !fits(x) {
		return Number{}, &ArithError{Op: "int", Err: ErrOverflow}
	}
	return Number{i: new(big.Int).Set(x)}, nil
}

// Float creates a float Number.
func Float(x float64) Number {
	return Number{flt: true, f: x}
}

func fits(x *big.Int) bool {
	return x.Cmp(MinInt) >= 0 && x.Cmp(MaxInt) <= 0
}

func (x Number) int() *big.Int {
	if x.i == nil {
		return bigzero
	}
	return x.i
}

// IsInt returns whether x is an integer.
func (x Number) IsInt() bool {
	return !x.flt
}

// IsFloat returns whether x is a float.
func (x Number) IsFloat() bool {
	return x.flt
}

// Big returns a copy of the integer value of x. If x is a float, the result
// is nil.
func (x Number) Big() *big.Int {
	if x.flt {
		return nil
	}
	return new(big.Int).Set(x.int())
}

// Float64 returns x promoted to a float64. Integers are rounded to nearest.
func (x Number) Float64() float64 {
	if x.flt {
		return x.f
	}
	if x.int().IsInt64() {
		return float64(x.int().Int64())
	}
	f, _ := new(big.Float).SetInt(x.int()).Float64()
	return f
}

// Equal returns whether x and y are the same variant with the same value. As
// with float64 comparison, NaN is not equal to anything.
func (x Number) Equal(y Number) bool {
	if x.flt != y.flt {
		return false
	}
	if x.flt {
		return x.f == y.f
	}
	return x.int().Cmp(y.int()) == 0
}

// String formats x in base 10. Integers never have a decimal point. Floats use
// the shortest representation that round-trips.
func (x Number) String() string {
	if x.flt {
		return strconv.FormatFloat(x.f, 'g', -1, 64)
	}
	return x.int().String()
}

// result wraps an integer result, checking that it fits in 128 bits.
func result(op string, x, y Number, r *big.Int) (Number, error) {
	if !fits(r) {
		return Number{}, &ArithError{Op: op, X: x, Y: y, Err: ErrOverflow}
	}
	return Number{i: r}, nil
}

// Add returns x + y.
func (x Number) Add(y Number) (Number, error) {
	if x.flt || y.flt {
		return Float(x.Float64() + y.Float64()), nil
	}
	return result("+", x, y, new(big.Int).Add(x.int(), y.int()))
}

// Sub returns x - y.
func (x Number) Sub(y Number) (Number, error) {
	if x.flt || y.flt {
		return Float(x.Float64() - y.Float64()), nil
	}
	return result("-", x, y, new(big.Int).Sub(x.int(), y.int()))
}

// Mul returns x * y.
func (x Number) Mul(y Number) (Number, error) {
	if x.flt || y.flt {
		return Float(x.Float64() * y.Float64()), nil
	}
	return result("*", x, y, new(big.Int).Mul(x.int(), y.int()))
}

// Div returns x / y. Integer division truncates toward zero and fails with
// ErrDivisionByZero if y is 0. Float division follows IEEE-754, so dividing
// by zero gives an infinity or NaN.
func (x Number) Div(y Number) (Number, error) {
	if x.flt || y.flt {
		return Float(x.Float64() / y.Float64()), nil
	}
	if y.int().Sign() == 0 {
		return Number{}, &ArithError{Op: "/", X: x, Y: y, Err: ErrDivisionByZero}
	}
	return result("/", x, y, new(big.Int).Quo(x.int(), y.int()))
}

// Pow returns x raised to the power y. If both are integers and y is
// non-negative, the result is an exact integer, failing with ErrOverflow if it
// does not fit in 128 bits. Otherwise, the result is the float power, which is
// NaN for a negative base with a fractional exponent.
func (x Number) Pow(y Number) (Number, error) {
	if x.flt || y.flt || y.int().Sign() < 0 {
		return Float(math.Pow(x.Float64(), y.Float64())), nil
	}
	b, e := x.int(), y.int()
	switch {
	case e.Sign() == 0:
		return Int(1), nil
	case b.Sign() == 0, b.Cmp(bigone) == 0:
		return x, nil
	case b.IsInt64() && b.Int64() == -1:
		if e.Bit(0) == 0 {
			return Int(1), nil
		}
		return x, nil
	case e.Cmp(maxexp) > 0:
		// |b| >= 2, so the result needs more than 128 bits.
		return Number{}, &ArithError{Op: "^", X: x, Y: y, Err: ErrOverflow}
	}
	return result("^", x, y, new(big.Int).Exp(b, e, nil))
}

// Neg returns -x. The only failure is negating MinInt.
func (x Number) Neg() (Number, error) {
	if x.flt {
		return Float(-x.f), nil
	}
	r := new(big.Int).Neg(x.int())
	if !fits(r) {
		return Number{}, &ArithError{Op: "neg", X: x, Err: ErrOverflow}
	}
	return Number{i: r}, nil
}

var (
	// ErrDivisionByZero is the error kind for integer division by zero.
	ErrDivisionByZero = errors.New("integer division by zero")
	// ErrOverflow is the error kind for integer results that do not fit in
	// 128 bits.
	ErrOverflow = errors.New("integer overflow")
)

// ArithError is an error from integer arithmetic. It unwraps to
// ErrDivisionByZero or ErrOverflow.
type ArithError struct {
	// Op is the operation that failed: one of "+", "-", "*", "/", "^", "neg",
	// or "int" for a conversion.
	Op string
	// X and Y are the operands. Y is the zero Number for unary operations.
	X, Y Number
	// Err is the kind of failure.
	Err error
}

func (err *ArithError) Error() string {
	switch err.Op {
	case "neg":
		return err.Err.Error() + " in -" + err.X.String()
	case "int":
		return err.Err.Error()
	}
	return err.Err.Error() + " in " + err.X.String() + " " + err.Op + " " + err.Y.String()
}

func (err *ArithError) Unwrap() error {
	return err.Err
}
