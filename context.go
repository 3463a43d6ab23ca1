package tilted

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context evaluates expressions with arbitrary-precision floats instead of
// the integer and float64 Numbers that Node.Eval uses. It is not safe to use
// a Context concurrently.
//
// Values in a Context have no integer variant, so there is no integer
// division: 7/2 is 3.5, and 1/0 is +Inf. Since big.Float cannot represent
// NaN, operations without a real result, like 0/0 or asin(2), produce a
// *DomainError instead.
type Context struct {
	stack []*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{prec: ctx.prec}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			n.prec = uint(opt)
		default:
			panic("tilted: unknown option type")
		}
	}
	if n.prec == 0 {
		n.prec = 64
	}
	return &n
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates an expression and returns the result. If an error occurs,
// then the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(n *Node) *big.Float {
	// The previous result belongs to the caller now.
	ctx.stack = ctx.stack[:cap(ctx.stack)]
	if len(ctx.stack) > 0 {
		ctx.stack[0] = nil
	}
	ctx.stack = ctx.stack[:0]
	ctx.err = ctx.run(n)
	if ctx.err != nil {
		return nil
	}
	return ctx.Result()
}

// run evaluates n, converting NaN panics from package big into errors.
func (ctx *Context) run(n *Node) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		nan, ok := r.(big.ErrNaN)
		if !ok {
			panic(r)
		}
		err = &DomainError{Func: nan.Error()}
	}()
	return n.evalctx(ctx)
}

// Result returns the result obtained after evaluating an expression. Panics
// if ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("tilted: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("tilted: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred during the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// evalctx pushes the node's value to the context's stack.
func (n *Node) evalctx(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		r := ctx.push()
		if n.num.IsInt() {
			r.SetInt(n.num.int())
		} else {
			if math.IsNaN(n.num.f) {
				return &DomainError{Func: "literal"}
			}
			r.SetFloat64(n.num.f)
		}
	case nodeNeg:
		if err := n.left.evalctx(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
	case nodeNop:
		if err := n.left.evalctx(ctx); err != nil {
			return err
		}
	case nodeCall:
		if err := n.left.evalctx(ctx); err != nil {
			return err
		}
		v := ctx.top()
		x, _ := v.Float64()
		y := n.fn.Call(x)
		if math.IsNaN(y) {
			return &DomainError{X: new(big.Float).Copy(v), Func: n.fn.Name()}
		}
		v.SetFloat64(y)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		if err := n.left.evalctx(ctx); err != nil {
			return err
		}
		if err := n.right.evalctx(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		switch n.kind {
		case nodeAdd:
			// Guard against inf + -inf.
			if l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit() {
				return &DomainError{X: new(big.Float).Copy(r), Func: "+"}
			}
			l.Add(l, r)
		case nodeSub:
			if l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit() {
				return &DomainError{X: new(big.Float).Copy(r), Func: "-"}
			}
			l.Sub(l, r)
		case nodeMul:
			if l.IsInf() && r.Sign() == 0 || l.Sign() == 0 && r.IsInf() {
				return &DomainError{X: new(big.Float).Copy(r), Func: "*"}
			}
			l.Mul(l, r)
		case nodeDiv:
			// Guard against invalid divisions, 0/0 or inf/inf.
			if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
				return &DomainError{X: new(big.Float).Copy(r), Func: "/"}
			}
			l.Quo(l, r)
		default:
			return pow(l, l, r)
		}
	default:
		panic("tilted: invalid AST node " + n.kind.String())
	}
	return nil
}

// pow sets z to x**y. z may alias x.
func pow(z, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
	case x.IsInf() || y.IsInf():
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		r := math.Pow(xf, yf)
		if math.IsNaN(r) {
			return &DomainError{X: new(big.Float).Copy(x), Func: "^"}
		}
		z.SetFloat64(r)
	case x.Sign() == 0:
		if y.Sign() > 0 {
			z.SetInt64(0)
		} else {
			z.SetInf(false)
		}
	case x.Signbit():
		// Negative bases only have real powers for integer exponents.
		if !y.IsInt() {
			return &DomainError{X: new(big.Float).Copy(x), Func: "^"}
		}
		k, _ := y.Int(nil)
		z.Neg(x)
		bigfloat.Pow(z, z, y)
		if k.Bit(0) != 0 {
			z.Neg(z)
		}
	default:
		bigfloat.Pow(z, x, y)
	}
	return nil
}

// ErrDomain is the error kind for operations without a real result in
// precise evaluation.
var ErrDomain = errors.New("outside domain")

// DomainError is an error returned when an operation in a Context has no real
// result. DomainError unwraps to ErrDomain.
type DomainError struct {
	// X is the out-of-domain argument, if there is a single one.
	X *big.Float
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	if err.X == nil {
		return "no real result for " + err.Func
	}
	return err.X.String() + " " + ErrDomain.Error() + " of " + err.Func
}

func (err *DomainError) Unwrap() error {
	return ErrDomain
}
