package tilted

import "math"

// Function is a built-in trigonometric function. Functions always operate on
// and produce floats.
type Function int8

const (
	FuncSin Function = iota
	FuncCos
	FuncTan
	FuncCsc
	FuncSec
	FuncCot
	FuncAsin
	FuncAcos
	FuncAtan
	FuncAcsc
	FuncAsec
	FuncAcot
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=Function -trimprefix=Func

var funcnames = [...]string{
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncTan:  "tan",
	FuncCsc:  "csc",
	FuncSec:  "sec",
	FuncCot:  "cot",
	FuncAsin: "asin",
	FuncAcos: "acos",
	FuncAtan: "atan",
	FuncAcsc: "acsc",
	FuncAsec: "asec",
	FuncAcot: "acot",
}

// globalfuncs maps function names as written in source to functions. Names
// are case-sensitive.
var globalfuncs = func() map[string]Function {
	m := make(map[string]Function, len(funcnames))
	for f, name := range funcnames {
		m[name] = Function(f)
	}
	return m
}()

// LookupFunc returns the function with the given source name.
func LookupFunc(name string) (Function, bool) {
	f, ok := globalfuncs[name]
	return f, ok
}

// Name returns the source name of the function, e.g. "asin".
func (f Function) Name() string {
	if f < 0 || int(f) >= len(funcnames) {
		panic("tilted: invalid function " + f.String())
	}
	return funcnames[f]
}

// Call evaluates the function at x. Arguments outside the function's domain
// give NaN, and poles give infinities, as with package math.
func (f Function) Call(x float64) float64 {
	switch f {
	case FuncSin:
		return math.Sin(x)
	case FuncCos:
		return math.Cos(x)
	case FuncTan:
		return math.Tan(x)
	case FuncCsc:
		return 1 / math.Sin(x)
	case FuncSec:
		return 1 / math.Cos(x)
	case FuncCot:
		return 1 / math.Tan(x)
	case FuncAsin:
		return math.Asin(x)
	case FuncAcos:
		return math.Acos(x)
	case FuncAtan:
		return math.Atan(x)
	case FuncAcsc:
		return math.Asin(1 / x)
	case FuncAsec:
		return math.Acos(1 / x)
	case FuncAcot:
		return math.Atan(1 / x)
	default:
		panic("tilted: invalid function " + f.String())
	}
}
