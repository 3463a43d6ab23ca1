package tilted

// Eval computes the value of the expression rooted at n. Binary nodes
// evaluate their left operand before their right, and the first error stops
// evaluation. The only errors are *ArithError for integer division by zero
// and integer overflow; float operations follow IEEE-754 instead.
func (n *Node) Eval() (Number, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeNeg:
		x, err := n.left.Eval()
		if err != nil {
			return Number{}, err
		}
		return x.Neg()
	case nodeNop:
		return n.left.Eval()
	case nodeCall:
		x, err := n.left.Eval()
		if err != nil {
			return Number{}, err
		}
		return Float(n.fn.Call(x.Float64())), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		x, err := n.left.Eval()
		if err != nil {
			return Number{}, err
		}
		y, err := n.right.Eval()
		if err != nil {
			return Number{}, err
		}
		switch n.kind {
		case nodeAdd:
			return x.Add(y)
		case nodeSub:
			return x.Sub(y)
		case nodeMul:
			return x.Mul(y)
		case nodeDiv:
			return x.Div(y)
		default:
			return x.Pow(y)
		}
	default:
		panic("tilted: invalid AST node " + n.kind.String())
	}
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string) (Number, error) {
	n, err := Parse(src)
	if err != nil {
		return Number{}, err
	}
	return n.Eval()
}
