package tilted

import "strings"

// Node is a node in the abstract syntax tree of an expression. Each node
// exclusively owns its children, and trees are never modified after they are
// built.
type Node struct {
	kind nodeKind

	num Number
	fn  Function

	left  *Node
	right *Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // num

	nodeNeg  // evaluate left, then negate
	nodeNop  // evaluate left
	nodeCall // evaluate left, then apply fn

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=nodeKind -trimprefix=node

// Plain creates a leaf node holding a number.
func Plain(x Number) *Node {
	return &Node{kind: nodeNum, num: x}
}

// Neg creates a node negating its operand.
func Neg(x *Node) *Node {
	return &Node{kind: nodeNeg, left: x}
}

// Iden creates a node evaluating to its operand unchanged.
func Iden(x *Node) *Node {
	return &Node{kind: nodeNop, left: x}
}

// Call creates a node applying a function to its operand.
func Call(fn Function, x *Node) *Node {
	return &Node{kind: nodeCall, fn: fn, left: x}
}

// Add creates a node adding two operands.
func Add(x, y *Node) *Node {
	return &Node{kind: nodeAdd, left: x, right: y}
}

// Sub creates a node subtracting y from x.
func Sub(x, y *Node) *Node {
	return &Node{kind: nodeSub, left: x, right: y}
}

// Mul creates a node multiplying two operands.
func Mul(x, y *Node) *Node {
	return &Node{kind: nodeMul, left: x, right: y}
}

// Div creates a node dividing x by y.
func Div(x, y *Node) *Node {
	return &Node{kind: nodeDiv, left: x, right: y}
}

// Pow creates a node raising x to the power y.
func Pow(x, y *Node) *Node {
	return &Node{kind: nodePow, left: x, right: y}
}

// String formats the tree with every term bracketed, alternating round and
// square brackets by depth.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(n.num.String())
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeCall:
		b.WriteString(n.fn.Name())
		n.left.fmt(b, !square)
	case nodeAdd:
		n.binfmt(b, " + ", square)
	case nodeSub:
		n.binfmt(b, " - ", square)
	case nodeMul:
		n.binfmt(b, " * ", square)
	case nodeDiv:
		n.binfmt(b, " / ", square)
	case nodePow:
		n.binfmt(b, " ^ ", square)
	default:
		panic("tilted: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *Node) binfmt(b *strings.Builder, op string, square bool) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
