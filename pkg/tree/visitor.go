package tree

// Visitor has one method per node kind. Node.Accept calls the method matching
// the node's kind; implementations recurse with AcceptChildren.
type Visitor interface {
	VisitProperties(n *Properties)
	VisitProperty(n *Property)
	VisitKey(n *Key)
	VisitValue(n *Value)
	VisitToken(n *Token)
}

// AcceptChildren dispatches every present child of n to v, in order.
func AcceptChildren(n Node, v Visitor) {
	for _, child := range n.Children() {
		if child != nil {
			child.Accept(v)
		}
	}
}

// Walk traverses a tree depth-first in source order and calls fn for each
// node. If fn returns false, the node's children are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}

// Tokens returns the tokens under n in source order.
func Tokens(n Node) []*Token {
	var out []*Token
	Walk(n, func(node Node) bool {
		if t, ok := node.(*Token); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
