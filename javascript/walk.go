package javascript

// Visitor holds the callbacks a rule registers for one traversal. Enter
// fires on every node; the typed callbacks fire additionally for the
// shapes the rules care about.
type Visitor struct {
	Enter       func(Node)
	EnterImport func(*ImportDeclaration)
	EnterCall   func(*CallExpression)
	EnterMember func(*MemberExpression)
}

// Walk drives a single depth-first pre-order pass over the tree,
// invoking the visitor's callbacks in document order.
func Walk(n Node, v Visitor) {
	if n == nil {
		return
	}

	if v.Enter != nil {
		v.Enter(n)
	}

	switch k := n.(type) {
	case *ImportDeclaration:
		if v.EnterImport != nil {
			v.EnterImport(k)
		}
	case *CallExpression:
		if v.EnterCall != nil {
			v.EnterCall(k)
		}
	case *MemberExpression:
		if v.EnterMember != nil {
			v.EnterMember(k)
		}
	}

	for _, c := range Children(n) {
		Walk(c, v)
	}
}

// Children returns a node's structural children in source order.
func Children(n Node) []Node {
	switch k := n.(type) {
	case *Program:
		return k.Body
	case *ImportDeclaration:
		if k.Source != nil {
			return []Node{k.Source}
		}
	case *VariableDeclaration:
		out := make([]Node, len(k.Declarations))
		for i, d := range k.Declarations {
			out[i] = d
		}
		return out
	case *VariableDeclarator:
		return compact(k.ID, k.Init)
	case *ExpressionStatement:
		return compact(k.Expression)
	case *CallExpression:
		return append(compact(k.Callee), k.Arguments...)
	case *MemberExpression:
		return compact(k.Object, k.Property)
	case *TemplateLiteral:
		return k.Expressions
	case *ObjectExpression:
		return k.Properties
	case *ObjectPattern:
		return k.Properties
	case *Property:
		if k.Shorthand {
			return compact(k.Key)
		}
		return compact(k.Key, k.Value)
	case *SpreadElement:
		return compact(k.Argument)
	case *FunctionExpression:
		return append(append([]Node{}, k.Params...), compact(k.Body)...)
	case *BlockStatement:
		return k.Body
	case *ReturnStatement:
		return compact(k.Argument)
	case *Unknown:
		return k.Children
	}
	return nil
}

func compact(nodes ...Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
