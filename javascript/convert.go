package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// namedChildren returns a node's named children minus comments, which
// the grammar allows almost anywhere.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c.Type() == "comment" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func adopt(parent Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.setParent(parent)
		}
	}
}

func convertAll(nodes []*sitter.Node, src []byte) []Node {
	var out []Node
	for _, n := range nodes {
		if c := convert(n, src); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func unquote(raw string) string {
	if len(raw) >= 2 {
		switch raw[0] {
		case '\'', '"':
			if raw[len(raw)-1] == raw[0] {
				return raw[1 : len(raw)-1]
			}
		}
	}
	return raw
}

// convert maps a tree-sitter node onto the typed AST. Shapes the
// analysis never inspects become Unknown nodes with converted children,
// so nothing is lost from the traversal.
func convert(n *sitter.Node, src []byte) Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "comment":
		return nil

	case "parenthesized_expression":
		// ESTree drops parentheses; so do we.
		kids := namedChildren(n)
		if len(kids) == 1 {
			return convert(kids[0], src)
		}
		return &Unknown{baseNode: newBase(n), Kind: n.Type(), Children: convertAll(kids, src)}

	case "program":
		p := &Program{baseNode: newBase(n), Body: convertAll(namedChildren(n), src)}
		adopt(p, p.Body...)
		return p

	case "import_statement":
		return convertImport(n, src)

	case "expression_statement":
		kids := namedChildren(n)
		if len(kids) != 1 {
			return &Unknown{baseNode: newBase(n), Kind: n.Type(), Children: convertAll(kids, src)}
		}
		s := &ExpressionStatement{baseNode: newBase(n), Expression: convert(kids[0], src)}
		adopt(s, s.Expression)
		return s

	case "variable_declaration", "lexical_declaration":
		d := &VariableDeclaration{baseNode: newBase(n)}
		for _, c := range namedChildren(n) {
			if c.Type() != "variable_declarator" {
				continue
			}
			decl := &VariableDeclarator{
				baseNode: newBase(c),
				ID:       convert(c.ChildByFieldName("name"), src),
				Init:     convert(c.ChildByFieldName("value"), src),
			}
			adopt(decl, decl.ID, decl.Init)
			d.Declarations = append(d.Declarations, decl)
		}
		for _, decl := range d.Declarations {
			decl.setParent(d)
		}
		return d

	case "call_expression":
		c := &CallExpression{baseNode: newBase(n), Callee: convert(n.ChildByFieldName("function"), src)}
		if args := n.ChildByFieldName("arguments"); args != nil {
			if args.Type() == "template_string" {
				// tagged template
				c.Arguments = []Node{convert(args, src)}
			} else {
				c.Arguments = convertAll(namedChildren(args), src)
			}
		}
		adopt(c, c.Callee)
		adopt(c, c.Arguments...)
		return c

	case "member_expression":
		m := &MemberExpression{
			baseNode: newBase(n),
			Object:   convert(n.ChildByFieldName("object"), src),
			Property: convert(n.ChildByFieldName("property"), src),
		}
		adopt(m, m.Object, m.Property)
		return m

	case "subscript_expression":
		m := &MemberExpression{
			baseNode: newBase(n),
			Object:   convert(n.ChildByFieldName("object"), src),
			Property: convert(n.ChildByFieldName("index"), src),
			Computed: true,
		}
		adopt(m, m.Object, m.Property)
		return m

	case "identifier", "property_identifier",
		"shorthand_property_identifier", "shorthand_property_identifier_pattern":
		return &Identifier{baseNode: newBase(n), Name: n.Content(src)}

	case "this":
		return &ThisExpression{baseNode: newBase(n)}

	case "string":
		raw := n.Content(src)
		return &Literal{baseNode: newBase(n), Value: unquote(raw), Raw: raw}

	case "number", "true", "false", "null", "undefined":
		raw := n.Content(src)
		return &Literal{baseNode: newBase(n), Value: raw, Raw: raw}

	case "template_string":
		return convertTemplate(n, src)

	case "object":
		o := &ObjectExpression{baseNode: newBase(n), Properties: convertProperties(n, src)}
		adopt(o, o.Properties...)
		return o

	case "object_pattern":
		o := &ObjectPattern{baseNode: newBase(n), Properties: convertProperties(n, src)}
		adopt(o, o.Properties...)
		return o

	case "pair", "pair_pattern":
		return convertPair(n, src)

	case "method_definition":
		p := &Property{
			baseNode: newBase(n),
			Key:      convert(n.ChildByFieldName("name"), src),
			Value:    convert(n.ChildByFieldName("body"), src),
		}
		if key := n.ChildByFieldName("name"); key != nil && key.Type() == "computed_property_name" {
			p.Computed = true
			p.Key = convert(firstNamed(key), src)
		}
		adopt(p, p.Key, p.Value)
		return p

	case "spread_element", "rest_pattern":
		s := &SpreadElement{baseNode: newBase(n), Argument: convert(firstNamed(n), src)}
		adopt(s, s.Argument)
		return s

	case "arrow_function":
		f := &FunctionExpression{baseNode: newBase(n), Arrow: true}
		if p := n.ChildByFieldName("parameter"); p != nil {
			f.Params = []Node{convert(p, src)}
		} else if ps := n.ChildByFieldName("parameters"); ps != nil {
			f.Params = convertAll(namedChildren(ps), src)
		}
		f.Body = convert(n.ChildByFieldName("body"), src)
		adopt(f, f.Params...)
		adopt(f, f.Body)
		return f

	case "function", "function_expression", "generator_function":
		f := &FunctionExpression{baseNode: newBase(n)}
		if ps := n.ChildByFieldName("parameters"); ps != nil {
			f.Params = convertAll(namedChildren(ps), src)
		}
		f.Body = convert(n.ChildByFieldName("body"), src)
		adopt(f, f.Params...)
		adopt(f, f.Body)
		return f

	case "statement_block":
		b := &BlockStatement{baseNode: newBase(n), Body: convertAll(namedChildren(n), src)}
		adopt(b, b.Body...)
		return b

	case "return_statement":
		r := &ReturnStatement{baseNode: newBase(n), Argument: convert(firstNamed(n), src)}
		adopt(r, r.Argument)
		return r

	default:
		u := &Unknown{baseNode: newBase(n), Kind: n.Type(), Children: convertAll(namedChildren(n), src)}
		adopt(u, u.Children...)
		return u
	}
}

func firstNamed(n *sitter.Node) *sitter.Node {
	kids := namedChildren(n)
	if len(kids) == 0 {
		return nil
	}
	return kids[0]
}

func convertImport(n *sitter.Node, src []byte) Node {
	d := &ImportDeclaration{baseNode: newBase(n)}

	if s := n.ChildByFieldName("source"); s != nil {
		if lit, ok := convert(s, src).(*Literal); ok {
			d.Source = lit
			adopt(d, lit)
		}
	}

	for _, c := range namedChildren(n) {
		if c.Type() != "import_clause" {
			continue
		}
		for _, cc := range namedChildren(c) {
			switch cc.Type() {
			case "identifier":
				d.Specifiers = append(d.Specifiers, ImportSpecifier{
					Kind:  SpecifierDefault,
					Local: cc.Content(src),
				})
			case "namespace_import":
				if id := firstNamed(cc); id != nil {
					d.Specifiers = append(d.Specifiers, ImportSpecifier{
						Kind:  SpecifierNamespace,
						Local: id.Content(src),
					})
				}
			case "named_imports":
				for _, spec := range namedChildren(cc) {
					if spec.Type() != "import_specifier" {
						continue
					}
					name := spec.ChildByFieldName("name")
					if name == nil {
						continue
					}
					imported := name.Content(src)
					local := imported
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = alias.Content(src)
					}
					d.Specifiers = append(d.Specifiers, ImportSpecifier{
						Kind:     SpecifierNamed,
						Imported: imported,
						Local:    local,
					})
				}
			}
		}
	}

	return d
}

func convertTemplate(n *sitter.Node, src []byte) Node {
	t := &TemplateLiteral{baseNode: newBase(n)}

	// chunk boundaries sit between the substitutions; the backticks are
	// the first and last byte of the node
	last := n.StartByte() + 1
	for _, c := range namedChildren(n) {
		if c.Type() != "template_substitution" {
			continue
		}
		t.Quasis = append(t.Quasis, string(src[last:c.StartByte()]))
		if e := convert(firstNamed(c), src); e != nil {
			t.Expressions = append(t.Expressions, e)
		}
		last = c.EndByte()
	}
	end := n.EndByte()
	if end > last {
		end--
	}
	t.Quasis = append(t.Quasis, string(src[last:end]))

	adopt(t, t.Expressions...)
	return t
}

func convertProperties(n *sitter.Node, src []byte) []Node {
	var out []Node
	for _, c := range namedChildren(n) {
		switch c.Type() {
		case "shorthand_property_identifier", "shorthand_property_identifier_pattern":
			id := &Identifier{baseNode: newBase(c), Name: c.Content(src)}
			p := &Property{baseNode: newBase(c), Key: id, Value: id, Shorthand: true}
			adopt(p, id)
			out = append(out, p)
		default:
			if conv := convert(c, src); conv != nil {
				out = append(out, conv)
			}
		}
	}
	return out
}

func convertPair(n *sitter.Node, src []byte) Node {
	p := &Property{baseNode: newBase(n), Value: convert(n.ChildByFieldName("value"), src)}

	key := n.ChildByFieldName("key")
	if key != nil && key.Type() == "computed_property_name" {
		p.Computed = true
		p.Key = convert(firstNamed(key), src)
	} else {
		p.Key = convert(key, src)
	}

	adopt(p, p.Key, p.Value)
	return p
}
