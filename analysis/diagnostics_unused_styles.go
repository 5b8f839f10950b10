package analysis

import (
	"context"
	"fmt"

	"withstyles-lint/javascript"
	"withstyles-lint/lsp"
)

// DiagnosticsUnusedStyles flags style keys that a component defines
// through withStyles() but never reads, either off the conventional
// `styles` local or through the injected props.
type DiagnosticsUnusedStyles struct{}

func (DiagnosticsUnusedStyles) Name() string { return "no-unused-styles" }

func (DiagnosticsUnusedStyles) Analyze(ctx context.Context, fileURI string, fctx FileContext, engine *AnalysisEngine) (diags []Diagnostic) {
	st := newUnusedStylesState()

	report := func(node javascript.Node, message string) {
		diags = append(diags, Diagnostic{
			Diagnostic: lsp.Diagnostic{
				Range:    FromNode(node).ToLSP(),
				Severity: lsp.SeverityWarning,
				Source:   "no-unused-styles",
				Message:  message,
			},
			ContextNode: node,
		})
	}

	javascript.Walk(fctx.Program, javascript.Visitor{
		EnterImport: func(node *javascript.ImportDeclaration) {
			if st.cssFound() {
				return
			}
			if name, ok := FindImportCSSFromWithStylesImportDeclaration(node); ok {
				st.cssLocalName = name
			}
		},
		EnterCall: func(node *javascript.CallExpression) {
			st.visitCall(node, report)
		},
		EnterMember: func(node *javascript.MemberExpression) {
			st.visitMember(node)
		},
	})

	return diags
}

// unusedStylesState accumulates over exactly one file's traversal and is
// discarded with it.
type unusedStylesState struct {
	// local binding of css from react-with-styles; empty until the
	// import or require pattern has been seen
	cssLocalName string

	definedStyles map[string]*javascript.Property
	definedOrder  []string
	usedStyles    map[string]struct{}
}

func newUnusedStylesState() *unusedStylesState {
	return &unusedStylesState{
		definedStyles: map[string]*javascript.Property{},
		usedStyles:    map[string]struct{}{},
	}
}

func (st *unusedStylesState) cssFound() bool {
	return st.cssLocalName != ""
}

func (st *unusedStylesState) visitCall(node *javascript.CallExpression, report func(javascript.Node, string)) {
	if name, ok := FindRequireCSSFromWithStylesCallExpression(node); ok && !st.cssFound() {
		st.cssLocalName = name
	}

	if !st.cssFound() {
		return
	}

	callee, ok := node.Callee.(*javascript.Identifier)
	if !ok || callee.Name != withStylesWrapperName {
		return
	}

	obj, ok := stylesObjectOfCall(node)
	if !ok {
		return
	}

	for _, p := range obj.Properties {
		prop, ok := p.(*javascript.Property)
		if !ok {
			// spread properties contribute no statically known keys
			continue
		}
		if prop.Computed {
			continue
		}
		key, ok := resolveKey(prop.Key)
		if !ok {
			continue
		}
		if _, seen := st.definedStyles[key]; !seen {
			st.definedOrder = append(st.definedOrder, key)
		}
		st.definedStyles[key] = prop
	}

	// diff right away; usages later in the file were already visited by
	// the time a call is reached, so waiting for end of file would only
	// change results for files with several defining calls
	for _, key := range st.definedOrder {
		if _, used := st.usedStyles[key]; used {
			continue
		}
		report(st.definedStyles[key], fmt.Sprintf("Style `%s` is unused", key))
	}
}

// stylesObjectOfCall digs the style-definitions object literal out of a
// withStyles() call. The argument must be a function returning (or
// being) an object literal; with a block body the last top-level return
// of an object literal wins.
func stylesObjectOfCall(node *javascript.CallExpression) (*javascript.ObjectExpression, bool) {
	if len(node.Arguments) == 0 {
		return nil, false
	}

	fn, ok := node.Arguments[0].(*javascript.FunctionExpression)
	if !ok {
		return nil, false
	}

	switch body := fn.Body.(type) {
	case *javascript.ObjectExpression:
		return body, true
	case *javascript.BlockStatement:
		var obj *javascript.ObjectExpression
		for _, stmt := range body.Body {
			ret, ok := stmt.(*javascript.ReturnStatement)
			if !ok {
				continue
			}
			if o, ok := ret.Argument.(*javascript.ObjectExpression); ok {
				obj = o
			}
		}
		if obj != nil {
			return obj, true
		}
	}

	return nil, false
}

func (st *unusedStylesState) visitMember(node *javascript.MemberExpression) {
	if !st.cssFound() {
		return
	}

	// styles.foo, styles['foo'], styles[`foo`]
	if obj, ok := node.Object.(*javascript.Identifier); ok && obj.Name == "styles" {
		if key, ok := resolveKey(node.Property); ok {
			st.usedStyles[key] = struct{}{}
		}
		return
	}

	// this.props.styles.foo / props.styles.foo: this node must be the
	// `.styles` link of the chain ...
	if key, ok := resolveKey(node.Property); !ok || key != "styles" {
		return
	}

	// ... completed by exactly one more access
	parent, ok := node.Parent().(*javascript.MemberExpression)
	if !ok {
		return
	}

	// anything deeper than one level below props must be `this`;
	// foo.foo.styles.bar is not a props chain
	if inner, ok := node.Object.(*javascript.MemberExpression); ok {
		if _, isThis := inner.Object.(*javascript.ThisExpression); !isThis {
			return
		}
	}

	// the styles object must hang off `props`, either named directly or
	// reached through a longer member chain
	if name, ok := resolveKey(node.Object); ok {
		if name != "props" {
			return
		}
	} else if _, isMember := node.Object.(*javascript.MemberExpression); !isMember {
		return
	}

	// reject an intermediate .styles in a still-continuing chain, e.g.
	// this.props.styles.foo.bar marks nothing used
	if _, ok := parent.Parent().(*javascript.MemberExpression); ok {
		return
	}

	if key, ok := resolveKey(parent.Property); ok {
		st.usedStyles[key] = struct{}{}
	}
}
