package analysis

import (
	"withstyles-lint/javascript"
)

// WithStylesModule is the package react-with-styles components author
// their styles against.
const WithStylesModule = "react-with-styles"

// withStylesWrapperName is the conventional name of the higher-order
// component that injects the styles prop. Matched textually; components
// call it `withStyles` whatever else they rename.
const withStylesWrapperName = "withStyles"

// FindImportCSSFromWithStylesImportDeclaration reports the local name
// `css` is bound to when a file does
//
//	import { css } from 'react-with-styles';
//
// (possibly aliased). The second return is false when the declaration is
// anything else.
func FindImportCSSFromWithStylesImportDeclaration(node *javascript.ImportDeclaration) (string, bool) {
	if node.Source == nil || node.Source.Value != WithStylesModule {
		return "", false
	}

	for _, spec := range node.Specifiers {
		if spec.Kind == javascript.SpecifierNamed && spec.Imported == "css" {
			return spec.Local, true
		}
	}

	return "", false
}

// FindRequireCSSFromWithStylesCallExpression reports the local name
// `css` is bound to when a file does
//
//	const { css } = require('react-with-styles');
//
// The call expression itself is the require; the destructuring pattern
// is found through the enclosing variable declarator.
func FindRequireCSSFromWithStylesCallExpression(node *javascript.CallExpression) (string, bool) {
	callee, ok := node.Callee.(*javascript.Identifier)
	if !ok || callee.Name != "require" {
		return "", false
	}

	if len(node.Arguments) == 0 {
		return "", false
	}
	source, ok := node.Arguments[0].(*javascript.Literal)
	if !ok || source.Value != WithStylesModule {
		return "", false
	}

	decl, ok := node.Parent().(*javascript.VariableDeclarator)
	if !ok {
		return "", false
	}
	pattern, ok := decl.ID.(*javascript.ObjectPattern)
	if !ok {
		return "", false
	}

	for _, p := range pattern.Properties {
		prop, ok := p.(*javascript.Property)
		if !ok || prop.Computed {
			continue
		}
		key, ok := resolveKey(prop.Key)
		if !ok || key != "css" {
			continue
		}
		if local, ok := prop.Value.(*javascript.Identifier); ok {
			return local.Name, true
		}
	}

	return "", false
}

// resolveKey statically resolves the string a property key or a
// computed-member expression denotes. Anything dynamic resolves to
// nothing and the caller skips it.
func resolveKey(n javascript.Node) (string, bool) {
	switch k := n.(type) {
	case *javascript.Identifier:
		// styles.foo
		return k.Name, true
	case *javascript.Literal:
		// styles['foo']
		return k.Value, true
	case *javascript.TemplateLiteral:
		// styles[`foo`], but not styles[`foo${bar}`]
		if len(k.Expressions) > 0 || len(k.Quasis) != 1 {
			return "", false
		}
		return k.Quasis[0], true
	}
	return "", false
}
