package analysis

import (
	"context"
	"fmt"

	"withstyles-lint/javascript"
	"withstyles-lint/lsp"
)

// DiagnosticsOnlySpreadCSS requires that the result of css() is spread
// directly into a JSX element rather than stored, passed around, or
// assigned to className/style by hand.
type DiagnosticsOnlySpreadCSS struct{}

func (DiagnosticsOnlySpreadCSS) Name() string { return "only-spread-css" }

func (DiagnosticsOnlySpreadCSS) Analyze(ctx context.Context, fileURI string, fctx FileContext, engine *AnalysisEngine) (diags []Diagnostic) {
	cssLocalName := ""

	javascript.Walk(fctx.Program, javascript.Visitor{
		EnterImport: func(node *javascript.ImportDeclaration) {
			if cssLocalName != "" {
				return
			}
			if name, ok := FindImportCSSFromWithStylesImportDeclaration(node); ok {
				cssLocalName = name
			}
		},
		EnterCall: func(node *javascript.CallExpression) {
			if name, ok := FindRequireCSSFromWithStylesCallExpression(node); ok && cssLocalName == "" {
				cssLocalName = name
			}
			if cssLocalName == "" {
				return
			}

			callee, ok := node.Callee.(*javascript.Identifier)
			if !ok || callee.Name != cssLocalName {
				return
			}

			if isJSXSpreadAttribute(node.Parent()) {
				return
			}

			diags = append(diags, Diagnostic{
				Diagnostic: lsp.Diagnostic{
					Range:    FromNode(node).ToLSP(),
					Severity: lsp.SeverityWarning,
					Source:   "only-spread-css",
					Message:  fmt.Sprintf("Only spread `%s()` directly into an element, e.g. `<div {...%s(styles.foo)} />`.", cssLocalName, cssLocalName),
				},
				ContextNode: node,
			})
		},
	})

	return diags
}

// isJSXSpreadAttribute reports whether a call sits as `{...call}` in an
// element's attribute position.
func isJSXSpreadAttribute(parent javascript.Node) bool {
	spread, ok := parent.(*javascript.SpreadElement)
	if !ok {
		return false
	}

	expr, ok := spread.Parent().(*javascript.Unknown)
	if !ok || expr.Kind != "jsx_expression" {
		return false
	}

	switch el := expr.Parent().(type) {
	case *javascript.Unknown:
		return el.Kind == "jsx_opening_element" || el.Kind == "jsx_self_closing_element"
	}
	return false
}
