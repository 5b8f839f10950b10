package analysis

import (
	"context"

	"withstyles-lint/javascript"
	"withstyles-lint/lsp"
)

type Diagnostics interface {
	Name() string
	Analyze(ctx context.Context, fileURI string, fctx FileContext, engine *AnalysisEngine) (diags []Diagnostic)
}

type Diagnostic struct {
	lsp.Diagnostic

	ContextNode javascript.Node
}
