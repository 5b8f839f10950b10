package main

import (
	"context"
	"strings"

	"withstyles-lint/analysis"
	"withstyles-lint/lintrc"
	"withstyles-lint/lsp"

	"github.com/sourcegraph/jsonrpc2"
)

type server struct {
	rootURI     string
	analysis    *analysis.AnalysisEngine
	diagnostics []analysis.Diagnostics
}

func (s *server) Initialize(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.InitializeParams) (*lsp.InitializeResult, *lsp.InitializeError) {
	s.rootURI = string(params.RootURI)
	s.analysis = analysis.New()

	cfg, err := lintrc.Load(lintrc.DefaultFilename)
	if err != nil {
		cfg = nil
	}
	s.diagnostics = analysis.EnabledDiagnostics(cfg)

	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    lsp.Full,
			},
		},
	}, nil
}

func (s *server) doLints(ctx context.Context, fileURI string, diags *lsp.PublishDiagnosticsParams) {
	for _, diag := range s.diagnostics {
		fctx, _ := s.analysis.GetFileContext(fileURI)
		adiags := diag.Analyze(ctx, fileURI, fctx, s.analysis)
		for _, d := range adiags {
			diags.Diagnostics = append(diags.Diagnostics, d.Diagnostic)
		}
	}
}

func (s *server) evaluate(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	diags := lsp.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []lsp.Diagnostic{},
	}

	fileURI := strings.TrimPrefix(string(uri), s.rootURI)

	s.analysis.SetFileContext(fileURI, []byte(content))

	s.doLints(ctx, fileURI, &diags)

	conn.Notify(ctx, "textDocument/publishDiagnostics", diags)
}

func (s *server) Initialized(ctx context.Context, conn jsonrpc2.JSONRPC2, params struct{}) {

}

func (s *server) DidOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidOpenTextDocumentParams) {
	go s.evaluate(ctx, conn, params.TextDocument.URI, params.TextDocument.Text)
}

func (s *server) DidChange(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidChangeTextDocumentParams) {
	if len(params.ContentChanges) == 0 {
		return
	}
	go s.evaluate(ctx, conn, params.TextDocument.URI, params.ContentChanges[0].Text)
}

func (s *server) DidChangeWatchedFiles(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidChangeWatchedFilesParams) {

}

func (s *server) DidClose(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidCloseTextDocumentParams) {
	s.analysis.DeleteFileContext(strings.TrimPrefix(string(params.TextDocument.URI), s.rootURI))
}
