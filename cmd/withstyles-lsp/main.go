package main

import (
	lspserver "withstyles-lint/lsp-server"
)

func main() {
	s := server{}
	a := lspserver.MethodMap{
		"initialize":                      lspserver.Typed(s.Initialize),
		"initialized":                     lspserver.Typed(s.Initialized),
		"textDocument/didOpen":            lspserver.Typed(s.DidOpen),
		"textDocument/didChange":          lspserver.Typed(s.DidChange),
		"textDocument/didClose":           lspserver.Typed(s.DidClose),
		"workspace/didChangeWatchedFiles": lspserver.Typed(s.DidChangeWatchedFiles),
	}
	lspserver.StartServer(a)
}
