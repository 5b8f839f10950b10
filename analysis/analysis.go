package analysis

import (
	"errors"

	"withstyles-lint/javascript"
)

// FileContext is everything the rules know about one analyzed file. A
// fresh context is built per file; nothing in it outlives the file.
type FileContext struct {
	Body    []byte
	Program *javascript.Program
}

type AnalysisEngine struct {
	fileContexts map[string]FileContext
}

func New() *AnalysisEngine {
	return &AnalysisEngine{
		fileContexts: map[string]FileContext{},
	}
}

func (s *AnalysisEngine) SetFileContext(uri string, content []byte) error {
	fctx := FileContext{
		Body:    content,
		Program: javascript.Parse(content),
	}

	s.fileContexts[uri] = fctx

	return nil
}

func (s *AnalysisEngine) GetFileContext(uri string) (FileContext, error) {
	k, ok := s.fileContexts[uri]
	if !ok {
		return FileContext{}, errors.New("file context not found")
	}
	return k, nil
}

func (s *AnalysisEngine) DeleteFileContext(uri string) {
	delete(s.fileContexts, uri)
}
