package analysis_test

import (
	"testing"

	"withstyles-lint/analysis"
	"withstyles-lint/javascript"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstImport(t *testing.T, src string) *javascript.ImportDeclaration {
	t.Helper()

	var found *javascript.ImportDeclaration
	javascript.Walk(javascript.Parse([]byte(src)), javascript.Visitor{
		EnterImport: func(n *javascript.ImportDeclaration) {
			if found == nil {
				found = n
			}
		},
	})
	require.NotNil(t, found)
	return found
}

func callExpressions(src string) []*javascript.CallExpression {
	var out []*javascript.CallExpression
	javascript.Walk(javascript.Parse([]byte(src)), javascript.Visitor{
		EnterCall: func(n *javascript.CallExpression) {
			out = append(out, n)
		},
	})
	return out
}

func TestFindImportCSS(t *testing.T) {
	name, ok := analysis.FindImportCSSFromWithStylesImportDeclaration(
		firstImport(t, `import { css } from 'react-with-styles';`))
	assert.True(t, ok)
	assert.Equal(t, "css", name)
}

func TestFindImportCSSAliased(t *testing.T) {
	name, ok := analysis.FindImportCSSFromWithStylesImportDeclaration(
		firstImport(t, `import { css as withStylesCss } from 'react-with-styles';`))
	assert.True(t, ok)
	assert.Equal(t, "withStylesCss", name)
}

func TestFindImportCSSWrongModule(t *testing.T) {
	_, ok := analysis.FindImportCSSFromWithStylesImportDeclaration(
		firstImport(t, `import { css } from 'aphrodite';`))
	assert.False(t, ok)
}

func TestFindImportCSSWrongExport(t *testing.T) {
	_, ok := analysis.FindImportCSSFromWithStylesImportDeclaration(
		firstImport(t, `import { withStyles } from 'react-with-styles';`))
	assert.False(t, ok)
}

func TestFindImportCSSDefaultImportOnly(t *testing.T) {
	_, ok := analysis.FindImportCSSFromWithStylesImportDeclaration(
		firstImport(t, `import css from 'react-with-styles';`))
	assert.False(t, ok)
}

func TestFindRequireCSS(t *testing.T) {
	calls := callExpressions(`const { css } = require('react-with-styles');`)
	require.Len(t, calls, 1)

	name, ok := analysis.FindRequireCSSFromWithStylesCallExpression(calls[0])
	assert.True(t, ok)
	assert.Equal(t, "css", name)
}

func TestFindRequireCSSRenamed(t *testing.T) {
	calls := callExpressions(`const { css: myCss } = require('react-with-styles');`)
	require.Len(t, calls, 1)

	name, ok := analysis.FindRequireCSSFromWithStylesCallExpression(calls[0])
	assert.True(t, ok)
	assert.Equal(t, "myCss", name)
}

func TestFindRequireCSSNotDestructured(t *testing.T) {
	calls := callExpressions(`const rws = require('react-with-styles');`)
	require.Len(t, calls, 1)

	_, ok := analysis.FindRequireCSSFromWithStylesCallExpression(calls[0])
	assert.False(t, ok)
}

func TestFindRequireCSSWrongModule(t *testing.T) {
	calls := callExpressions(`const { css } = require('other-styles');`)
	require.Len(t, calls, 1)

	_, ok := analysis.FindRequireCSSFromWithStylesCallExpression(calls[0])
	assert.False(t, ok)
}
