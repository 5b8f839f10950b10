package analysis_test

import (
	"testing"

	"withstyles-lint/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlySpreadCSSHappyPath(t *testing.T) {
	src := `
import { css } from 'react-with-styles';

function Foo({ styles }) {
  return <div {...css(styles.a)} />;
}
`
	diags := analyze(t, analysis.DiagnosticsOnlySpreadCSS{}, src)
	assert.Empty(t, diags)
}

func TestOnlySpreadCSSAssignedToVariable(t *testing.T) {
	src := `
import { css } from 'react-with-styles';

function Foo({ styles }) {
  const stuff = css(styles.a);
  return <div {...stuff} />;
}
`
	diags := analyze(t, analysis.DiagnosticsOnlySpreadCSS{}, src)
	require.Len(t, diags, 1)
	assert.Equal(t, "Only spread `css()` directly into an element, e.g. `<div {...css(styles.foo)} />`.", diags[0].Message)
}

func TestOnlySpreadCSSTracksAlias(t *testing.T) {
	src := `
import { css as stylesCss } from 'react-with-styles';

function Foo({ styles }) {
  const stuff = stylesCss(styles.a);
  return <div {...stuff} />;
}
`
	diags := analyze(t, analysis.DiagnosticsOnlySpreadCSS{}, src)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "stylesCss()")
}

func TestOnlySpreadCSSIgnoresOtherCalls(t *testing.T) {
	src := `
import { css } from 'react-with-styles';

function Foo() {
  const x = somethingElse(1);
  return x;
}
`
	diags := analyze(t, analysis.DiagnosticsOnlySpreadCSS{}, src)
	assert.Empty(t, diags)
}

func TestOnlySpreadCSSNoImport(t *testing.T) {
	src := `
function Foo({ styles }) {
  const stuff = css(styles.a);
  return <div {...stuff} />;
}
`
	diags := analyze(t, analysis.DiagnosticsOnlySpreadCSS{}, src)
	assert.Empty(t, diags)
}
