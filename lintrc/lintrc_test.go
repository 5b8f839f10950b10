package lintrc_test

import (
	"os"
	"path/filepath"
	"testing"

	"withstyles-lint/lintrc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := lintrc.Parse("test", []byte(`
rule "no-unused-styles" on
rule "only-spread-css" off
`))
	require.NoError(t, err)

	assert.True(t, cfg.Enabled("no-unused-styles"))
	assert.False(t, cfg.Enabled("only-spread-css"))
	assert.True(t, cfg.Enabled("some-future-rule"))
}

func TestParseLastSettingWins(t *testing.T) {
	cfg, err := lintrc.Parse("test", []byte(`
rule "no-unused-styles" off
rule "no-unused-styles" on
`))
	require.NoError(t, err)

	assert.True(t, cfg.Enabled("no-unused-styles"))
}

func TestParseEmpty(t *testing.T) {
	cfg, err := lintrc.Parse("test", []byte(""))
	require.NoError(t, err)
	assert.True(t, cfg.Enabled("no-unused-styles"))
}

func TestParseGarbage(t *testing.T) {
	_, err := lintrc.Parse("test", []byte(`rule no-quotes on`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := lintrc.Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.True(t, cfg.Enabled("no-unused-styles"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), lintrc.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(`rule "only-spread-css" off`+"\n"), 0o644))

	cfg, err := lintrc.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled("only-spread-css"))
}
