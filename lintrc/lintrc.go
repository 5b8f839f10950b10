// Package lintrc reads the .withstyleslintrc file, which can switch
// individual rules on or off:
//
//	rule "no-unused-styles" on
//	rule "only-spread-css" off
//
// Rules not mentioned stay enabled.
package lintrc

import (
	"os"

	"github.com/alecthomas/participle/v2"
)

// DefaultFilename is looked up in the working directory when no rc path
// is given explicitly.
const DefaultFilename = ".withstyleslintrc"

type Config struct {
	Rules []RuleSetting `@@*`
}

type RuleSetting struct {
	Name  string `"rule" @String`
	State string `@("on" | "off")`
}

var parser = participle.MustBuild(&Config{}, participle.Unquote("String"))

func Parse(filename string, data []byte) (*Config, error) {
	var cfg Config
	if err := parser.ParseString(filename, string(data), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a config file from disk. A missing file is not an error;
// it just means nothing is disabled.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Enabled reports whether a rule should run. The last setting for a
// name wins; unknown names default to enabled. A nil config enables
// everything.
func (c *Config) Enabled(name string) bool {
	if c == nil {
		return true
	}

	enabled := true
	for _, r := range c.Rules {
		if r.Name == name {
			enabled = r.State != "off"
		}
	}
	return enabled
}
