package analysis

import "withstyles-lint/lintrc"

var DefaultDiagnostics = []Diagnostics{
	DiagnosticsUnusedStyles{},
	DiagnosticsOnlySpreadCSS{},
}

// EnabledDiagnostics filters the default rule set against a lintrc
// config. A nil config enables everything.
func EnabledDiagnostics(cfg *lintrc.Config) []Diagnostics {
	if cfg == nil {
		return DefaultDiagnostics
	}

	var out []Diagnostics
	for _, d := range DefaultDiagnostics {
		if cfg.Enabled(d.Name()) {
			out = append(out, d)
		}
	}
	return out
}
