package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfigYAML = `defaults:
  optimize_for: latency
  max_results: 3
  framework: nextjs
  format: json
scaffold:
  fallback_threshold: 1.5
  output_dir: generated
`

func TestValidateConfigBytes_Valid(t *testing.T) {
	require.Empty(t, ValidateConfigBytes([]byte(validConfigYAML)))
}

func TestValidateConfigBytes_EmptyDocument(t *testing.T) {
	require.Empty(t, ValidateConfigBytes([]byte("{}\n")))
}

func TestValidateConfigBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		loc  string
	}{
		{
			name: "unknown top-level key",
			yaml: "defaultz:\n  optimize_for: latency\n",
			loc:  "/",
		},
		{
			name: "bad objective",
			yaml: "defaults:\n  optimize_for: vibes\n",
			loc:  "/defaults/optimize_for",
		},
		{
			name: "max_results out of range",
			yaml: "defaults:\n  max_results: 99\n",
			loc:  "/defaults/max_results",
		},
		{
			name: "negative threshold",
			yaml: "scaffold:\n  fallback_threshold: -1\n",
			loc:  "/scaffold/fallback_threshold",
		},
		{
			name: "unknown framework",
			yaml: "defaults:\n  framework: rails\n",
			loc:  "/defaults/framework",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateConfigBytes([]byte(tt.yaml))
			require.NotEmpty(t, errs)
			require.Contains(t, strings.Join(errs, "\n"), tt.loc)
		})
	}
}

func TestValidateConfigBytes_MalformedYAML(t *testing.T) {
	errs := ValidateConfigBytes([]byte("defaults: [oops\n"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "YAML parse error")
}
