package games

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSuccessChart(t *testing.T) {

	report := &Report{
		Attack:     "IND-CPA",
		Trials:     5000,
		Successes:  2488,
		BatchRates: []float64{0.49, 0.51, 0.502, 0.488, 0.5},
	}

	path := filepath.Join(t.TempDir(), "ind-cpa.html")
	require.NoError(t, RenderSuccessChart(report, path))

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, html)
	require.Contains(t, string(html), "IND-CPA")
}
