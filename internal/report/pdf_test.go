package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name       string
		setupFile  func(t *testing.T) string
		wantErrMsg string
	}{
		{
			name:       "not markdown",
			setupFile:  func(t *testing.T) string { return "report.txt" },
			wantErrMsg: "report must be a .md file",
		},
		{
			name:       "missing file",
			setupFile:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.md") },
			wantErrMsg: "os.ReadFile",
		},
		{
			name: "converts",
			setupFile: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "progress.md")
				require.NoError(t, os.WriteFile(path, []byte("# Progress report\n\n| Metric | Value |\n|---|---|\n| Tasks completed | 3 |\n"), 0644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, err := ConvertMarkdownToPDF(tt.setupFile(t))
			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(pdfPath))
			_, err = os.Stat(pdfPath)
			assert.NoError(t, err)
		})
	}
}
