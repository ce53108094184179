package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_PageLines(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns an error, not a panic", func(t *testing.T) {
		t.Parallel()

		e := pdf.NewExtractor()
		_, err := e.PageLines(filepath.Join(t.TempDir(), "nope.pdf"))
		require.Error(t, err)
		assert.Equal(t, viascan.EINTERNAL, viascan.ErrorCode(err))
	})

	t.Run("corrupt file returns an error, not a panic", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corrupt.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

		e := pdf.NewExtractor()
		_, err := e.PageLines(path)
		require.Error(t, err)
		assert.Equal(t, viascan.EINTERNAL, viascan.ErrorCode(err))
	})
}
