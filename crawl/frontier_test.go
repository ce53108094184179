package crawl_test

import (
	"fmt"
	"testing"

	"github.com/mlodde/viascan/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates pushes and preserves insertion order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()

		assert.True(t, f.Push("https://example.com/a"))
		assert.True(t, f.Push("https://example.com/b"))
		assert.False(t, f.Push("https://example.com/a"))
		assert.Equal(t, 2, f.Len())

		url, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/a", url)

		url, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/b", url)

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("seen covers popped URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("https://example.com/a")
		_, _ = f.Pop()

		assert.True(t, f.Seen("https://example.com/a"))
		assert.False(t, f.Push("https://example.com/a"))
	})

	t.Run("handles many distinct URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		for i := range 1000 {
			require.True(t, f.Push(fmt.Sprintf("https://example.com/doc/%d", i)))
		}
		assert.Equal(t, 1000, f.Len())
	})
}
