package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("We need **help** with onboarding")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>help</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.Contains(t, out, "hello")
		assert.Contains(t, out, "world")
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToLower(out), "onerror")
	})

	t.Run("keeps links but neutralizes javascript URLs", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("[click](javascript:alert(1)) and [ok](https://example.com)")
		require.NoError(t, err)
		assert.NotContains(t, out, "javascript:")
		assert.Contains(t, out, "https://example.com")
	})
}
