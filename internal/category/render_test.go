package category

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOptions(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<select>" + html + "</select>"))
	require.NoError(t, err)
	return doc.Find("option")
}

func TestRenderOptions(t *testing.T) {
	t.Run("Placeholder then one option per category", func(t *testing.T) {
		out, err := RenderOptions([]Category{
			{ID: "1", Name: "Electrónica"},
			{ID: "2", Name: "Hogar"},
			{ID: "3", Name: "Deportes"},
		})
		require.NoError(t, err)
		require.Len(t, out, 4)

		var html strings.Builder
		for _, o := range out {
			html.WriteString(string(o))
		}
		opts := parseOptions(t, html.String())
		require.Equal(t, 4, opts.Length())

		first := opts.First()
		_, disabled := first.Attr("disabled")
		_, selected := first.Attr("selected")
		assert.True(t, disabled)
		assert.True(t, selected)
		assert.Equal(t, "Seleccione una categoría", first.Text())

		for i, want := range [][2]string{{"1", "Electrónica"}, {"2", "Hogar"}, {"3", "Deportes"}} {
			opt := opts.Eq(i + 1)
			v, ok := opt.Attr("value")
			assert.True(t, ok)
			assert.Equal(t, want[0], v)
			assert.Equal(t, want[1], opt.Text())
		}
	})

	t.Run("Empty list keeps the placeholder", func(t *testing.T) {
		out, err := RenderOptions(nil)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Escapes values and labels", func(t *testing.T) {
		out, err := RenderOptions([]Category{{ID: `1" selected="selected`, Name: `</option><script>x()</script>`}})
		require.NoError(t, err)

		html := string(out[1])
		assert.NotContains(t, html, "<script>")

		opts := parseOptions(t, html)
		require.Equal(t, 1, opts.Length())
		v, _ := opts.Attr("value")
		assert.Equal(t, `1" selected="selected`, v)
		_, selected := opts.Attr("selected")
		assert.False(t, selected)
		assert.Equal(t, `</option><script>x()</script>`, opts.Text())
	})
}
