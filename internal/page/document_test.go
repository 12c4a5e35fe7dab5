package page

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"sync"
	"testing"

	"catalog-page/internal/fetch"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRendered(t *testing.T, d *Document) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(d.String()))
	require.NoError(t, err)
	return doc
}

func TestNew_LayoutContract(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	doc := parseRendered(t, d)
	for _, id := range []string{ToastID, DemoID, ProductsID, CategoriesID, AlertsID} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), "layout should contain #%s", id)
	}
}

func TestDocument_Replace(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	require.NoError(t, d.Replace(ProductsID,
		template.HTML(`<div class="card">a</div>`),
		template.HTML(`<div class="card">b</div>`),
		template.HTML(`<div class="card">c</div>`),
	))

	doc := parseRendered(t, d)
	cards := doc.Find("#products-container .card")
	assert.Equal(t, 3, cards.Length())
	assert.Equal(t, "abc", cards.Text())

	require.NoError(t, d.Replace(ProductsID, template.HTML(`<div class="card">z</div>`)))
	doc = parseRendered(t, d)
	assert.Equal(t, "z", doc.Find("#products-container .card").Text())

	require.NoError(t, d.Replace(ProductsID))
	doc = parseRendered(t, d)
	assert.Equal(t, 0, doc.Find("#products-container").Children().Length())
}

func TestDocument_SelectOptions(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	require.NoError(t, d.Replace(CategoriesID,
		template.HTML(`<option selected disabled>pick</option>`),
		template.HTML(`<option value="1">One</option>`),
	))

	doc := parseRendered(t, d)
	opts := doc.Find("#categories option")
	require.Equal(t, 2, opts.Length())
	v, ok := opts.Eq(1).Attr("value")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestDocument_MissingContainer(t *testing.T) {
	d, err := Parse(strings.NewReader(`<html><body><p>empty</p></body></html>`))
	require.NoError(t, err)

	err = d.Replace(ProductsID, template.HTML(`<div>x</div>`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, fetch.ErrDOMAccess))
	assert.Contains(t, err.Error(), "#products-container")
	assert.NotContains(t, d.String(), "<div>x</div>")
}

func TestDocument_Alert(t *testing.T) {
	t.Run("Into alerts region, escaped", func(t *testing.T) {
		d, err := New()
		require.NoError(t, err)

		d.Alert(context.Background(), `Error al cargar los productos: <script>x()</script>`)

		assert.Equal(t, []string{`Error al cargar los productos: <script>x()</script>`}, d.Alerts())

		out := d.String()
		assert.NotContains(t, out, "<script>x()</script>")
		assert.Contains(t, out, "&lt;script&gt;")

		doc := parseRendered(t, d)
		alert := doc.Find(`#alerts [role="alert"]`)
		assert.Equal(t, 1, alert.Length())
		assert.Equal(t, `Error al cargar los productos: <script>x()</script>`, alert.Text())
	})

	t.Run("Falls back to body", func(t *testing.T) {
		d, err := Parse(strings.NewReader(`<html><body></body></html>`))
		require.NoError(t, err)

		d.Alert(context.Background(), "boom")

		doc := parseRendered(t, d)
		assert.Equal(t, "boom", doc.Find(`body > [role="alert"]`).Text())
	})

	t.Run("Alerts returns a copy", func(t *testing.T) {
		d, err := New()
		require.NoError(t, err)
		d.Alert(context.Background(), "one")

		got := d.Alerts()
		got[0] = "mutated"
		assert.Equal(t, []string{"one"}, d.Alerts())
	})
}

func TestDocument_ConcurrentMutation(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = d.Replace(ProductsID, template.HTML(`<div class="card"></div>`), template.HTML(`<div class="card"></div>`))
		}()
		go func() {
			defer wg.Done()
			_ = d.Replace(CategoriesID, template.HTML(`<option>x</option>`))
			d.Alert(context.Background(), "concurrent")
		}()
	}
	wg.Wait()

	doc := parseRendered(t, d)
	assert.Equal(t, 2, doc.Find("#products-container .card").Length())
	assert.Equal(t, 1, doc.Find("#categories option").Length())
	assert.Len(t, d.Alerts(), 20)
}
