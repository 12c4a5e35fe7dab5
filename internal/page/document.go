package page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"catalog-page/internal/fetch"
	"catalog-page/internal/logger"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the page being assembled. It is the only place where markup
// is mutated; every mutation is serialised so concurrent render services
// can share one Document.
type Document struct {
	mu     sync.Mutex
	doc    *goquery.Document
	alerts []string
}

// New returns a Document built from the default Layout.
func New() (*Document, error) {
	return Parse(strings.NewReader(Layout))
}

// Parse builds a Document from an arbitrary HTML layout.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return &Document{doc: doc}, nil
}

// container must be called with d.mu held.
func (d *Document) container(id string) (*goquery.Selection, error) {
	sel := d.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, fetch.DOMAccessError(id)
	}
	return sel, nil
}

// Replace sets the children of #id to fragments.
func (d *Document) Replace(id string, fragments ...template.HTML) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	sel, err := d.container(id)
	if err != nil {
		return err
	}
	sel.SetHtml(join(fragments))
	return nil
}

// Alert surfaces msg to the reader of the page. The message is inserted as a
// text node, so it is never interpreted as markup.
func (d *Document) Alert(ctx context.Context, msg string) {
	logger.FromCtx(ctx).Warn("page alert", zap.String("message", msg))

	d.mu.Lock()
	defer d.mu.Unlock()

	d.alerts = append(d.alerts, msg)

	target := d.doc.Find("#" + AlertsID).First()
	if target.Length() == 0 {
		target = d.doc.Find("body").First()
	}
	target.AppendNodes(alertNode(msg))
}

// Alerts lists every message raised so far, in order.
func (d *Document) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.alerts))
	copy(out, d.alerts)
	return out
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
	}
	return nil
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func alertNode(msg string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr: []html.Attribute{
			{Key: "role", Val: "alert"},
			{Key: "class", Val: "p-4 text-sm text-red-800 rounded-lg bg-red-50"},
		},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: msg})
	return n
}

func join(fragments []template.HTML) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(string(f))
	}
	return b.String()
}
