package category

import (
	"strings"

	"catalog-page/internal/fetch"

	"github.com/antchfx/xmlquery"
)

// Extract reads every <category> element of doc, in document order. Each
// one must carry exactly one <id> and one <name> child.
func Extract(doc *xmlquery.Node) ([]Category, error) {
	if doc == nil {
		return nil, fetch.SchemaError("no category document")
	}

	nodes := xmlquery.Find(doc, "//category")
	out := make([]Category, 0, len(nodes))
	for i, n := range nodes {
		id, err := childText(n, "id", i)
		if err != nil {
			return nil, err
		}
		name, err := childText(n, "name", i)
		if err != nil {
			return nil, err
		}
		out = append(out, Category{ID: id, Name: name})
	}
	return out, nil
}

func childText(n *xmlquery.Node, tag string, index int) (string, error) {
	found := xmlquery.Find(n, "./"+tag)
	switch len(found) {
	case 1:
		return strings.TrimSpace(found[0].InnerText()), nil
	case 0:
		return "", fetch.SchemaError("category %d: missing <%s>", index, tag)
	default:
		return "", fetch.SchemaError("category %d: expected one <%s>, found %d", index, tag, len(found))
	}
}
