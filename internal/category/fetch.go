package category

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"catalog-page/internal/fetch"

	"github.com/antchfx/xmlquery"
)

// Source is the data access boundary for categories.
type Source interface {
	FetchCategories(ctx context.Context, url string) fetch.Result[*xmlquery.Node]
}

// Fetcher reads categories.xml over HTTP.
type Fetcher struct {
	client *fetch.Client
}

func NewFetcher(client *fetch.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchCategories returns the parsed XML document. Like the product fetcher
// it reports every failure through the envelope.
func (f *Fetcher) FetchCategories(ctx context.Context, url string) (res fetch.Result[*xmlquery.Node]) {
	defer func() {
		if r := recover(); r != nil {
			res = fetch.Fail[*xmlquery.Node](fmt.Errorf("unexpected failure reading categories: %v", r))
		}
	}()

	body, err := f.client.Get(ctx, url, "application/xml")
	if err != nil {
		return fetch.Fail[*xmlquery.Node](err)
	}

	doc, err := Parse(url, body)
	if err != nil {
		return fetch.Fail[*xmlquery.Node](err)
	}
	return fetch.Succeed(doc)
}

// Parse reads body as an XML document. A body without a root element is
// rejected as well as one that is not well formed.
func Parse(url string, body []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fetch.ParseError(url, err)
	}
	if xmlquery.FindOne(doc, "/*") == nil {
		return nil, fetch.ParseError(url, errors.New("no root element"))
	}
	return doc, nil
}
