package product

import (
	"context"
	"fmt"

	"catalog-page/internal/fetch"
)

// Source is the data access boundary for products.
type Source interface {
	FetchProducts(ctx context.Context, url string) fetch.Result[[]Product]
}

// Fetcher reads products.json over HTTP.
type Fetcher struct {
	client *fetch.Client
}

func NewFetcher(client *fetch.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchProducts never returns an error value: every failure, including a
// panic while decoding, is folded into a failed Result.
func (f *Fetcher) FetchProducts(ctx context.Context, url string) (res fetch.Result[[]Product]) {
	defer func() {
		if r := recover(); r != nil {
			res = fetch.Fail[[]Product](fmt.Errorf("unexpected failure reading products: %v", r))
		}
	}()

	body, err := f.client.Get(ctx, url, "application/json")
	if err != nil {
		return fetch.Fail[[]Product](err)
	}

	products, err := Decode(url, body)
	if err != nil {
		return fetch.Fail[[]Product](err)
	}
	return fetch.Succeed(products)
}
