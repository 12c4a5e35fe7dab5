package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"catalog-page/internal/logger"

	"go.uber.org/zap"
)

const userAgent = "catalog-page/1.0"

// Client performs the GET requests behind the catalog fetchers.
type Client struct {
	inner   *http.Client
	timeout time.Duration
}

// NewClient wraps hc (http.DefaultClient when nil). A zero timeout leaves
// each request bounded only by its context.
func NewClient(hc *http.Client, timeout time.Duration) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{inner: hc, timeout: timeout}
}

// Get reads url and returns the body. Non-2xx statuses and network failures
// are returned as KindTransport errors.
func (c *Client) Get(ctx context.Context, url string, accept string) ([]byte, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "fetch"),
		zap.String("url", url),
	)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: url, Msg: "could not create request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	start := time.Now()
	resp, err := c.inner.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return nil, &Error{Kind: KindTransport, URL: url, Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("non-2xx response", zap.Int("status", resp.StatusCode))
		return nil, TransportError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTransport, URL: url, Msg: "request aborted", Err: err}
		}
		return nil, &Error{Kind: KindTransport, URL: url, Msg: fmt.Sprintf("could not read body (HTTP %d)", resp.StatusCode), Err: err}
	}

	log.Debug("fetched",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}
