// Package remote fetches the reference collection from the PokeAPI.
// It is pure I/O: payloads are normalized by the catalog package and
// no state is kept between calls.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"pokedex/internal/catalog"
)

// ErrRequestFailed is returned when the collection index or any detail
// request fails. Hydration has no partial-success mode: one failed
// detail fails the whole fetch.
var ErrRequestFailed = errors.New("remote request failed")

// maxConcurrentFetches caps the detail fan-out so a full hydration does
// not open a thousand sockets at once.
const maxConcurrentFetches = 32

var _ catalog.Fetcher = (*Client)(nil)

type Client struct {
	baseURL string
	limit   int
	http    *http.Client
}

// New returns a Client for the given API base URL (without a trailing
// slash). limit is the index page size; it must cover the entire
// dataset, since the index is requested in a single call.
func New(baseURL string, limit int) *Client {
	return &Client{
		baseURL: baseURL,
		limit:   limit,
		http:    http.DefaultClient,
	}
}

type indexResponse struct {
	Results []indexEntry `json:"results"`
}

type indexEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FetchAll retrieves the collection index and fans out one detail
// request per entry, joining fail-fast: the first failure cancels the
// remaining requests and fails the hydration. The returned records
// keep the index order.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Record, error) {
	indexURL := fmt.Sprintf("%s/pokemon?limit=%d&offset=0", c.baseURL, c.limit)
	slog.Debug("fetching collection index", "url", indexURL)

	data, err := c.get(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	var index indexResponse
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("%w: decoding index: %w", ErrRequestFailed, err)
	}

	slog.Debug("fetching details", "count", len(index.Results))

	records := make([]catalog.Record, len(index.Results))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, entry := range index.Results {
		g.Go(func() error {
			payload, err := c.get(ctx, entry.URL)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", entry.Name, err)
			}
			rec, err := catalog.NormalizeDetail(payload)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrRequestFailed, entry.Name, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrRequestFailed, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}
	return data, nil
}
