package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	fetchAttempts = 3
	fetchBackoff  = 2 * time.Second
)

// Fetcher downloads image bytes from a URL with bounded retries. Backends
// that return file references instead of inline bytes go through here.
type Fetcher struct {
	client  *resty.Client
	backoff time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  resty.New().SetTimeout(30 * time.Second),
		backoff: fetchBackoff,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		resp, err := f.client.R().SetContext(ctx).Get(url)
		if err == nil && !resp.IsError() {
			return resp.Body(), nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode())
		}

		if attempt == fetchAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * f.backoff):
		}
	}

	return nil, fmt.Errorf("failed to download image after %d attempts: %w", fetchAttempts, lastErr)
}
