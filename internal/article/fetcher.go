package article

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotFound is returned when the content base has no such article.
	ErrNotFound = errors.New("article not found")
	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrEmptyName is returned when the article name is blank.
	ErrEmptyName = errors.New("article name is empty")
)

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	BaseURL          string
	Timeout          time.Duration
	StripFrontMatter bool
}

// Fetcher downloads raw markdown articles from a fixed content base.
// Requests are never retried.
type Fetcher struct {
	client *resty.Client
	cfg    FetcherConfig
}

// NewFetcher creates a Fetcher for cfg.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "text/markdown, text/plain, */*").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &Fetcher{client: client, cfg: cfg}
}

// Fetch downloads the article called name.
func (f *Fetcher) Fetch(ctx context.Context, name string) (*Article, error) {
	filename := Filename(name)
	if filename == "" {
		return nil, ErrEmptyName
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(escapePath(filename))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", filename, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return nil, fmt.Errorf("fetch %s: %w", filename, ErrNotFound)
	case code < 200 || code > 299:
		return nil, fmt.Errorf("fetch %s: %w: %d", filename, ErrUnexpectedStatus, code)
	}

	return Parse(filename, resp.Body(), f.cfg.StripFrontMatter)
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
