package report

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves raw report HTML from a URL. The core never fetches on its
// own; everything downstream of the fetcher works on the returned document.
type Fetcher interface {
	FetchHTML(ctx context.Context, reportURL string) (string, error)
	Name() string
}

// HTTPFetcher implements Fetcher over plain HTTP with optional proxy support.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given timeout and optional proxy.
func NewHTTPFetcher(timeout time.Duration, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

func (f *HTTPFetcher) FetchHTML(ctx context.Context, reportURL string) (string, error) {
	if reportURL == "" {
		return "", fmt.Errorf("fetch report: empty url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reportURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch report: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch report: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read report body: %w", err)
	}
	return string(body), nil
}

// MockFetcher returns canned documents keyed by URL, for development and testing.
type MockFetcher struct {
	Documents map[string]string
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHTML(_ context.Context, reportURL string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	doc, ok := m.Documents[reportURL]
	if !ok {
		return "", fmt.Errorf("fetch report: no document for %s", reportURL)
	}
	return doc, nil
}
