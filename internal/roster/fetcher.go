package roster

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"SKCCTracker/internal/model"
)

// Fetcher retrieves the raw roster listing for one award tier.
type Fetcher interface {
	Fetch(tier model.Tier) (string, error)
	Name() string
}

// HTTPFetcher pulls rosters from the SKCC website.
type HTTPFetcher struct {
	URLs    map[model.Tier]string
	Client  *http.Client
	Retries int
	Backoff time.Duration
}

// NewHTTPFetcher creates a fetcher with optional proxy support.
func NewHTTPFetcher(urls map[model.Tier]string, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		URLs: urls,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Retries: 3,
		Backoff: 2 * time.Second,
	}
}

func (f *HTTPFetcher) Name() string { return "skccgroup.com" }

// Fetch downloads the roster page, retrying with fixed backoff. Attempts are
// bounded; the caller degrades to cache on failure rather than waiting.
func (f *HTTPFetcher) Fetch(tier model.Tier) (string, error) {
	endpoint, ok := f.URLs[tier]
	if !ok || endpoint == "" {
		return "", fmt.Errorf("no roster URL configured for %s", tier)
	}

	var lastErr error
	for attempt := 0; attempt < f.Retries; attempt++ {
		if attempt > 0 {
			time.Sleep(f.Backoff)
		}
		body, err := f.fetchOnce(endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("fetch %s roster: %w", tier, lastErr)
}

func (f *HTTPFetcher) fetchOnce(endpoint string) (string, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "SKCCTracker/1.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// MockFetcher returns controllable fixed payloads for development and testing.
type MockFetcher struct {
	Payloads map[model.Tier]string
	Err      error
	Calls    int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(tier model.Tier) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Payloads[tier], nil
}
