package inspect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Common HTTP client with reasonable defaults
var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	},
}

// InspectRemote downloads the font at url and reports on it. The font
// never touches disk: the bytes are registered with the in-memory loader
// under the URL, so the report's URI is the URL itself.
func InspectRemote(ctx context.Context, url string) (Report, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return Report{}, fmt.Errorf("creating download request: %w", err)
	}

	req.Header.Set("User-Agent", "FontInspector/1.0")

	resp, err := defaultClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("downloading font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("reading font data: %w", err)
	}

	return InspectBytes(url, data)
}
