package rcsb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driven"
)

const (
	// requestTimeout bounds one download request.
	requestTimeout = 15 * time.Second

	// requestsPerSecond is the proactive client-side throttle. The RCSB
	// download service publishes no hard quota; staying near 5 req/s
	// keeps bulk batches polite.
	requestsPerSecond = 5
)

// Ensure Client implements the interface.
var _ driven.EntryFetcher = (*Client)(nil)

// Client downloads PDB entries from the RCSB archive.
type Client struct {
	httpClient *http.Client
	urlFormat  string
	limiter    *rate.Limiter
}

// NewClient creates a download client. urlFormat must contain one %s
// placeholder for the upper-cased PDB identifier; empty means the
// default RCSB endpoint.
func NewClient(urlFormat string) *Client {
	if urlFormat == "" {
		urlFormat = domain.DefaultDownloadURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		urlFormat:  urlFormat,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Fetch retrieves the PDB-format text for the given identifier.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return nil, fmt.Errorf("%w: empty PDB identifier", domain.ErrInvalidInput)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(c.urlFormat, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", id, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: PDB ID %s (%s)", domain.ErrNotFound, id, url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("downloading %s: HTTP %d from %s", id, resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}
	return data, nil
}
