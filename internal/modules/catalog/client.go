package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the canonical catalog source.
const DefaultEndpoint = "https://four30finalback-1.onrender.com/"

var ErrNotArray = errors.New("catalog response is not a JSON array")

// Fetcher is what the Loader needs from a catalog source.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Client fetches the product list from the remote catalog API.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

func (c *Client) Endpoint() string { return c.endpoint }

// FetchProducts issues a single GET against the catalog endpoint. No retries.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, truncate(body, 256))
	}

	return decodeProducts(body)
}

func decodeProducts(body []byte) ([]Product, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("error unmarshalling catalog response: %w", err)
	}
	if raw == nil {
		// literal null
		return nil, ErrNotArray
	}

	products := make([]Product, 0, len(raw))
	for i, r := range raw {
		var p Product
		if err := json.Unmarshal(r, &p); err != nil {
			return nil, fmt.Errorf("error unmarshalling product %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
