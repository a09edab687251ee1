package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 3 * time.Second
	maxContentSize = 1 << 22 // 4MiB
)

// Client fetches documents from an IPFS HTTP gateway. Content is addressed by
// cid, so fetched bytes are cached without expiration.
type Client struct {
	client  *http.Client
	cache   *cache.Cache
	gateway string
}

func New(gateway string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	return &Client{
		client:  &httpClient,
		cache:   cache.New(cache.NoExpiration, 15*time.Minute),
		gateway: strings.TrimSuffix(gateway, "/"),
	}
}

// Fetch returns the raw bytes of the document addressed by cid.
func (c *Client) Fetch(ctx context.Context, cid string) ([]byte, error) {

	cacheKey := "cid:" + cid
	if x, found := c.cache.Get(cacheKey); found {
		return x.([]byte), nil
	}

	url := c.gateway + "/ipfs/" + cid
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	c.cache.Set(cacheKey, content, cache.NoExpiration)

	return content, nil
}
