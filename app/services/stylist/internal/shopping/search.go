package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultSearchEndpoint = "https://www.googleapis.com/customsearch/v1"

// SearchConf configures the image search provider (Google Custom Search
// JSON API). Endpoint is overridable for tests.
type SearchConf struct {
	ApiKey   string
	EngineId string
	Endpoint string `json:",optional"`
	Timeout  int64  `json:",default=8000"` // milliseconds
}

// ImageSearcher issues one image query and returns raw provider results.
type ImageSearcher interface {
	Search(ctx context.Context, query string, num int) ([]SearchItem, error)
}

// SearchItem is one raw image result. Link is the direct image url;
// Image.ContextLink points at the page hosting it.
type SearchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
	Image       struct {
		ContextLink string `json:"contextLink"`
	} `json:"image"`
}

type searchResponse struct {
	Items []SearchItem `json:"items"`
}

type cseClient struct {
	conf   SearchConf
	client *resty.Client
}

// NewImageSearcher builds a Custom Search client from config.
func NewImageSearcher(c SearchConf) ImageSearcher {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultSearchEndpoint
	}
	timeout := time.Duration(c.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &cseClient{
		conf: c,
		client: resty.New().
			SetBaseURL(endpoint).
			SetTimeout(timeout),
	}
}

func (c *cseClient) Search(ctx context.Context, query string, num int) ([]SearchItem, error) {
	var out searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        c.conf.ApiKey,
			"cx":         c.conf.EngineId,
			"q":          query,
			"num":        fmt.Sprintf("%d", num),
			"searchType": "image",
			"gl":         "us",
		}).
		SetResult(&out).
		Get("")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("image search status %d: %s", resp.StatusCode(), resp.String())
	}
	return out.Items, nil
}
