package feedcache

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-resty/resty/v2"
)

type apiError struct {
	Message string `json:"message"`
}

// Client drives the feed cache against the books API. One client holds
// one cache; a new login should build a new client.
type Client struct {
	http     *resty.Client
	cache    *Cache
	pageSize int

	mu    sync.Mutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		http:     resty.New().SetBaseURL(baseURL),
		cache:    New(),
		pageSize: 5,
	}
}

// SetPageSize overrides the default page size of 5.
func (cl *Client) SetPageSize(n int) {
	if n >= 1 {
		cl.pageSize = n
	}
}

// SetToken hydrates the bearer credential, typically from the persisted
// login at startup.
func (cl *Client) SetToken(token string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.token = token
}

// ClearToken drops the credential on logout.
func (cl *Client) ClearToken() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.token = ""
}

func (cl *Client) bearer() string {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.token
}

func (cl *Client) Cache() *Cache {
	return cl.cache
}

func (cl *Client) fetchPage(ctx context.Context, page int) (*PageResult, error) {
	var result PageResult
	var apiErr apiError
	resp, err := cl.http.R().
		SetContext(ctx).
		SetAuthToken(cl.bearer()).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(cl.pageSize)).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/books")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return nil, fmt.Errorf("fetching books: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("fetching books: status %d", resp.StatusCode())
	}
	return &result, nil
}

// Refresh fetches page 1 and resets the cache with it. Any fetch still in
// flight when Refresh starts is superseded and its response discarded on
// arrival. A failed refresh leaves the previous feed state untouched.
func (cl *Client) Refresh(ctx context.Context) error {
	gen := cl.cache.BeginRefresh()
	res, err := cl.fetchPage(ctx, 1)
	if err != nil {
		return err
	}
	cl.cache.ApplyReset(gen, res)
	return nil
}

// LoadMore fetches the page after the current one and merges it in. It is
// a no-op while another load-more is in flight or the feed is exhausted.
func (cl *Client) LoadMore(ctx context.Context) error {
	gen, ok := cl.cache.BeginLoadMore()
	if !ok {
		return nil
	}
	defer cl.cache.EndLoadMore()

	res, err := cl.fetchPage(ctx, cl.cache.CurrentPage()+1)
	if err != nil {
		return err
	}
	cl.cache.ApplyAppend(gen, res)
	return nil
}

// DeleteBook asks the server to delete the book and, only once the server
// has acknowledged, removes it from the cache. On any failure the cache is
// untouched and the server's message is returned verbatim.
func (cl *Client) DeleteBook(ctx context.Context, id string) error {
	var apiErr apiError
	resp, err := cl.http.R().
		SetContext(ctx).
		SetAuthToken(cl.bearer()).
		SetError(&apiErr).
		Delete("/api/books/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("deleting book: status %d", resp.StatusCode())
	}

	cl.cache.RemoveByID(id)
	return nil
}
