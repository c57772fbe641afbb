package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jsonviews/internal/model"
	"jsonviews/internal/service"
	"jsonviews/pkg/apiinfo"
	"jsonviews/pkg/pagination"
)

const DefaultTimeout = 10 * time.Second

var (
	ErrTransport        = errors.New("transport error")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecode           = errors.New("error decoding response")
	ErrBuildingRequest  = errors.New("error building request")
)

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

var _ service.PlaceholderAPI = (*Client)(nil)

// NewClient returns a client for the API rooted at baseURL. A nil httpClient
// gets a default one with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = apiinfo.DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.do(ctx, http.MethodGet, apiinfo.UsersResource, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPosts(ctx context.Context, page pagination.PageRequest) ([]model.Post, error) {
	var out []model.Post
	if err := c.do(ctx, http.MethodGet, apiinfo.PostsResource, page.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePost sends the post and returns what the API echoes back. The
// returned id is assigned by the remote side but nothing is stored there.
func (c *Client) CreatePost(ctx context.Context, req model.NewPost) (model.Post, error) {
	var out model.Post
	if err := c.do(ctx, http.MethodPost, apiinfo.PostsResource, nil, req, &out); err != nil {
		return model.Post{}, err
	}
	return out, nil
}

func (c *Client) endpoint(resource string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + "/" + resource
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) do(ctx context.Context, method, resource string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildingRequest, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(resource, query), body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingRequest, err)
	}
	req.Header.Set(apiinfo.AcceptHeader, "application/json")
	if in != nil {
		req.Header.Set(apiinfo.ContentTypeHeader, apiinfo.JSONContentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s %s: %d", ErrUnexpectedStatus, method, resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, resource, err)
	}
	return nil
}
