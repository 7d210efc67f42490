package sportsday

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

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const requestIDHeader = "X-Request-Id"

// Client talks to the sports-day REST API. Every response body is wrapped in a
// `{"data": ...}` envelope which the client removes before decoding into out.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// StatusError is returned for every response outside of the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code from sports-day %s %s: %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err was caused by a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type client struct {
	url        string
	httpClient *http.Client
	// Identical GETs that are in flight at the same time share one request.
	gets singleflight.Group
}

func New(baseURL string, httpClient *http.Client) (Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing sports-day url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("sports-day url must be http or https, got: '%s'", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	c := &client{
		url:        strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *client) Get(ctx context.Context, path string, out any) error {
	ch := c.gets.DoChan(path, func() (any, error) {
		// The shared request must not die with whichever caller happened to start it.
		return c.do(context.WithoutCancel(ctx), http.MethodGet, path, nil)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decodeData(res.Val.(json.RawMessage), out, path)
	}
}

func (c *client) Post(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeData(data, out, path)
}

func (c *client) Put(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeData(data, out, path)
}

func (c *client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding sports-day request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", c.url, path), reader)
	if err != nil {
		return nil, fmt.Errorf("error creating sports-day http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending sports-day http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing response from sports-day: %w", err)
	}
	return env.Data, nil
}

func decodeData(data json.RawMessage, out any, path string) error {
	if out == nil {
		return nil
	}
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("no data in sports-day response for %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error parsing data from sports-day for %s: %w", path, err)
	}
	return nil
}
