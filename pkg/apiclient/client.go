// Package apiclient is the reusable typed gateway front ends use to talk
// to any entity endpoint with a uniform verb set.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListOptions are the optional paging query parameters; zero values are
// omitted so the server applies its defaults.
type ListOptions struct {
	Page  int
	Limit int
}

// ListResult mirrors the server's page envelope.
type ListResult[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// StatusError reports a non-success HTTP response. The request was made
// exactly once; no retry is attempted.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d (%s)", e.StatusCode, e.Status)
}

// Client issues requests for a single entity path. The same type serves
// every entity; only the entity name and the response shape differ.
type Client[T any] struct {
	baseURL string
	entity  string
	httpc   *http.Client
}

type Option func(*options)

type options struct {
	httpc *http.Client
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpc = c
	}
}

func New[T any](baseURL, entity string, opts ...Option) *Client[T] {
	o := options{httpc: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client[T]{
		baseURL: strings.TrimRight(baseURL, "/"),
		entity:  strings.Trim(entity, "/"),
		httpc:   o.httpc,
	}
}

func (c *Client[T]) GetAll(ctx context.Context, opts ListOptions) (*ListResult[T], error) {
	u := c.collectionURL()
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	var result ListResult[T]
	if err := c.do(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client[T]) GetOne(ctx context.Context, id int64) (*T, error) {
	var record T
	if err := c.do(ctx, http.MethodGet, c.recordURL(id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create posts the entity fields minus the identity field and returns the
// created record.
func (c *Client[T]) Create(ctx context.Context, payload any) (*T, error) {
	var record T
	if err := c.do(ctx, http.MethodPost, c.collectionURL(), payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update patches a subset of the entity's fields and returns the updated
// record.
func (c *Client[T]) Update(ctx context.Context, id int64, patch any) (*T, error) {
	var record T
	if err := c.do(ctx, http.MethodPatch, c.recordURL(id), patch, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client[T]) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.recordURL(id), nil, nil)
}

func (c *Client[T]) collectionURL() string {
	return c.baseURL + "/" + c.entity
}

func (c *Client[T]) recordURL(id int64) string {
	return fmt.Sprintf("%s/%s/%d", c.baseURL, c.entity, id)
}

func (c *Client[T]) do(ctx context.Context, method, rawURL string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
