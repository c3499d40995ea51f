// Package api fetches the three public collections the pages render.
//
// Every call issues exactly one GET. There are no retries and no timeout:
// a request runs until it succeeds, fails, or its context is cancelled.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Makepad-fr/tada/internal/model"
)

const (
	DefaultUsersBaseURL    = "https://jsonplaceholder.typicode.com"
	DefaultProductsBaseURL = "https://dummyjson.com"

	DefaultTodoLimit    = 20
	DefaultProductLimit = 100
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	text := http.StatusText(e.Code)
	if text == "" {
		text = "unknown status"
	}
	return fmt.Sprintf("HTTP request failed: %d %s", e.Code, text)
}

type Options struct {
	UsersBaseURL    string
	ProductsBaseURL string

	// HTTPClient replaces the transport resty uses. Optional.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	http         *resty.Client
	usersBase    string
	productsBase string
	log          *slog.Logger
}

func NewClient(opts Options) *Client {
	if opts.UsersBaseURL == "" {
		opts.UsersBaseURL = DefaultUsersBaseURL
	}
	if opts.ProductsBaseURL == "" {
		opts.ProductsBaseURL = DefaultProductsBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetRetryCount(0)
	rc.SetHeader("Accept", "application/json")

	c := &Client{
		http:         rc,
		usersBase:    strings.TrimRight(opts.UsersBaseURL, "/"),
		productsBase: strings.TrimRight(opts.ProductsBaseURL, "/"),
		log:          opts.Logger,
	}
	instrument(rc, c.log)
	return c
}

// Users fetches the full user list.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, c.usersBase+"/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Todos fetches the first `limit` todos.
func (c *Client) Todos(ctx context.Context, limit int) ([]model.Todo, error) {
	var todos []model.Todo
	q := map[string]string{"_limit": strconv.Itoa(limit)}
	if err := c.getJSON(ctx, c.usersBase+"/todos", q, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Products fetches up to `limit` products and unwraps the page envelope.
// A body without a products field yields an empty, non-nil slice.
func (c *Client) Products(ctx context.Context, limit int) ([]model.Product, error) {
	var page model.ProductPage
	q := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.getJSON(ctx, c.productsBase+"/products", q, &page); err != nil {
		return nil, err
	}
	if page.Products == nil {
		page.Products = []model.Product{}
	}
	return page.Products, nil
}

func (c *Client) getJSON(ctx context.Context, url string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	res, err := req.Get(url)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	if !res.IsSuccess() {
		return &StatusError{Code: res.StatusCode(), URL: url}
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
