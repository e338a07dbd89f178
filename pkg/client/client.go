// Package client is the typed Go client for the billing API. Reads go
// through a stale-time cache and retry transient failures; mutations are
// fail-fast (never retried) and invalidate the related cached reads, which
// makes list views eventually consistent with a just-written entity.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/internal/domain/pagination"
)

const (
	defaultTimeout = 15 * time.Second
	readRetries    = 2 // additional attempts after the first
)

// Client talks to one API server on behalf of one session.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	cache   *queryCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithStaleTime overrides how long cached reads stay fresh.
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) { c.cache.staleTime = d }
}

// New builds a client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
		cache:   newQueryCache(defaultStaleTime),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the Bearer session token for subsequent calls.
func (c *Client) SetToken(token string) { c.token = token }

// ListParams are the cursor/limit/search query parameters of list calls.
type ListParams struct {
	Cursor string
	Limit  int
	Search string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// ── Auth ─────────────────────────────────────────────────────────────────────

// Login authenticates and installs the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.mutate(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out, nil)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.mutate(ctx, http.MethodPost, "/api/auth/register", in, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Companies ────────────────────────────────────────────────────────────────

// ListCompanies fetches one cursor page, served from cache while fresh.
func (c *Client) ListCompanies(ctx context.Context, p ListParams) (pagination.Page[dto.CompanyResponse], error) {
	var out pagination.Page[dto.CompanyResponse]
	err := c.read(ctx, "/api/companies", p.query(), &out)
	return out, err
}

// GetCompany fetches one company.
func (c *Client) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	if err := c.read(ctx, "/api/companies/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCompany creates a company and invalidates cached company reads.
func (c *Client) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	if err := c.mutate(ctx, http.MethodPost, "/api/companies", in, &out, []string{"/api/companies"}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCompany applies a partial update and invalidates cached company reads.
func (c *Client) UpdateCompany(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	if err := c.mutate(ctx, http.MethodPut, "/api/companies/"+id, in, &out, []string{"/api/companies"}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Customers ────────────────────────────────────────────────────────────────

// ListCustomers fetches one cursor page of customers.
func (c *Client) ListCustomers(ctx context.Context, p ListParams) (pagination.Page[dto.CustomerResponse], error) {
	var out pagination.Page[dto.CustomerResponse]
	err := c.read(ctx, "/api/customers", p.query(), &out)
	return out, err
}

// GetCustomer fetches one customer.
func (c *Client) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	if err := c.read(ctx, "/api/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer creates a customer and invalidates cached customer reads.
func (c *Client) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	if err := c.mutate(ctx, http.MethodPost, "/api/customers", in, &out, []string{"/api/customers"}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer applies a partial update and invalidates cached customer reads.
func (c *Client) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	if err := c.mutate(ctx, http.MethodPut, "/api/customers/"+id, in, &out, []string{"/api/customers"}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Stats ────────────────────────────────────────────────────────────────────

// GetStats fetches the dashboard aggregate for one company.
func (c *Client) GetStats(ctx context.Context, companyID string) (*dto.StatsResponse, error) {
	q := url.Values{}
	q.Set("companyId", companyID)
	var out dto.StatsResponse
	if err := c.read(ctx, "/api/stats", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Transport ────────────────────────────────────────────────────────────────

// read serves GET requests through the cache, retrying transient failures.
func (c *Client) read(ctx context.Context, path string, query url.Values, out any) error {
	key := cacheKey(path, query)
	if b, ok := c.cache.get(key); ok {
		return json.Unmarshal(b, out)
	}

	var lastErr error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return &APIError{Code: CodeTimeout, Message: ctx.Err().Error()}
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
		data, err := c.do(ctx, http.MethodGet, path, query, nil)
		if err == nil {
			c.cache.set(key, data)
			return json.Unmarshal(data, out)
		}
		lastErr = err
		if !isTransient(err) {
			return err
		}
	}
	return lastErr
}

// mutate sends a write once (fail-fast, no retry) and invalidates the given
// cache prefixes on success. Invalidation only marks entries stale; the next
// read refetches, so other views converge eventually rather than
// synchronously.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any, invalidate []string) error {
	data, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	for _, prefix := range invalidate {
		c.cache.invalidatePrefix(prefix)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// envelope is the server's uniform wire wrapper.
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Field   string              `json:"field"`
	Fields  []domain.FieldError `json:"fields"`
}

// do performs one HTTP round trip and unwraps the envelope, returning the raw
// data payload or an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Code: CodeServer, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if !env.Success {
		return nil, apiErrorFromEnvelope(resp.StatusCode, env)
	}
	return env.Data, nil
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
