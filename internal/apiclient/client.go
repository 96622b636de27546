// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/dragonball-client/internal/config"
	"github.com/MKhiriev/dragonball-client/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// DefaultTimeout is applied when the configuration carries no positive
// timeout.
const DefaultTimeout = 30 * time.Second

// Client issues HTTP calls against a fixed base URL. Its configuration is
// fixed at construction, so a single Client may be used concurrently.
type Client struct {
	http *utils.HTTPClient

	baseURL  string
	timeout  time.Duration
	headers  http.Header
	recorder EventRecorder
}

// New constructs a [Client] from cfg. It fails fast with [ErrEmptyBaseURL]
// when cfg.BaseURL is blank and with [ErrInvalidBaseURL] when it cannot be
// parsed; no request is ever attempted in either case.
//
// A nil recorder discards all events.
func New(cfg config.API, recorder EventRecorder) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if recorder == nil {
		recorder = nopRecorder{}
	}

	headers := make(http.Header, len(cfg.DefaultHeaders))
	for k, v := range cfg.DefaultHeaders {
		headers.Set(k, v)
	}

	c := &Client{
		http:     utils.NewHTTPClient(),
		baseURL:  baseURL,
		timeout:  timeout,
		headers:  headers,
		recorder: recorder,
	}

	c.http.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(cfg.DefaultHeaders).
		OnBeforeRequest(c.onBeforeRequest).
		OnAfterResponse(c.onAfterResponse)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidBaseURL, u.Scheme)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalized base URL, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// DefaultHeaders returns a copy of the headers sent with every request.
func (c *Client) DefaultHeaders() http.Header {
	return c.headers.Clone()
}

// Do performs a single call. On success it returns the response exactly as the
// transport produced it. On failure it returns a nil response and an [*Error]
// whose FriendlyMessage is never empty.
//
// A request ID is taken from ctx (see utils.RequestIDCtxKey) or generated, and
// is attached to every event recorded for the call.
func (c *Client) Do(ctx context.Context, method, path string, opts ...RequestOption) (*resty.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)
	}
	ctx, dispatch := utils.MarkDispatch(ctx)

	req := c.http.R().SetContext(ctx)
	for _, opt := range opts {
		if opt != nil {
			opt(req)
		}
	}

	// A path that does not resolve is rejected again by onBeforeRequest,
	// which aborts the call as a setup error.
	target, _ := c.resolveURL(path, req.QueryParam)

	resp, err := req.Execute(method, path)

	failure := Classify(Outcome{URL: target, Response: resp, Err: err, Sent: dispatch.Sent()})
	if failure == nil {
		return resp, nil
	}

	return nil, c.reject(failure, method, requestID, resp, err)
}

// Get is shorthand for Do with http.MethodGet.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts...)
}

// Post sends body as the request payload.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPost, path, append([]RequestOption{WithBody(body)}, opts...)...)
}

// Put sends body as the request payload.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPut, path, append([]RequestOption{WithBody(body)}, opts...)...)
}

// Patch sends body as the request payload.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, append([]RequestOption{WithBody(body)}, opts...)...)
}

// Delete is shorthand for Do with http.MethodDelete.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*resty.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts...)
}

// onBeforeRequest is the outbound interception point. It only observes the
// request; an error aborts the call before anything is sent.
func (c *Client) onBeforeRequest(rc *resty.Client, r *resty.Request) error {
	target, err := c.resolveURL(r.URL, r.QueryParam)
	if err != nil {
		return err
	}

	header := rc.Header.Clone()
	if header == nil {
		header = make(http.Header, len(r.Header))
	}
	for k, vv := range r.Header {
		header[k] = append([]string(nil), vv...)
	}

	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	c.recorder.Record(Event{
		Kind:      EventRequest,
		RequestID: requestID,
		Method:    r.Method,
		URL:       target,
		Header:    header,
	})

	return nil
}

// onAfterResponse is the inbound interception point for successful
// responses. Non-2xx responses are left to reject.
func (c *Client) onAfterResponse(_ *resty.Client, resp *resty.Response) error {
	if !resp.IsSuccess() {
		return nil
	}

	requestID, _ := utils.GetRequestIDFromContext(resp.Request.Context())
	c.recorder.Record(Event{
		Kind:      EventResponse,
		RequestID: requestID,
		Method:    resp.Request.Method,
		URL:       resp.Request.URL,
		Status:    resp.StatusCode(),
		Duration:  resp.Time(),
	})

	return nil
}

// reject records the failure diagnostic and builds the error handed back to
// the caller. The original transport error is kept as the cause.
func (c *Client) reject(f Failure, method, requestID string, resp *resty.Response, err error) *Error {
	cause := err

	switch v := f.(type) {
	case ServerResponded:
		if statusErr := mapHTTPError(resp); statusErr != nil {
			if err != nil {
				cause = errors.Join(statusErr, err)
			} else {
				cause = statusErr
			}
		}
		c.recorder.Record(Event{
			Kind:      EventServerError,
			RequestID: requestID,
			Method:    method,
			URL:       v.URL,
			Status:    v.Status,
		})
	case NoResponse:
		c.recorder.Record(Event{
			Kind:      EventNoResponse,
			RequestID: requestID,
			Method:    method,
			URL:       v.URL,
			Message:   v.Message,
			Code:      v.Code,
		})
	case RequestSetupError:
		c.recorder.Record(Event{
			Kind:      EventSetupError,
			RequestID: requestID,
			Method:    method,
			Message:   v.Message,
		})
	}

	return newError(f, method, requestID, resp, cause)
}

// resolveURL mirrors how resty joins a relative path with the base URL and
// appends request query parameters.
func (c *Client) resolveURL(raw string, query url.Values) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	if !u.IsAbs() {
		p := u.String()
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		if u, err = url.Parse(c.baseURL + p); err != nil {
			return "", err
		}
	}

	if len(query) > 0 {
		q := u.Query()
		for k, vv := range query {
			for _, v := range vv {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
