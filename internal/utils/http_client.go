package utils

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// The underlying transport is decorated so that every call can tell whether
// its request actually reached the network round trip (see [MarkDispatch]).
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client whose transport
// records dispatch into contexts prepared by [MarkDispatch].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	c := resty.New()
	c.SetTransport(&dispatchTransport{next: http.DefaultTransport.(*http.Transport).Clone()})

	return &HTTPClient{Client: c}
}

// Dispatch tracks whether a single request was handed to the network.
// It belongs to exactly one call and must not be shared between calls.
type Dispatch struct {
	sent bool
}

// Sent reports whether the request reached the transport round trip.
func (d *Dispatch) Sent() bool {
	return d != nil && d.sent
}

// DispatchCtxKey is the context key under which [MarkDispatch] stores the
// per-call [Dispatch] marker.
var DispatchCtxKey = contextKey("dispatch")

// MarkDispatch returns a child context carrying a fresh [Dispatch] marker.
// The transport installed by [NewHTTPClient] flips the marker once the
// request is about to be written to the wire.
func MarkDispatch(ctx context.Context) (context.Context, *Dispatch) {
	d := &Dispatch{}
	return context.WithValue(ctx, DispatchCtxKey, d), d
}

type dispatchTransport struct {
	next http.RoundTripper
}

func (t *dispatchTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if d, ok := ctx.Value(DispatchCtxKey).(*Dispatch); ok && ctx.Err() == nil && dialable(req.URL) {
		d.sent = true
	}

	return t.next.RoundTrip(req)
}

// dialable reports whether the wrapped transport would open a connection for
// u. Other schemes are rejected by net/http before anything is dialed.
func dialable(u *url.URL) bool {
	return u != nil && (u.Scheme == "http" || u.Scheme == "https")
}
