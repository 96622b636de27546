package apiclient

import "github.com/go-resty/resty/v2"

// RequestOption customizes a single call before it is executed.
type RequestOption func(*resty.Request)

// WithHeader sets a request header, overriding a default header of the same
// name for this call only.
func WithHeader(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader(key, value)
	}
}

// WithQueryParam adds a single query parameter.
func WithQueryParam(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParam(key, value)
	}
}

// WithQueryParams adds several query parameters.
func WithQueryParams(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

// WithBody sets the request payload. Structs, maps and slices are encoded as
// JSON.
func WithBody(body any) RequestOption {
	return func(r *resty.Request) {
		r.SetBody(body)
	}
}

// WithResult decodes a 2xx JSON response body into dst.
func WithResult(dst any) RequestOption {
	return func(r *resty.Request) {
		r.SetResult(dst)
	}
}
