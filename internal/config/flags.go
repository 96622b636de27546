package config

import (
	"errors"
	"flag"
	"io"
	"sort"
	"strings"
	"time"
)

// HeaderFlags collects repeated "Key: Value" header flags.
// It implements the flag.Value interface.
type HeaderFlags map[string]string

// String returns the headers as "Key:Value" pairs joined by commas, sorted by
// key.
func (h HeaderFlags) String() string {
	if len(h) == 0 {
		return ""
	}

	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+":"+h[k])
	}
	return strings.Join(pairs, ",")
}

// Set parses a single "Key: Value" pair. The key must be non-empty; the value
// may be empty.
func (h HeaderFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("need header in a form `Key: Value`")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("header name is empty")
	}

	h[key] = strings.TrimSpace(value)
	return nil
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-base-url API base URL
//	-timeout request timeout (e.g., "30s", "1m")
//	-H/-header default header "Key: Value" (repeatable)
//	-log-level log level (e.g., "debug", "info")
//	-log-file log file path
//	-resource resource to list ("characters" or "planets")
//	-page page number
//	-limit page size
//	-id resource id to show instead of a page
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var baseURL string
	var timeout time.Duration
	headers := HeaderFlags{}
	var logLevel, logFile string
	var resource string
	var page, limit, id int
	var jsonConfigPath string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "base-url", "", "API base URL")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(headers, "H", "Default header `Key: Value` (repeatable)")
	fs.Var(headers, "header", "Default header (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&resource, "resource", "", "Resource to list: characters or planets")
	fs.IntVar(&page, "page", 0, "Page number")
	fs.IntVar(&limit, "limit", 0, "Page size")
	fs.IntVar(&id, "id", 0, "Show a single resource by id")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL: baseURL,
			Timeout: timeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Fetch: Fetch{
			Resource: resource,
			Page:     page,
			Limit:    limit,
			ID:       id,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(headers) > 0 {
		cfg.API.DefaultHeaders = headers
	}

	return cfg, nil
}
