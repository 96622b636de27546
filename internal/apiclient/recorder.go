// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"net/http"
	"time"

	"github.com/MKhiriev/dragonball-client/internal/logger"
)

//go:generate mockgen -source=recorder.go -destination=../mock/event_recorder_mock.go -package=mock

// EventKind identifies what an [Event] describes.
type EventKind int

const (
	// EventRequest is recorded by the outbound hook before a request is sent.
	EventRequest EventKind = iota + 1
	// EventResponse is recorded for every 2xx response.
	EventResponse
	// EventServerError is recorded for [ServerResponded] failures.
	EventServerError
	// EventNoResponse is recorded for [NoResponse] failures.
	EventNoResponse
	// EventSetupError is recorded for [RequestSetupError] failures.
	EventSetupError
)

func (k EventKind) String() string {
	switch k {
	case EventRequest:
		return "request"
	case EventResponse:
		return "response"
	case EventServerError:
		return "server_error"
	case EventNoResponse:
		return "no_response"
	case EventSetupError:
		return "setup_error"
	default:
		return "unknown"
	}
}

// Event is a single diagnostic record emitted by the client. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind      EventKind
	RequestID string
	Method    string
	URL       string
	// Header holds the merged default and per-request headers of an
	// outbound request. It is a copy and may be retained.
	Header   http.Header
	Status   int
	Message  string
	Code     string
	Duration time.Duration
}

// EventRecorder receives client diagnostics. Implementations must be safe for
// concurrent use: calls in flight on different goroutines record in parallel.
type EventRecorder interface {
	Record(ev Event)
}

type nopRecorder struct{}

func (nopRecorder) Record(Event) {}

// LogRecorder writes events to a zerolog-backed [logger.Logger].
type LogRecorder struct {
	log *logger.Logger
}

// NewLogRecorder returns an [EventRecorder] that logs through l. A nil logger
// discards everything.
func NewLogRecorder(l *logger.Logger) *LogRecorder {
	if l == nil {
		l = logger.Nop()
	}
	return &LogRecorder{log: l}
}

// Record implements [EventRecorder]. Requests and responses are logged at
// info level, failures at error level.
func (r *LogRecorder) Record(ev Event) {
	switch ev.Kind {
	case EventRequest:
		r.log.Info().
			Str("request_id", ev.RequestID).
			Str("method", ev.Method).
			Str("url", ev.URL).
			Msg("outbound request")
	case EventResponse:
		r.log.Info().
			Str("request_id", ev.RequestID).
			Str("url", ev.URL).
			Int("status", ev.Status).
			Dur("duration", ev.Duration).
			Msg("response received")
	case EventServerError:
		r.log.Error().
			Str("request_id", ev.RequestID).
			Int("status", ev.Status).
			Str("url", ev.URL).
			Msg("server responded with error")
	case EventNoResponse:
		r.log.Error().
			Str("request_id", ev.RequestID).
			Str("url", ev.URL).
			Str("error", ev.Message).
			Str("code", ev.Code).
			Msg("no response from server")
	case EventSetupError:
		r.log.Error().
			Str("request_id", ev.RequestID).
			Str("error", ev.Message).
			Msg("request setup failed")
	default:
		r.log.Warn().Int("kind", int(ev.Kind)).Msg("unknown client event")
	}
}
