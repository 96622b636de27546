package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func rawResponse(status int) *resty.Response {
	return &resty.Response{RawResponse: &http.Response{StatusCode: status}}
}

func TestClassify(t *testing.T) {
	refused := &url.Error{Op: "Get", URL: "http://127.0.0.1:1/characters", Err: &net.OpError{
		Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED),
	}}

	tests := []struct {
		name    string
		outcome Outcome
		want    Failure
	}{
		{
			name:    "2xx is success",
			outcome: Outcome{URL: "http://api/characters", Response: rawResponse(http.StatusOK), Sent: true},
			want:    nil,
		},
		{
			name:    "204 is success",
			outcome: Outcome{URL: "http://api/characters", Response: rawResponse(http.StatusNoContent), Sent: true},
			want:    nil,
		},
		{
			name:    "404 response",
			outcome: Outcome{URL: "http://api/characters/999", Response: rawResponse(http.StatusNotFound), Sent: true},
			want:    ServerResponded{Status: http.StatusNotFound, URL: "http://api/characters/999"},
		},
		{
			name:    "500 response",
			outcome: Outcome{URL: "http://api/planets", Response: rawResponse(http.StatusInternalServerError), Sent: true},
			want:    ServerResponded{Status: http.StatusInternalServerError, URL: "http://api/planets"},
		},
		{
			name:    "error after 2xx response still counts as responded",
			outcome: Outcome{URL: "http://api/characters", Response: rawResponse(http.StatusOK), Err: errors.New("invalid character"), Sent: true},
			want:    ServerResponded{Status: http.StatusOK, URL: "http://api/characters"},
		},
		{
			name:    "response wins over sent flag",
			outcome: Outcome{URL: "http://api/x", Response: rawResponse(http.StatusBadGateway), Err: errors.New("boom"), Sent: false},
			want:    ServerResponded{Status: http.StatusBadGateway, URL: "http://api/x"},
		},
		{
			name:    "sent without response",
			outcome: Outcome{URL: "http://127.0.0.1:1/characters", Response: &resty.Response{}, Err: refused, Sent: true},
			want:    NoResponse{URL: "http://127.0.0.1:1/characters", Message: refused.Error(), Code: CodeConnectionRefused},
		},
		{
			name:    "nil response and sent",
			outcome: Outcome{URL: "http://api/x", Err: context.DeadlineExceeded, Sent: true},
			want:    NoResponse{URL: "http://api/x", Message: context.DeadlineExceeded.Error(), Code: CodeTimeout},
		},
		{
			name:    "never sent",
			outcome: Outcome{URL: "http://api/x", Err: errors.New("bad base url")},
			want:    RequestSetupError{Message: "bad base url"},
		},
		{
			name:    "nothing happened",
			outcome: Outcome{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.outcome))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	outcomes := []Outcome{
		{URL: "http://api/characters/1", Response: rawResponse(http.StatusNotFound)},
		{URL: "http://api/characters/1", Err: errors.New("dial tcp: i/o timeout"), Sent: true},
		{Err: errors.New("malformed")},
	}

	for _, o := range outcomes {
		first := Classify(o)
		second := Classify(o)

		assert.Equal(t, first, second)
		assert.Equal(t, FriendlyMessage(first), FriendlyMessage(second))
	}
}

func TestClassify_ResponseURLFallback(t *testing.T) {
	u, _ := url.Parse("http://api/characters?page=2")
	resp := &resty.Response{RawResponse: &http.Response{
		StatusCode: http.StatusTeapot,
		Request:    &http.Request{URL: u},
	}}

	got := Classify(Outcome{Response: resp})

	assert.Equal(t, ServerResponded{Status: http.StatusTeapot, URL: "http://api/characters?page=2"}, got)
}

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name    string
		failure Failure
		want    string
	}{
		{name: "server 404", failure: ServerResponded{Status: 404}, want: "Error del servidor: 404"},
		{name: "server 503", failure: ServerResponded{Status: 503}, want: "Error del servidor: 503"},
		{name: "no response", failure: NoResponse{Message: "dial tcp: refused", Code: CodeConnectionRefused}, want: "No se pudo conectar al servidor. Verifica tu conexión a internet."},
		{name: "setup verbatim", failure: RequestSetupError{Message: `parse ":%": missing protocol scheme  `}, want: `parse ":%": missing protocol scheme  `},
		{name: "setup empty", failure: RequestSetupError{}, want: MsgConnectionError},
		{name: "nil", failure: nil, want: MsgConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendlyMessage(tt.failure)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, KindServerResponded, ServerResponded{}.Kind())
	assert.Equal(t, KindNoResponse, NoResponse{}.Kind())
	assert.Equal(t, KindRequestSetup, RequestSetupError{}.Kind())

	assert.Equal(t, "server_responded", KindServerResponded.String())
	assert.Equal(t, "no_response", KindNoResponse.String())
	assert.Equal(t, "request_setup", KindRequestSetup.String())
	assert.Equal(t, "unknown", FailureKind(0).String())
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: CodeTimeout},
		{name: "net timeout", err: &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}}, want: CodeTimeout},
		{name: "refused", err: &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, want: CodeConnectionRefused},
		{name: "reset", err: &net.OpError{Op: "read", Err: os.NewSyscallError("read", syscall.ECONNRESET)}, want: CodeConnectionReset},
		{name: "dns", err: &net.OpError{Op: "dial", Err: &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}}, want: CodeHostNotFound},
		{name: "other", err: errors.New("EOF"), want: CodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}
