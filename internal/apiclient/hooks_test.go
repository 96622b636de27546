package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/dragonball-client/internal/apiclient"
	"github.com/MKhiriev/dragonball-client/internal/config"
	"github.com/MKhiriev/dragonball-client/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedClient(t *testing.T, baseURL string, rec apiclient.EventRecorder) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(config.API{BaseURL: baseURL, Timeout: time.Second}, rec)
	require.NoError(t, err)
	return c
}

func TestHooks_RecordRequestThenResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	rec := mock.NewMockEventRecorder(ctrl)

	gomock.InOrder(
		rec.EXPECT().Record(gomock.Any()).Do(func(ev apiclient.Event) {
			assert.Equal(t, apiclient.EventRequest, ev.Kind)
			assert.Equal(t, http.MethodGet, ev.Method)
			assert.Equal(t, srv.URL+"/planets", ev.URL)
		}),
		rec.EXPECT().Record(gomock.Any()).Do(func(ev apiclient.Event) {
			assert.Equal(t, apiclient.EventResponse, ev.Kind)
			assert.Equal(t, http.StatusOK, ev.Status)
		}),
	)

	c := newMockedClient(t, srv.URL, rec)
	_, err := c.Get(context.Background(), "/planets")
	require.NoError(t, err)
}

func TestHooks_RecordServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	rec := mock.NewMockEventRecorder(ctrl)

	gomock.InOrder(
		rec.EXPECT().Record(gomock.Any()),
		rec.EXPECT().Record(gomock.Any()).Do(func(ev apiclient.Event) {
			assert.Equal(t, apiclient.EventServerError, ev.Kind)
			assert.Equal(t, http.StatusServiceUnavailable, ev.Status)
			assert.Equal(t, srv.URL+"/planets/1", ev.URL)
		}),
	)

	c := newMockedClient(t, srv.URL, rec)
	_, err := c.Get(context.Background(), "/planets/1")

	msg, ok := apiclient.FriendlyMessageOf(err)
	require.True(t, ok)
	assert.Equal(t, "Error del servidor: 503", msg)
}

func TestHooks_NoEventsWhenConstructionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mock.NewMockEventRecorder(ctrl)
	rec.EXPECT().Record(gomock.Any()).Times(0)

	c, err := apiclient.New(config.API{BaseURL: ""}, rec)

	assert.Nil(t, c)
	assert.ErrorIs(t, err, apiclient.ErrEmptyBaseURL)
}
