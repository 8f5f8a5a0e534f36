package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/ping", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "k", r.Header.Get("apikey"))
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"n":1}`, string(b))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "rest/v1/ping", map[string]string{"apikey": "k"}, map[string]int{"n": 1}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestDoJSON_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(" invalid token \n"))
	}))
	defer ts.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodGet, ts.URL, nil, nil, nil)

	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusUnauthorized, herr.StatusCode)
	assert.Equal(t, "invalid token", herr.Body)
}

func TestDoJSON_RelativeWithoutBase(t *testing.T) {
	err := New(0).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("not a url", time.Second)
	require.Error(t, err)
}
