package lottie

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withPageURL(t *testing.T, page, url string) {
	t.Helper()
	old, hadOld := pageURLs[page]
	pageURLs[page] = url
	t.Cleanup(func() {
		if hadOld {
			pageURLs[page] = old
		} else {
			delete(pageURLs, page)
		}
	})
}

func TestFetch_UnknownPage(t *testing.T) {
	c := New(time.Second)
	assert.Nil(t, c.Fetch(context.Background(), "no-such-page"))
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"v":"5.5.7","layers":[]}`))
	}))
	defer srv.Close()
	withPageURL(t, "test-page", srv.URL)

	c := New(time.Second)
	got := c.Fetch(context.Background(), "test-page")
	assert.JSONEq(t, `{"v":"5.5.7","layers":[]}`, string(got))
}

func TestFetch_FailuresAreSwallowed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "invalid json body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>not json</html>"))
			},
		},
		{
			name: "slow upstream",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			withPageURL(t, "test-page", srv.URL)

			c := New(50 * time.Millisecond)
			assert.Nil(t, c.Fetch(context.Background(), "test-page"))
		})
	}
}

func TestFetch_DeadCDN(t *testing.T) {
	// Закрытый сервер имитирует недоступный CDN.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	withPageURL(t, "test-page", srv.URL)

	c := New(time.Second)
	assert.Nil(t, c.Fetch(context.Background(), "test-page"))
}
