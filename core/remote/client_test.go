package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"number-management-service/core/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchNumbers(t *testing.T) {
	client := remote.NewClient(remote.Config{UserAgent: "test-agent"})

	t.Run("Success", func(t *testing.T) {
		srv := newSource(t, http.StatusOK, `{"numbers":[3,1,2]}`)

		numbers, err := client.FetchNumbers(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 2}, numbers)
	})

	t.Run("ExtraFieldsIgnored", func(t *testing.T) {
		srv := newSource(t, http.StatusOK, `{"source":"primes","numbers":[2,3,5,7]}`)

		numbers, err := client.FetchNumbers(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 5, 7}, numbers)
	})

	t.Run("MissingField", func(t *testing.T) {
		srv := newSource(t, http.StatusOK, `{"values":[1,2]}`)

		numbers, err := client.FetchNumbers(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.NotNil(t, numbers)
		assert.Empty(t, numbers)
	})

	t.Run("MalformedField", func(t *testing.T) {
		for _, body := range []string{
			`{"numbers":"1,2,3"}`,
			`{"numbers":null}`,
			`{"numbers":[1,"two",3]}`,
			`{"numbers":{"a":1}}`,
		} {
			srv := newSource(t, http.StatusOK, body)

			numbers, err := client.FetchNumbers(context.Background(), srv.URL)
			require.NoError(t, err, body)
			assert.NotNil(t, numbers, body)
			assert.Empty(t, numbers, body)
		}
	})

	t.Run("NumberNotation", func(t *testing.T) {
		tests := []struct {
			body string
			want []int64
		}{
			{`{"numbers":[1.0, 2]}`, []int64{1, 2}},
			{`{"numbers":[1e2, -3E0]}`, []int64{100, -3}},
			{`{"numbers":[9223372036854775807, -9223372036854775808]}`, []int64{9223372036854775807, -9223372036854775808}},
			{`{"numbers":[1, 99999999999999999999]}`, []int64{1}},
			{`{"numbers":[1, 2.5, 1e400]}`, []int64{1}},
			{`{"numbers":[1.5]}`, []int64{}},
		}

		for _, tt := range tests {
			srv := newSource(t, http.StatusOK, tt.body)

			numbers, err := client.FetchNumbers(context.Background(), srv.URL)
			require.NoError(t, err, tt.body)
			assert.Equal(t, tt.want, numbers, tt.body)
		}
	})

	t.Run("MalformedBody", func(t *testing.T) {
		for _, body := range []string{
			`{"numbers":[1,2`,
			`{"numbers":[1,2]} trailing garbage`,
			`{"numbers":[1,2]}{"numbers":[99]}`,
			`[1,2,3]`,
			``,
		} {
			srv := newSource(t, http.StatusOK, body)

			numbers, err := client.FetchNumbers(context.Background(), srv.URL)
			assert.Nil(t, numbers, body)
			var srcErr *remote.SourceError
			require.ErrorAs(t, err, &srcErr, body)
			assert.Equal(t, srv.URL, srcErr.URL)
			assert.Contains(t, err.Error(), "decode body", body)
			assert.False(t, srcErr.Timeout())
		}
	})

	t.Run("BodyTooLarge", func(t *testing.T) {
		body := `{"numbers":[1],"padding":"` + strings.Repeat("x", remote.MaxBodyBytes) + `"}`
		srv := newSource(t, http.StatusOK, body)

		_, err := client.FetchNumbers(context.Background(), srv.URL)
		var srcErr *remote.SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.ErrorIs(t, err, remote.ErrBodyTooLarge)
		assert.Contains(t, err.Error(), "body exceeds limit")
	})

	t.Run("BadStatus", func(t *testing.T) {
		srv := newSource(t, http.StatusServiceUnavailable, `{"numbers":[1]}`)

		_, err := client.FetchNumbers(context.Background(), srv.URL)
		var srcErr *remote.SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, http.StatusServiceUnavailable, srcErr.StatusCode)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("InvalidURL", func(t *testing.T) {
		_, err := client.FetchNumbers(context.Background(), "://not-a-url")
		var srcErr *remote.SourceError
		assert.ErrorAs(t, err, &srcErr)
	})

	t.Run("Timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		start := time.Now()
		_, err := client.FetchNumbers(context.Background(), srv.URL)
		elapsed := time.Since(start)

		var srcErr *remote.SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.True(t, srcErr.Timeout())
		assert.Less(t, elapsed, 1500*time.Millisecond)
	})

	t.Run("UserAgent", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(`{"numbers":[]}`))
		}))
		defer srv.Close()

		_, err := client.FetchNumbers(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", got)
	})
}

func TestSourceError_Unwrap(t *testing.T) {
	err := &remote.SourceError{URL: "http://a", Err: context.DeadlineExceeded}
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, err.Timeout())
	assert.Contains(t, err.Error(), "http://a")
}
