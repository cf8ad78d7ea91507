package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/legisearch/legisearch"
	lshttp "github.com/legisearch/legisearch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>legislation</html>"))
		}))
		defer srv.Close()

		f := lshttp.NewFetcher()
		defer f.Close()

		content, err := f.Fetch(context.Background(), srv.URL+"/uksi/2024/1/made")
		require.NoError(t, err)
		assert.Equal(t, "<html>legislation</html>", content)
	})

	t.Run("normalizes URL to the made variant", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
		}))
		defer srv.Close()

		f := lshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL+"/uksi/2024/1?view=plain")
		require.NoError(t, err)
		assert.Equal(t, "/uksi/2024/1/made", gotPath)
		assert.Empty(t, gotQuery)
	})

	t.Run("sends a browser user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := lshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL+"/uksi/2024/1/made")
		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("returns EFETCH for non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := lshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL+"/uksi/2024/404/made")
		require.Error(t, err)
		assert.Equal(t, legisearch.EFETCH, legisearch.ErrorCode(err))
	})

	t.Run("returns EFETCH when the server is unreachable", func(t *testing.T) {
		t.Parallel()

		f := lshttp.NewFetcher(lshttp.WithTimeout(100 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/uksi/2024/1/made")
		require.Error(t, err)
		assert.Equal(t, legisearch.EFETCH, legisearch.ErrorCode(err))
	})
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already made", "https://www.legislation.gov.uk/uksi/2024/1/made", "https://www.legislation.gov.uk/uksi/2024/1/made"},
		{"appends made", "https://www.legislation.gov.uk/uksi/2024/1", "https://www.legislation.gov.uk/uksi/2024/1/made"},
		{"strips query", "https://www.legislation.gov.uk/uksi/2024/1?view=plain", "https://www.legislation.gov.uk/uksi/2024/1/made"},
		{"trailing slash", "https://www.legislation.gov.uk/uksi/2024/1/", "https://www.legislation.gov.uk/uksi/2024/1/made"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lshttp.NormalizeURL(tt.in))
		})
	}
}
