package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchHit(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"lat":"42.6629","lon":"20.2886","display_name":"Peja, Kosovo"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-agent")
	lat, lng, ok, err := c.Search(context.Background(), "Pejë", "Kosovo")

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 42.6629, lat)
	require.Equal(t, 20.2886, lng)
	require.Equal(t, "Pejë, Kosovo", gotQuery)
	require.Equal(t, "test-agent", gotUA)
}

func TestSearchMissIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, _, ok, err := c.Search(context.Background(), "Rruga pa emër", "Kosovo")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, _, _, err := c.Search(context.Background(), "Prizren", "Kosovo")
	require.Error(t, err)
}

func TestSearchUnparsableCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"not-a-number","lon":"20.0"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, _, ok, err := c.Search(context.Background(), "Prizren", "Kosovo")
	require.NoError(t, err)
	require.False(t, ok)
}
