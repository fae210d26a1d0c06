package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsilvagit/ajudaja/internal/httpclient"
)

func newFetcher(t *testing.T) *Fetcher {
	t.Helper()
	c, err := httpclient.New(httpclient.Options{MaxRetries: 1})
	require.NoError(t, err)
	return NewFetcher(c)
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_PrefersOpenGraph(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><head>
<title>Oceano Limpo</title>
<meta name="description" content="Plain description">
<meta property="og:title" content="Oceano Limpo | Mutirões">
<meta property="og:description" content="  Limpeza   de praias
 no litoral baiano ">
</head><body></body></html>`)

	p, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, p.URL)
	assert.Equal(t, "Oceano Limpo | Mutirões", p.Title)
	assert.Equal(t, "Limpeza de praias no litoral baiano", p.Description)
}

func TestFetch_FallsBackToPlainTags(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><head><title> Teto Brasil </title>
<meta name="description" content="Construindo casas"></head></html>`)

	p, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Teto Brasil", p.Title)
	assert.Equal(t, "Construindo casas", p.Description)
	assert.False(t, p.Empty())
}

func TestFetch_EmptyPage(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><body>oi</body></html>`)

	p, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestFetch_BadStatus(t *testing.T) {
	srv := serve(t, http.StatusNotFound, "")

	_, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preview: unexpected status 404")
}
