package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey(t *testing.T) {
	k := BuildKey("municipios:29")
	assert.Regexp(t, `^ajudaja:municipios:[0-9a-f]{16}$`, k)
	assert.Equal(t, k, BuildKey(" MUNICIPIOS:29 "))
	assert.NotEqual(t, k, BuildKey("municipios:35"))
	assert.Regexp(t, `^ajudaja:estados:[0-9a-f]{16}$`, BuildKey("estados"))
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not a url", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache: invalid redis URL")
}

// Runs only when a Redis instance is available, ex: REDIS_TEST_URL=redis://localhost:6379/15
func TestCache_RoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	c, err := New(url, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	ctx := t.Context()
	type state struct {
		Sigla string `json:"sigla"`
	}
	require.NoError(t, c.Set(ctx, "estados:test", []state{{Sigla: "BA"}}))

	var got []state
	require.True(t, c.Get(ctx, "estados:test", &got))
	assert.Equal(t, []state{{Sigla: "BA"}}, got)

	assert.False(t, c.Get(ctx, "estados:missing", &got))
}
