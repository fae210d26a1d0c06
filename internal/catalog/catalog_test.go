package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(t *testing.T, s *Service) []string {
	t.Helper()
	var out []string
	for _, o := range s.FetchAll(context.Background()) {
		out = append(out, o.ID)
	}
	return out
}

func TestFetchFeatured(t *testing.T) {
	got := New().FetchFeatured(context.Background())
	require.Len(t, got, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, got[i].ID)
		assert.True(t, got[i].IsFeatured)
	}
}

func TestFetchAll_FeaturedFirstThenOthers(t *testing.T) {
	s := New()
	ctx := context.Background()
	all := s.FetchAll(ctx)
	feat := s.FetchFeatured(ctx)

	require.Len(t, all, 8)
	assert.Equal(t, feat, all[:len(feat)])
	for _, o := range all[len(feat):] {
		assert.False(t, o.IsFeatured, o.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(t, s))
}

func TestFetchAll_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range ids(t, New()) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestFetchAll_ReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	all := s.FetchAll(ctx)
	all[0].Title = "changed"

	again := s.FetchAll(ctx)
	assert.Equal(t, "Campanha de Arrecadação de Alimentos", again[0].Title)

	feat := s.FetchFeatured(ctx)
	feat[1].Title = "changed"
	assert.Equal(t, "Abrigo de Animais - Cuidadores Voluntários", s.FetchFeatured(ctx)[1].Title)
}

func TestFetchByID(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, o := range s.FetchAll(ctx) {
		got, ok := s.FetchByID(ctx, o.ID)
		require.True(t, ok, o.ID)
		assert.Equal(t, o, got)
	}

	for _, id := range []string{"", "0", "9", " 1", "abc"} {
		got, ok := s.FetchByID(ctx, id)
		assert.False(t, ok, id)
		assert.Empty(t, got.ID)
	}
}

func TestCategories(t *testing.T) {
	titles := CategoryTitles()
	require.Len(t, titles, 8)
	assert.Equal(t, AllCategories, titles[0])

	// every opportunity's category is selectable
	for _, o := range New().FetchAll(context.Background()) {
		assert.Contains(t, titles, o.Category)
	}
}

func TestAboutAndImpact(t *testing.T) {
	assert.Len(t, Developers(), 3)
	assert.Equal(t, "148+", Impact().Organizations)
}
