package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/model"
)

func fixture() []model.Opportunity {
	return catalog.New().FetchAll(context.Background())
}

func idsOf(opps []model.Opportunity) []string {
	out := make([]string, 0, len(opps))
	for _, o := range opps {
		out = append(out, o.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"no filters", Options{Category: catalog.AllCategories}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"empty category is not the sentinel", Options{}, []string{}},
		{"category", Options{Category: "Meio Ambiente"}, []string{"3", "8"}},
		{"category is case sensitive", Options{Category: "meio ambiente"}, []string{}},
		{"state", Options{Category: catalog.AllCategories, State: "BA"}, []string{"3"}},
		{"state exact match", Options{Category: catalog.AllCategories, State: "ba"}, []string{}},
		{"query in title", Options{Category: catalog.AllCategories, Query: "praia"}, []string{"3"}},
		{"query in organization", Options{Category: catalog.AllCategories, Query: "TETO"}, []string{"6"}},
		{"query in location", Options{Category: catalog.AllCategories, Query: "curitiba"}, []string{"5"}},
		{"query not in description", Options{Category: catalog.AllCategories, Query: "cerrado"}, []string{}},
		{"category and state", Options{Category: "Meio Ambiente", State: "DF"}, []string{"8"}},
		{"all three", Options{Category: "Meio Ambiente", State: "BA", Query: "oceano"}, []string{"3"}},
		{"conflicting category and state", Options{Category: "Educação", State: "BA"}, []string{}},
		{"no match", Options{Category: "Educação", Query: "xyz-no-match"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), tt.opts)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, idsOf(got))
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	opts := []Options{
		{Category: "Meio Ambiente"},
		{Category: catalog.AllCategories, State: "SP"},
		{Category: catalog.AllCategories, Query: "campanha"},
		{Category: "Saúde", State: "PR", Query: "sangue"},
	}
	for _, o := range opts {
		once := Apply(fixture(), o)
		assert.Equal(t, once, Apply(once, o), "%+v", o)
	}
}

func TestApply_LocationWithoutComma(t *testing.T) {
	opps := []model.Opportunity{
		{ID: "a", Location: "Online"},
		{ID: "b", Location: "Niterói, RJ"},
	}
	assert.Equal(t, []string{"b"}, idsOf(Apply(opps, Options{Category: catalog.AllCategories, State: "RJ"})))
	assert.Equal(t, []string{"a", "b"}, idsOf(Apply(opps, Options{Category: catalog.AllCategories})))
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Options{Category: catalog.AllCategories, Query: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestByCategory(t *testing.T) {
	featured := catalog.New().FetchFeatured(context.Background())
	assert.Equal(t, []string{"2"}, idsOf(ByCategory(featured, "Proteção Animal")))
	assert.Len(t, ByCategory(featured, catalog.AllCategories), 3)
}

func TestOptionsActive(t *testing.T) {
	assert.True(t, Options{}.Active(), "an empty category narrows the list to nothing")
	assert.False(t, Options{Category: catalog.AllCategories}.Active())
	assert.True(t, Options{Category: catalog.AllCategories, State: "SP"}.Active())
	assert.True(t, Options{Category: catalog.AllCategories, Query: "a"}.Active())
}
