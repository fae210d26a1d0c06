package catalog

import (
	"context"
	"slices"

	"github.com/rsilvagit/ajudaja/internal/model"
)

// Service answers read queries over the built-in opportunity list.
// Methods take a context so callers can compose them with the network-backed
// geo lookups; they never block and never fail.
type Service struct{}

// New returns a Service over the built-in data.
func New() *Service {
	return &Service{}
}

// FetchFeatured returns the featured opportunities in declaration order.
func (s *Service) FetchFeatured(ctx context.Context) []model.Opportunity {
	return slices.Clone(featured)
}

// FetchAll returns featured opportunities followed by the others.
func (s *Service) FetchAll(ctx context.Context) []model.Opportunity {
	return slices.Concat(featured, others)
}

// FetchByID returns the opportunity with the given id.
// The second return value is false when no opportunity has that id.
func (s *Service) FetchByID(ctx context.Context, id string) (model.Opportunity, bool) {
	for _, o := range slices.Concat(featured, others) {
		if o.ID == id {
			return o, true
		}
	}
	return model.Opportunity{}, false
}

// Categories returns the category chips, the "Todos" sentinel first.
func Categories() []model.Category {
	return slices.Clone(categories)
}

// CategoryTitles returns just the titles of Categories.
func CategoryTitles() []string {
	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.Title)
	}
	return titles
}

// Developers returns the team shown on the about screen.
func Developers() []model.Developer {
	return slices.Clone(developers)
}

// Impact returns the headline numbers shown on the home screen.
func Impact() model.ImpactStats {
	return impact
}
