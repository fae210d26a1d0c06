package filter

import (
	"strings"

	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/model"
)

// Options holds all filter criteria. Empty State and Query mean "no filter".
// Category is always compared exactly; only the catalog.AllCategories sentinel
// lets every category through.
type Options struct {
	Category string // exact match, ex: "Meio Ambiente"
	State    string // exact match against the UF in Location, ex: "BA"
	Query    string // case-insensitive substring of title, organization or location
}

// Apply filters a slice of opportunities, returning only those that match all
// criteria. Input order is preserved and the result is never nil.
func Apply(opps []model.Opportunity, opts Options) []model.Opportunity {
	query := strings.ToLower(opts.Query)

	result := make([]model.Opportunity, 0, len(opps))
	for _, o := range opps {
		if matchCategory(o, opts.Category) && matchState(o, opts.State) && matchQuery(o, query) {
			result = append(result, o)
		}
	}
	return result
}

// ByCategory keeps only the opportunities of the given category.
func ByCategory(opps []model.Opportunity, category string) []model.Opportunity {
	return Apply(opps, Options{Category: category})
}

func matchCategory(o model.Opportunity, category string) bool {
	if category == catalog.AllCategories {
		return true
	}
	return o.Category == category
}

func matchState(o model.Opportunity, state string) bool {
	if state == "" {
		return true
	}
	code, ok := o.StateCode()
	return ok && code == state
}

func matchQuery(o model.Opportunity, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range o.SearchText() {
		if strings.Contains(field, query) {
			return true
		}
	}
	return false
}

func (o Options) isEmpty() bool {
	return o.Category == catalog.AllCategories && o.State == "" && o.Query == ""
}

// Active reports whether any criterion would narrow the list.
func (o Options) Active() bool {
	return !o.isEmpty()
}
