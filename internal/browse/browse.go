// Package browse holds the state behind the opportunities list: the loaded
// data, the current filter selection and the filtered result.
package browse

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/filter"
	"github.com/rsilvagit/ajudaja/internal/model"
)

// LoadErrorMessage is shown when the initial load fails.
const LoadErrorMessage = "Não foi possível carregar os dados. Tente novamente mais tarde."

// OpportunitySource provides the full opportunity list. *catalog.Service
// satisfies it.
type OpportunitySource interface {
	FetchAll(ctx context.Context) []model.Opportunity
}

// StateSource provides the state filter options. *geo.Client satisfies it.
type StateSource interface {
	FetchStates(ctx context.Context) []model.IBGEState
}

// Snapshot is the result of one load.
type Snapshot struct {
	Opportunities []model.Opportunity
	States        []model.IBGEState
}

// Loader fetches everything the list needs.
type Loader struct {
	opportunities OpportunitySource
	states        StateSource
}

// NewLoader returns a Loader over the given sources.
func NewLoader(opps OpportunitySource, states StateSource) *Loader {
	return &Loader{opportunities: opps, states: states}
}

// Load fetches opportunities and states concurrently. Geo failures, timeouts
// included, come back as an empty state list and never fail the load, so the
// opportunities are always returned.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.Opportunities = l.opportunities.FetchAll(gctx)
		return nil
	})
	g.Go(func() error {
		snap.States = l.states.FetchStates(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("browse: loading: %w", err)
	}
	if snap.States == nil {
		snap.States = []model.IBGEState{}
	}
	return snap, nil
}

// Token identifies one load started by Begin. Results carrying an older token
// are discarded.
type Token uint64

// Browser is the list's state. Every setter recomputes the visible list
// before returning, so Visible always reflects the latest selection.
type Browser struct {
	generation Token
	loading    bool
	err        error
	all        []model.Opportunity
	states     []model.IBGEState
	opts       filter.Options
	visible    []model.Opportunity
}

// New returns an empty Browser with no category filter.
func New() *Browser {
	return &Browser{
		opts:    filter.Options{Category: catalog.AllCategories},
		visible: []model.Opportunity{},
	}
}

// Begin marks a load as started and returns its token.
func (b *Browser) Begin() Token {
	b.generation++
	b.loading = true
	b.err = nil
	return b.generation
}

// Apply installs the result of the load identified by tok. It returns false
// and changes nothing when a newer load has begun or the browser was closed.
func (b *Browser) Apply(tok Token, snap Snapshot, err error) bool {
	if tok != b.generation {
		return false
	}
	b.loading = false
	if err != nil {
		b.err = err
		return true
	}
	b.all = snap.Opportunities
	b.states = snap.States
	b.recompute()
	return true
}

// Close invalidates any load in flight.
func (b *Browser) Close() {
	b.generation++
	b.loading = false
}

// Loading reports whether a load is in flight.
func (b *Browser) Loading() bool { return b.loading }

// Err returns the error of the last load, if any.
func (b *Browser) Err() error { return b.err }

// States returns the state filter options.
func (b *Browser) States() []model.IBGEState { return b.states }

// Options returns the current selection.
func (b *Browser) Options() filter.Options { return b.opts }

// Visible returns the filtered list.
func (b *Browser) Visible() []model.Opportunity { return b.visible }

// SetCategory selects a category; catalog.AllCategories clears the filter.
func (b *Browser) SetCategory(category string) {
	b.opts.Category = category
	b.recompute()
}

// SetState selects a state by UF; "" clears the filter.
func (b *Browser) SetState(uf string) {
	b.opts.State = uf
	b.recompute()
}

// SetQuery sets the search text; "" clears it.
func (b *Browser) SetQuery(q string) {
	b.opts.Query = q
	b.recompute()
}

func (b *Browser) recompute() {
	b.visible = filter.Apply(b.all, b.opts)
}
