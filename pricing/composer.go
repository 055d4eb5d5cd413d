package pricing

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultBasePrice is the formulation base price used when the caller does
// not override it.
var DefaultBasePrice = decimal.RequireFromString("25.00")

// ModifierSource resolves an ingredient id to its price modifier. The
// catalog gateway implements this.
type ModifierSource interface {
	IngredientModifier(ctx context.Context, ingredientID string) (decimal.Decimal, error)
}

// Selection is the customer's formulation choice: one carrier oil, any
// number of extracts and one function additive.
type Selection struct {
	OilID      string
	ExtractIDs []string
	FunctionID string
	BasePrice  *decimal.Decimal
}

// CompositionError means a modifier lookup failed and no price could be
// composed. It is all-or-nothing: callers never get a partial price.
type CompositionError struct {
	Ingredient string
	Err        error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("composing formulation price: ingredient %q: %v", e.Ingredient, e.Err)
}

func (e *CompositionError) Unwrap() error { return e.Err }

// Composer builds formulation prices from ingredient modifiers.
type Composer struct {
	source ModifierSource
}

// NewComposer creates a Composer over the given modifier source.
func NewComposer(source ModifierSource) *Composer {
	return &Composer{source: source}
}

// Price resolves every modifier in the selection concurrently and returns
// round2(base + oil + Σ extracts + function). The first lookup failure
// cancels the rest and fails the whole computation.
func (c *Composer) Price(ctx context.Context, sel Selection) (decimal.Decimal, error) {
	if sel.OilID == "" {
		return decimal.Zero, &CompositionError{Ingredient: "oil", Err: fmt.Errorf("no oil selected")}
	}
	if sel.FunctionID == "" {
		return decimal.Zero, &CompositionError{Ingredient: "function", Err: fmt.Errorf("no function selected")}
	}

	base := DefaultBasePrice
	if sel.BasePrice != nil {
		base = *sel.BasePrice
	}

	var (
		mu  sync.Mutex
		sum = decimal.Zero
	)
	g, ctx := errgroup.WithContext(ctx)
	lookup := func(id string) func() error {
		return func() error {
			mod, err := c.source.IngredientModifier(ctx, id)
			if err != nil {
				return &CompositionError{Ingredient: id, Err: err}
			}
			mu.Lock()
			sum = sum.Add(mod)
			mu.Unlock()
			return nil
		}
	}

	g.Go(lookup(sel.OilID))
	for _, extractID := range sel.ExtractIDs {
		g.Go(lookup(extractID))
	}
	g.Go(lookup(sel.FunctionID))

	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}
	return base.Add(sum).Round(2), nil
}
