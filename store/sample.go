package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"fixture-generator/internal/common"
	"fixture-generator/internal/match"
	"fixture-generator/populate"
	"fixture-generator/scalar"
)

var ErrUnknownSample = errors.New("unknown sample kind")

func init() {
	if err := populate.RegisterEnum(StatusPending, StatusPaid, StatusShipped, StatusCancelled); err != nil {
		panic(err)
	}
}

type sampler func(g *populate.Generator) (any, error)

func sampleOf[T any](g *populate.Generator) (any, error) {
	return populate.Of[T](g)
}

var samplers = map[string]sampler{
	"product":  func(g *populate.Generator) (any, error) { return product(g) },
	"customer": sampleOf[Customer],
	"order":    func(g *populate.Generator) (any, error) { return order(g) },
}

// product keeps prices and stock within shop-like bounds.
func product(g *populate.Generator) (Product, error) {
	return populate.Of(g,
		populate.Set(func(p *Product) *int64 { return &p.PriceCents }, func() int64 {
			return scalar.MustBetween[int64](99, 99_999)
		}),
		populate.Set(func(p *Product) *int { return &p.Inventory }, func() int {
			return scalar.MustBetween(0, 500)
		}),
	)
}

// order fills the lines of an order from generated products at their catalog price.
func order(g *populate.Generator) (Order, error) {
	var items []OrderItem
	for range max(g.CollectionCount().Draw(), 1) {
		p, err := product(g)
		if err != nil {
			return Order{}, err
		}

		items = append(items, OrderItem{
			Product:   &p,
			Quantity:  scalar.MustBetween[uint8](1, 9),
			UnitPrice: p.PriceCents,
		})
	}

	return populate.Of(g, populate.Set(func(o *Order) *[]OrderItem { return &o.Items }, func() []OrderItem {
		return items
	}))
}

// Kinds lists the sample kinds in alphabetical order.
func Kinds() []string {
	kinds := lo.Keys(samplers)
	slices.Sort(kinds)

	return kinds
}

// Sample populates n values of the named kind with g. progress, when not nil, is called after each value.
func Sample(g *populate.Generator, kind string, n int, progress func()) ([]any, error) {
	sample, ok := samplers[strings.ToLower(kind)]
	if !ok {
		hint := ""
		if s, ok := common.First(match.Suggest(kind, Kinds(), 1)); ok {
			hint = fmt.Sprintf(" (did you mean %s?)", s)
		}

		return nil, fmt.Errorf("%w: %q%s", ErrUnknownSample, kind, hint)
	}

	out := make([]any, 0, n)
	for range n {
		v, err := sample(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}

		out = append(out, v)
		if progress != nil {
			progress()
		}
	}

	return out, nil
}
