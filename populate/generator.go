package populate

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"fixture-generator/options"
	"fixture-generator/primitive"
	"fixture-generator/scalar"
)

// Generator carries the settings one population call runs with. Its ranges may be changed
// concurrently with generation; Scalars may not.
type Generator struct {
	// Scalars produces primitive values. Replace its slots before generating.
	Scalars *primitive.Table

	stringLength    atomic.Pointer[options.Range]
	collectionCount atomic.Pointer[options.Range]
	config          atomic.Pointer[options.Config]

	log   *logrus.Entry
	faker *gofakeit.Faker
}

type Option func(*Generator) error

// WithConfig applies a configuration: its ranges, its per-type field settings and, when set,
// its seed. Seeding affects the process-wide scalar source.
func WithConfig(cfg *options.Config) Option {
	return func(g *Generator) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		strLen, count := cfg.StringLength, cfg.CollectionCount
		g.config.Store(cfg)
		g.stringLength.Store(&strLen)
		g.collectionCount.Store(&count)

		if cfg.Seed != nil {
			scalar.Seed(*cfg.Seed)
		}

		return nil
	}
}

// WithLogger routes population diagnostics to entry at Debug level.
func WithLogger(entry *logrus.Entry) Option {
	return func(g *Generator) error {
		if entry == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidArgument)
		}

		g.log = entry
		return nil
	}
}

func WithScalars(table *primitive.Table) Option {
	return func(g *Generator) error {
		if table == nil {
			return fmt.Errorf("%w: nil scalar table", ErrInvalidArgument)
		}

		g.Scalars = table
		return nil
	}
}

func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		Scalars: primitive.DefaultTable(),
		log:     logrus.StandardLogger().WithField("component", "populate"),
		faker:   newFaker(),
	}

	if err := WithConfig(options.Default())(g); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// SetDefaultStringLength sets the [min, max) range of generated string lengths.
func (g *Generator) SetDefaultStringLength(min, max int) error {
	r := options.Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("string length: %w", err)
	}

	g.stringLength.Store(&r)
	return nil
}

// SetDefaultCollectionCount sets the [min, max) range of element counts of generated collections.
func (g *Generator) SetDefaultCollectionCount(min, max int) error {
	r := options.Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("collection count: %w", err)
	}

	g.collectionCount.Store(&r)
	return nil
}

func (g *Generator) StringLength() options.Range    { return *g.stringLength.Load() }
func (g *Generator) CollectionCount() options.Range { return *g.collectionCount.Load() }
func (g *Generator) Config() *options.Config        { return g.config.Load() }

var defaultGenerator = atomic.NewPointer(mustGenerator())

func mustGenerator() *Generator {
	g, err := NewGenerator()
	if err != nil {
		panic(err)
	}

	return g
}

// Default returns the process-wide generator used by New, Slice and Map.
func Default() *Generator {
	return defaultGenerator.Load()
}

// SetDefault replaces the process-wide generator.
func SetDefault(g *Generator) {
	if g == nil {
		panic("default generator cannot be nil")
	}

	defaultGenerator.Store(g)
}

// SetDefaultStringLength changes the string length range of the default generator.
func SetDefaultStringLength(min, max int) error {
	return Default().SetDefaultStringLength(min, max)
}

// SetDefaultCollectionCount changes the collection count range of the default generator.
func SetDefaultCollectionCount(min, max int) error {
	return Default().SetDefaultCollectionCount(min, max)
}
