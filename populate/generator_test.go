package populate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/options"
	"fixture-generator/populate"
	"fixture-generator/primitive"
	"fixture-generator/scalar"
)

const settingsConfig = `
version: "1"
string_length: {min: 3, max: 3}
collection_count: {min: 1, max: 2}
types:
  - name: populate_test.Settings
    fields:
      Country: NL
      Age: "30"
      Timeout: 2m
    generators:
      Email: email
    skip: [Notes]
`

func TestGenerator_WithConfig(t *testing.T) {
	t.Parallel()

	cfg, err := options.Parse([]byte(settingsConfig))
	require.NoError(t, err)

	g, err := populate.NewGenerator(populate.WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, options.Range{Min: 3, Max: 3}, g.StringLength())
	assert.Equal(t, options.Range{Min: 1, Max: 2}, g.CollectionCount())

	settings, err := populate.Of[Settings](g)
	require.NoError(t, err)

	assert.Equal(t, "NL", settings.Country)
	assert.Equal(t, 30, settings.Age)
	assert.Equal(t, "2m0s", settings.Timeout.String())
	assert.Contains(t, settings.Email, "@")
	assert.Empty(t, settings.Notes)

	customer, err := populate.Of[Customer](g)
	require.NoError(t, err)
	assert.Len(t, customer.Name, 3)
	require.Len(t, customer.Orders, 1)

}

func TestGenerator_ConfigMismatch(t *testing.T) {
	t.Parallel()

	cfg, err := options.Parse([]byte(`
types:
  - name: populate_test.Order
    generators:
      ID: email
`))
	require.NoError(t, err)

	g, err := populate.NewGenerator(populate.WithConfig(cfg))
	require.NoError(t, err)

	_, err = populate.Of[Order](g)
	require.ErrorIs(t, err, populate.ErrMalformedOverride)

	// the settings follow the type wherever it is nested
	_, err = populate.Of[Customer](g)
	require.ErrorIs(t, err, populate.ErrMalformedOverride)
	assert.Contains(t, err.Error(), "Customer.Orders[].ID")
}

func TestGenerator_OverridesBeatConfig(t *testing.T) {
	t.Parallel()

	cfg, err := options.Parse([]byte(settingsConfig))
	require.NoError(t, err)

	g, err := populate.NewGenerator(populate.WithConfig(cfg))
	require.NoError(t, err)

	settings, err := populate.Of(g,
		populate.SetField[Settings]("Country", func() any { return "BE" }),
		populate.SetField[Settings]("Notes", func() any { return "kept" }),
	)
	require.NoError(t, err)

	assert.Equal(t, "BE", settings.Country)
	assert.Equal(t, "kept", settings.Notes)
}

func TestGenerator_Scalars(t *testing.T) {
	t.Parallel()

	table := primitive.DefaultTable()
	table.String = func(length int) string { return strings.Repeat("x", length) }
	table.Int = func() int { return 7 }
	table.Bool = nil

	g, err := populate.NewGenerator(populate.WithScalars(table))
	require.NoError(t, err)
	require.NoError(t, g.SetDefaultStringLength(4, 4))

	v, err := populate.Of[Scalars](g)
	require.NoError(t, err)

	assert.Equal(t, "xxxx", v.String)
	assert.Equal(t, 7, v.Int)
	require.NotNil(t, v.OptionalInt)
	assert.Equal(t, 7, *v.OptionalInt)

	labels, err := populate.Of[Labels](g)
	require.NoError(t, err)
	assert.Equal(t, Level(7), labels.Level, "named types use the slot of their underlying kind")
}

func TestGenerator_Options(t *testing.T) {
	t.Parallel()

	_, err := populate.NewGenerator(populate.WithScalars(nil))
	require.ErrorIs(t, err, populate.ErrInvalidArgument)

	_, err = populate.NewGenerator(populate.WithLogger(nil))
	require.ErrorIs(t, err, populate.ErrInvalidArgument)

	_, err = populate.NewGenerator(populate.WithConfig(&options.Config{StringLength: options.Range{Min: 2, Max: 1}}))
	require.ErrorIs(t, err, options.ErrInvalidConfig)

	g, err := populate.NewGenerator()
	require.NoError(t, err)
	require.ErrorIs(t, g.SetDefaultStringLength(-1, 4), populate.ErrInvalidRange)
	require.ErrorIs(t, g.SetDefaultCollectionCount(5, 4), populate.ErrInvalidRange)
	assert.Equal(t, options.DefaultStringLength, g.StringLength())
	assert.Equal(t, options.DefaultCollectionCount, g.CollectionCount())
}

func TestGenerator_LogsDecisions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	g, err := populate.NewGenerator(populate.WithLogger(logger.WithField("test", t.Name())))
	require.NoError(t, err)

	_, err = populate.Of[Node](g)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"code":"cycle-cut"`)
	assert.Contains(t, out, `"path":"Node.Parent"`)
	assert.Contains(t, out, `"cycle_cuts":`)

	buf.Reset()
	_, err = populate.Of[Shapes](g)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"code":"unsupported"`)
	assert.Contains(t, buf.String(), `"path":"Shapes.Callback"`)

	buf.Reset()
	_, err = populate.Of[BadTag](g)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "population failed")
	assert.Contains(t, buf.String(), "[unknown-generator]")
}

// Seeding changes process-wide state, so these tests do not run in parallel.

func TestSeed_Reproducible(t *testing.T) {
	defer scalar.Unseed()

	scalar.Seed(42)
	first, err := populate.New[Customer]()
	require.NoError(t, err)

	scalar.Seed(42)
	second, err := populate.New[Customer]()
	require.NoError(t, err)

	assert.Equal(t, first, second, spew.Sdump(first))

	scalar.Seed(43)
	third, err := populate.New[Customer]()
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestSeed_FromConfig(t *testing.T) {
	defer scalar.Unseed()

	cfg := options.Default()
	seed := uint64(7)
	cfg.Seed = &seed

	generate := func() Tagged {
		g, err := populate.NewGenerator(populate.WithConfig(cfg))
		require.NoError(t, err)

		v, err := populate.Of[Tagged](g)
		require.NoError(t, err)

		return v
	}

	first, second := generate(), generate()
	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.First, second.First, "named gofakeit generators follow the seed")
	assert.Equal(t, first.Guid, second.Guid)
}

func TestSetDefault(t *testing.T) {
	previous := populate.Default()
	defer populate.SetDefault(previous)

	g, err := populate.NewGenerator()
	require.NoError(t, err)
	populate.SetDefault(g)

	require.NoError(t, populate.SetDefaultStringLength(2, 2))
	require.NoError(t, populate.SetDefaultCollectionCount(0, 0))
	require.ErrorIs(t, populate.SetDefaultCollectionCount(3, 1), populate.ErrInvalidRange)

	customer, err := populate.New[Customer]()
	require.NoError(t, err)
	assert.Len(t, customer.Name, 2)
	assert.NotNil(t, customer.Orders)
	assert.Empty(t, customer.Orders)

	ints, err := populate.Slice[int]()
	require.NoError(t, err)
	assert.Empty(t, ints)

	assert.Equal(t, options.DefaultCollectionCount, previous.CollectionCount())
	assert.Panics(t, func() { populate.SetDefault(nil) })
}
