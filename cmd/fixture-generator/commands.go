package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"fixture-generator/options"
	"fixture-generator/populate"
	"fixture-generator/store"
	"fixture-generator/utils"
)

const maxCount = 100_000

func count(c *cli.Context) (int, error) {
	n := c.Int("n")
	if !utils.IsInRange(1, n, maxCount) {
		return 0, fmt.Errorf("%w: -n must be between 1 and %d, got %d", populate.ErrInvalidRange, maxCount, n)
	}

	return n, nil
}

// newProgress returns a bar on stderr that stays hidden unless --progress is set.
func newProgress(c *cli.Context, n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetVisibility(c.GlobalBool("progress")),
		progressbar.OptionClearOnFinish(),
	)
}

func scalarAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return cli.NewExitError("missing generator name, see the generators command", 2)
	}

	n, err := count(c)
	if err != nil {
		return err
	}

	g := populate.Default()
	bar := newProgress(c, n, name)

	for range n {
		v, err := g.Generate(name)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, formatScalar(v))
		_ = bar.Add(1)
	}

	return nil
}

func formatScalar(v any) string {
	switch v := v.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}

func sampleAction(c *cli.Context) error {
	kind := c.Args().First()
	if kind == "" {
		return cli.NewExitError(fmt.Sprintf("missing sample kind, one of %v", store.Kinds()), 2)
	}

	n, err := count(c)
	if err != nil {
		return err
	}

	bar := newProgress(c, n, kind)
	values, err := store.Sample(populate.Default(), kind, n, func() { _ = bar.Add(1) })
	if err != nil {
		return err
	}

	var doc any = values
	if n == 1 {
		doc = values[0]
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	_, err = c.App.Writer.Write(out)
	return err
}

func generatorsAction(c *cli.Context) error {
	for _, name := range populate.GeneratorNames() {
		fmt.Fprintln(c.App.Writer, name)
	}

	return nil
}

func configAction(c *cli.Context) error {
	out, err := options.Marshal(populate.Default().Config())
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(out)
	return err
}
