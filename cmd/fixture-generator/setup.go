package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/urfave/cli"

	"fixture-generator/options"
	"fixture-generator/populate"
	"fixture-generator/utils"
)

const defaultLogLevel = "warning"

// setup builds the default generator from the config file and the global flags. Flags win.
func setup(c *cli.Context) error {
	cfg := options.Default()
	if path := c.String("config"); path != "" {
		loaded, err := options.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if c.IsSet("log") {
		cfg.LogLevel = c.String("log")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	lv, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(lv)

	if c.IsSet("seed") {
		seed := c.Uint64("seed")
		cfg.Seed = &seed
	}

	for flag, dst := range map[string]*options.Range{
		"string-length":    &cfg.StringLength,
		"collection-count": &cfg.CollectionCount,
	} {
		if s := c.String(flag); s != "" {
			r, err := parseRange(s)
			if err != nil {
				return fmt.Errorf("--%s: %w", flag, err)
			}
			*dst = r
		}
	}

	g, err := populate.NewGenerator(populate.WithConfig(cfg))
	if err != nil {
		return err
	}
	populate.SetDefault(g)

	logrus.WithFields(logrus.Fields{
		"string_length":    cfg.StringLength.String(),
		"collection_count": cfg.CollectionCount.String(),
		"seeded":           cfg.Seed != nil,
		"types":            len(cfg.Types),
	}).Debug("generator configured")

	return nil
}

// parseRange reads "MIN,MAX" or a single "N", which stands for exactly N.
func parseRange(s string) (options.Range, error) {
	first, second := utils.Unpack2(strings.SplitN(s, ",", 2))

	lower, err := cast.ToIntE(strings.TrimSpace(first))
	if err != nil {
		return options.Range{}, fmt.Errorf("%w: %q", populate.ErrInvalidRange, s)
	}

	upper := lower
	if second != "" {
		if upper, err = cast.ToIntE(strings.TrimSpace(second)); err != nil {
			return options.Range{}, fmt.Errorf("%w: %q", populate.ErrInvalidRange, s)
		}
	}

	r := options.Range{Min: lower, Max: upper}

	return r, r.Validate()
}
