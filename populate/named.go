package populate

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"

	"fixture-generator/internal/common"
	"fixture-generator/internal/match"
	"fixture-generator/scalar"
)

type producer func() (any, error)

// tokenLength is the base64url length of 128 random bits.
const tokenLength = 22

func plain[T any](fn func() T) producer {
	return func() (any, error) { return fn(), nil }
}

func checked[T any](fn func() (T, error)) producer {
	return func() (any, error) { return fn() }
}

// namedGenerators are addressable from struct tags and configuration by their normalized name.
var namedGenerators = map[string]producer{
	"email":          plain(scalar.Email),
	"phone":          plain(scalar.Phone),
	"localphone":     plain(scalar.LocalPhone),
	"ipv4":           plain(scalar.IPv4),
	"ipv4mask":       plain(scalar.IPv4WithMask),
	"privateipv4":    plain(scalar.PrivateIPv4),
	"ipv6":           plain(scalar.IPv6),
	"ipv6prefix":     plain(scalar.IPv6WithPrefix),
	"mac":            plain(scalar.UnicastMAC),
	"multicastmac":   plain(scalar.MulticastMAC),
	"guid":           plain(scalar.GUID),
	"sequentialguid": plain(scalar.SequentialGUID),
	"password":       checked(func() (string, error) { return scalar.Password(scalar.DefaultPasswordLength) }),
	"base64url":      checked(func() (string, error) { return scalar.Base64URL(tokenLength) }),
	"visa":           checked(func() (string, error) { return scalar.CreditCard(scalar.Visa) }),
	"mastercard":     checked(func() (string, error) { return scalar.CreditCard(scalar.MasterCard) }),
	"amex":           checked(func() (string, error) { return scalar.CreditCard(scalar.AmericanExpress) }),
	"creditcard": checked(func() (string, error) {
		networks := []scalar.Network{scalar.AmericanExpress, scalar.MasterCard, scalar.Visa}
		return scalar.CreditCard(networks[scalar.Rand().IntN(len(networks))])
	}),
	"bool":     plain(scalar.Bool),
	"duration": plain(scalar.Duration),
	"now":      plain(func() any { return scalar.Now(scalar.UTC) }),
}

// GeneratorNames lists the built-in generator names, sorted.
func GeneratorNames() []string {
	names := lo.Keys(namedGenerators)
	slices.Sort(names)

	return names
}

// sharedSource feeds gofakeit from the scalar source so seeding covers both.
type sharedSource struct{}

func (sharedSource) Uint64() uint64 { return scalar.Rand().Uint64() }

var _ rand.Source = sharedSource{}

func newFaker() *gofakeit.Faker {
	return gofakeit.NewFaker(sharedSource{}, false)
}

// named resolves a generator name: a built-in name, a gofakeit function ("firstname") or a
// gofakeit template containing {placeholders} ("{firstname}.{lastname}@example.com").
func (g *Generator) named(name string) (producer, error) {
	if fn, ok := namedGenerators[match.Normalize(name)]; ok {
		return fn, nil
	}

	template := name
	if !strings.Contains(name, "{") {
		lookup := strings.ToLower(strings.TrimSpace(name))
		if gofakeit.GetFuncLookup(lookup) == nil {
			return nil, fmt.Errorf("%w: %q%s", ErrUnknownGenerator, name, didYouMean(suggest(name, GeneratorNames())))
		}

		template = "{" + lookup + "}"
	}

	faker := g.faker

	return func() (any, error) {
		s, err := faker.Generate(template)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownGenerator, name, err)
		}

		return s, nil
	}, nil
}

// suggest returns up to three of known that are close to name.
func suggest(name string, known []string) []string {
	return match.Suggest(name, known, 3)
}

func didYouMean(suggestions []string) string {
	if common.IsEmpty(suggestions) {
		return ""
	}

	return " (did you mean " + strings.Join(suggestions, ", ") + "?)"
}

// Generate returns one value of the named generator, resolved as for a populate tag.
func (g *Generator) Generate(name string) (any, error) {
	gen, err := g.named(name)
	if err != nil {
		return nil, err
	}

	return gen()
}
