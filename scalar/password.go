package scalar

import (
	"fmt"
)

const DefaultPasswordLength = 6

var (
	digits        = []rune(charRange('0', '9'))
	lowerChars    = []rune(charRange('a', 'z'))
	upperChars    = []rune(charRange('A', 'Z'))
	symbolChars   = []rune(" !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")
	passwordChars = append(append(append(append([]rune{}, digits...), lowerChars...), upperChars...), symbolChars...)
)

// Rules lists the character classes a password must contain at least once.
type Rules struct {
	Digit           bool
	Lowercase       bool
	Uppercase       bool
	NonAlphanumeric bool
}

func (r Rules) required() [][]rune {
	var sets [][]rune
	if r.Digit {
		sets = append(sets, digits)
	}
	if r.Lowercase {
		sets = append(sets, lowerChars)
	}
	if r.Uppercase {
		sets = append(sets, upperChars)
	}
	if r.NonAlphanumeric {
		sets = append(sets, symbolChars)
	}

	return sets
}

// Password returns n characters from digits, letters and ASCII punctuation.
func Password(n int) (string, error) {
	return PasswordWithRules(n, Rules{})
}

// PasswordWithRules returns a password of length n containing every class rules requires.
func PasswordWithRules(n int, rules Rules) (string, error) {
	sets := rules.required()
	if n < len(sets) {
		return "", fmt.Errorf("%w: length %d is below the %d required character classes", ErrInvalidRange, n, len(sets))
	}

	out := make([]rune, 0, n)
	for _, set := range sets {
		out = append(out, pick(set))
	}
	for len(out) < n {
		out = append(out, pick(passwordChars))
	}

	Rand().Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return string(out), nil
}
