package scalar

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	asciiFirst = 32
	asciiLast  = 126
)

var (
	asciiChars     = charRange(asciiFirst, asciiLast)
	base64URLChars = charRange('A', 'Z') + charRange('a', 'z') + charRange('0', '9') + "-_"
	placeholder    = regexp.MustCompile(`\{.*?\}`)
)

func charRange(first, last byte) string {
	var b strings.Builder
	for c := int(first); c <= int(last); c++ {
		b.WriteByte(byte(c))
	}

	return b.String()
}

// ASCII returns n printable ASCII characters (codes 32 through 126).
func ASCII(n int) (string, error) {
	return Custom(asciiChars, n)
}

// Base64URL returns n characters from the URL-safe base64 alphabet.
func Base64URL(n int) (string, error) {
	return Custom(base64URLChars, n)
}

// Custom returns n characters drawn uniformly from chars.
func Custom(chars string, n int) (string, error) {
	if err := checkAlphabet(chars); err != nil {
		return "", err
	}

	if n < 0 {
		return "", fmt.Errorf("%w: length %d must not be negative", ErrInvalidRange, n)
	}

	return fill([]rune(chars), n), nil
}

func ASCIIWithFormat(format string, lengths ...int) (string, error) {
	return CustomWithFormat(format, asciiChars, lengths...)
}

func Base64URLWithFormat(format string, lengths ...int) (string, error) {
	return CustomWithFormat(format, base64URLChars, lengths...)
}

// CustomWithFormat replaces every {…} placeholder in format with random characters from chars.
// lengths holds either one length shared by all placeholders or one length per placeholder.
func CustomWithFormat(format, chars string, lengths ...int) (string, error) {
	if err := checkAlphabet(chars); err != nil {
		return "", err
	}

	count := len(placeholder.FindAllStringIndex(format, -1))
	if count == 0 {
		return "", fmt.Errorf("%w: format %q has no placeholder", ErrInvalidArgument, format)
	}

	if len(lengths) != 1 && len(lengths) != count {
		return "", fmt.Errorf("%w: got %d lengths for %d placeholders", ErrInvalidArgument, len(lengths), count)
	}

	for _, n := range lengths {
		if n < 0 {
			return "", fmt.Errorf("%w: length %d must not be negative", ErrInvalidRange, n)
		}
	}

	alphabet := []rune(chars)
	i := 0

	return placeholder.ReplaceAllStringFunc(format, func(string) string {
		n := lengths[0]
		if len(lengths) > 1 {
			n = lengths[i]
		}
		i++

		return fill(alphabet, n)
	}), nil
}

func checkAlphabet(chars string) error {
	if chars == "" {
		return fmt.Errorf("%w: character set is empty", ErrInvalidArgument)
	}

	return nil
}

func fill(alphabet []rune, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteRune(pick(alphabet))
	}

	return b.String()
}
