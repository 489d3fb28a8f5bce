package scalar_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/scalar"
)

func TestASCII(t *testing.T) {
	t.Parallel()

	s, err := scalar.ASCII(64)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	for _, c := range s {
		assert.GreaterOrEqual(t, c, rune(32))
		assert.LessOrEqual(t, c, rune(126))
	}

	empty, err := scalar.ASCII(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = scalar.ASCII(-1)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)
}

func TestBase64URL(t *testing.T) {
	t.Parallel()

	s, err := scalar.Base64URL(200)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9_-]{200}$`, s)
}

func TestCustom_EmptyAlphabet(t *testing.T) {
	t.Parallel()

	_, err := scalar.Custom("", 3)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)
}

func TestCustomWithFormat(t *testing.T) {
	t.Parallel()

	s, err := scalar.CustomWithFormat("{a}-{b}-{c}", "xyz", 2, 3, 4)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[xyz]{2}-[xyz]{3}-[xyz]{4}$`), s)

	s, err = scalar.Base64URLWithFormat("id:{}", 8)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "id:"))
	assert.Len(t, s, 11)

	s, err = scalar.ASCIIWithFormat("{}{}", 5)
	require.NoError(t, err)
	assert.Len(t, s, 10)

	_, err = scalar.CustomWithFormat("no placeholders", "ab", 1)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	_, err = scalar.CustomWithFormat("{}{}{}", "ab", 1, 2)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	_, err = scalar.CustomWithFormat("{}", "ab")
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	_, err = scalar.CustomWithFormat("{}", "ab", -1)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)
}

func ExampleCustomWithFormat() {
	s, _ := scalar.CustomWithFormat("{user}@{host}.com", "a", 3, 2)
	fmt.Println(s)
	// Output:
	// aaa@aa.com
}

func TestEmail(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile("^[A-Za-z][A-Za-z0-9!#$%&*+/=?^_{|}~`-]{4,9}@[A-Za-z0-9.-]{5,10}\\.[A-Za-z0-9.-]{3}$")
	for range 100 {
		assert.Regexp(t, pattern, scalar.Email())
	}

	s, err := scalar.EmailWithLengths(1, 2, 4)
	require.NoError(t, err)
	local, rest, ok := strings.Cut(s, "@")
	require.True(t, ok)
	assert.Len(t, local, 1)
	assert.Len(t, rest, 2+1+4)

	s, err = scalar.EmailWithDomain("example.org", 7)
	require.NoError(t, err)
	assert.Regexp(t, `^.{7}@example\.org$`, s)

	_, err = scalar.EmailWithDomain("", 7)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	_, err = scalar.EmailWithLengths(-1, 0, 0)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)
}

func TestPassword(t *testing.T) {
	t.Parallel()

	p, err := scalar.Password(scalar.DefaultPasswordLength)
	require.NoError(t, err)
	assert.Len(t, p, 6)

	rules := scalar.Rules{Digit: true, Lowercase: true, Uppercase: true, NonAlphanumeric: true}
	for range 100 {
		p, err = scalar.PasswordWithRules(4, rules)
		require.NoError(t, err)
		assert.Len(t, p, 4)
		assert.Regexp(t, `[0-9]`, p)
		assert.Regexp(t, `[a-z]`, p)
		assert.Regexp(t, `[A-Z]`, p)
		assert.Regexp(t, `[^A-Za-z0-9]`, p)
	}

	_, err = scalar.PasswordWithRules(3, rules)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)
}

func TestPasswordAlphabetBounds(t *testing.T) {
	t.Parallel()

	seen := map[rune]bool{}
	for range 300 {
		p, err := scalar.PasswordWithRules(40, scalar.Rules{})
		require.NoError(t, err)
		for _, c := range p {
			seen[c] = true
		}
	}

	for _, c := range "9zZ" {
		assert.True(t, seen[c], "character %q never produced", c)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	for range 200 {
		assert.Regexp(t, `^\+[0-9]{7,14}$`, scalar.Phone())
		assert.Regexp(t, `^0[0-9]{7,14}$`, scalar.LocalPhone())
	}

	p, err := scalar.PhoneWithCountryCode("90", 10)
	require.NoError(t, err)
	assert.Regexp(t, `^\+90[0-9]{10}$`, p)

	p, err = scalar.LocalPhoneOfLength(9)
	require.NoError(t, err)
	assert.Len(t, p, 10)

	_, err = scalar.PhoneOfLength(15)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)

	_, err = scalar.PhoneOfLength(6)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)

	_, err = scalar.PhoneWithCountryCode("1234", 8)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	_, err = scalar.PhoneWithCountryCode("", 8)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)
}
