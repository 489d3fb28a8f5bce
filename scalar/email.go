package scalar

import (
	"fmt"
	"strings"
)

const (
	defaultEmailPartMin = 5
	defaultEmailPartMax = 11
	defaultTLDLength    = 3
)

var (
	emailLeadChars   = []rune(charRange('A', 'Z') + charRange('a', 'z'))
	emailLocalChars  = []rune("!#$%&*+/=?^_{|}~-`" + charRange('A', 'Z') + charRange('a', 'z') + charRange('0', '9'))
	emailDomainChars = []rune(charRange('A', 'Z') + charRange('a', 'z') + charRange('0', '9') + "-.")
)

// Email returns an address with a local part and a domain of 5 to 10 characters and a 3 character TLD.
func Email() string {
	email, _ := EmailWithLengths(0, 0, 0)

	return email
}

// EmailWithLengths builds an address from the given part lengths. A zero length selects the default.
func EmailWithLengths(local, domain, tld int) (string, error) {
	local = orDefault(local, intn(defaultEmailPartMin, defaultEmailPartMax))
	domain = orDefault(domain, intn(defaultEmailPartMin, defaultEmailPartMax))
	tld = orDefault(tld, defaultTLDLength)

	if local < 1 || domain < 1 || tld < 1 {
		return "", fmt.Errorf("%w: email part lengths must be positive", ErrInvalidRange)
	}

	var b strings.Builder
	b.WriteString(localPart(local))
	b.WriteByte('@')
	b.WriteString(fill(emailDomainChars, domain))
	b.WriteByte('.')
	b.WriteString(fill(emailDomainChars, tld))

	return b.String(), nil
}

// EmailWithDomain returns an address at the given domain. A zero local length selects the default.
func EmailWithDomain(domain string, local int) (string, error) {
	if domain == "" {
		return "", fmt.Errorf("%w: domain is empty", ErrInvalidArgument)
	}

	local = orDefault(local, intn(defaultEmailPartMin, defaultEmailPartMax))
	if local < 1 {
		return "", fmt.Errorf("%w: local part length must be positive", ErrInvalidRange)
	}

	return localPart(local) + "@" + domain, nil
}

func localPart(n int) string {
	return string(pick(emailLeadChars)) + fill(emailLocalChars, n-1)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}
