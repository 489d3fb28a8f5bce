package scalar

import (
	"fmt"
	"strings"
)

// Network describes a card issuer: the prefixes its numbers start with and their total length.
type Network struct {
	Name      string
	IINRanges []string
	Length    int
}

var (
	AmericanExpress = Network{Name: "American Express", IINRanges: []string{"34", "37"}, Length: 15}
	MasterCard      = Network{Name: "MasterCard", IINRanges: []string{"2221", "2720", "51", "55"}, Length: 16}
	Visa            = Network{Name: "Visa", IINRanges: []string{"4"}, Length: 16}
)

// CreditCard returns a number of the network's length that starts with one of its prefixes
// and ends with a Luhn check digit.
func CreditCard(n Network) (string, error) {
	if len(n.IINRanges) == 0 {
		return "", fmt.Errorf("%w: network %q has no IIN ranges", ErrInvalidArgument, n.Name)
	}

	iin := pick(n.IINRanges)
	body := n.Length - len(iin) - 1
	if body < 0 {
		return "", fmt.Errorf("%w: length %d of network %q leaves no room for the check digit after %q",
			ErrInvalidArgument, n.Length, n.Name, iin)
	}

	var b strings.Builder
	b.WriteString(iin)
	b.WriteString(fill(digits, body))

	payload := b.String()
	b.WriteByte('0' + luhnCheckDigit(payload))

	return b.String(), nil
}

// LuhnValid reports whether number is all digits and passes the Luhn checksum.
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}

	return luhnSum(number, false)%10 == 0 && strings.Trim(number, "0123456789") == ""
}

func luhnCheckDigit(payload string) byte {
	return byte((10 - luhnSum(payload, true)%10) % 10)
}

// luhnSum walks the digits right to left, doubling every other one starting with the rightmost
// when double is set.
func luhnSum(number string, double bool) int {
	sum := 0
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum
}
