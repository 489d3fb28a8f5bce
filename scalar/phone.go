package scalar

import (
	"fmt"
	"strings"
)

const (
	minPhoneLength = 8
	maxPhoneLength = 15
)

// Phone returns an international number: "+" followed by digits, 8 to 15 characters in total.
func Phone() string {
	return phone("+", intn(minPhoneLength, maxPhoneLength+1)-1)
}

// LocalPhone returns a national number starting with "0", 8 to 15 characters in total.
func LocalPhone() string {
	return phone("0", intn(minPhoneLength, maxPhoneLength+1)-1)
}

// PhoneOfLength returns "+" followed by n digits.
func PhoneOfLength(n int) (string, error) {
	return checkedPhone("+", n)
}

// LocalPhoneOfLength returns "0" followed by n digits.
func LocalPhoneOfLength(n int) (string, error) {
	return checkedPhone("0", n)
}

// PhoneWithCountryCode returns "+", the country code of 1 to 3 characters, and n digits.
func PhoneWithCountryCode(countryCode string, n int) (string, error) {
	if len(countryCode) == 0 || len(countryCode) > 3 {
		return "", fmt.Errorf("%w: country code %q must have 1 to 3 characters", ErrInvalidArgument, countryCode)
	}

	return checkedPhone("+"+countryCode, n)
}

func checkedPhone(prefix string, n int) (string, error) {
	total := len(prefix) + n
	if n < 0 || total < minPhoneLength || total > maxPhoneLength {
		return "", fmt.Errorf("%w: phone number length %d is outside [%d, %d]",
			ErrInvalidRange, total, minPhoneLength, maxPhoneLength)
	}

	return phone(prefix, n), nil
}

func phone(prefix string, n int) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(fill(digits, n))

	return b.String()
}
