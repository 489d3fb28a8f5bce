package match

import (
	"strings"
	"unicode"
)

// Tokens splits an identifier into lower-case words at separators and case changes.
// "OrderID" yields [order id], "XMLParser" yields [xml parser], "created_at" yields [created at].
func Tokens(ident string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(ident)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		word = append(word, r)
	}
	flush()

	return words
}

// Normalize joins Tokens so that "customer_id", "CustomerID" and "customerId" compare equal.
func Normalize(ident string) string {
	return strings.Join(Tokens(ident), "")
}
