package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "Email", 5},
		{"Email", "", 5},
		{"Email", "Email", 0},
		{"Emial", "Email", 2},
		{"Email", "Emails", 1},
		{"kitten", "sitting", 3},
		{"CreatedAt", "UpdatedAt", 3},
		{"Größe", "Grosse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}

			if got := Distance(tt.b, tt.a); got != tt.expected {
				t.Errorf("Distance is not symmetric for (%q, %q)", tt.a, tt.b)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("name", "name"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Name", []string{"name"}},
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"created_at", []string{"created", "at"}},
		{"ip-v4 Address", []string{"ip", "v4", "address"}},
		{"Line2Total", []string{"line2", "total"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, in := range []string{"CustomerID", "customer_id", "customerId", "Customer-ID"} {
		assert.Equal(t, "customerid", Normalize(in), in)
	}
}

func TestSuggest(t *testing.T) {
	fields := []string{"ID", "Email", "Name", "Orders", "CreatedAt", "EmailVerified"}

	assert.Equal(t, []string{"Email"}, Suggest("Emial", fields, 1))
	assert.Equal(t, "Email", Suggest("email", fields, 3)[0])
	assert.Equal(t, []string{"CreatedAt"}, Suggest("created_at", fields, 3))
	assert.Equal(t, []string{"Orders"}, Suggest("Order", fields, 1))
	assert.Empty(t, Suggest("Zzzzzz", fields, 3))
	assert.Empty(t, Suggest("Email", nil, 3))
}

func TestSuggest_Deterministic(t *testing.T) {
	fields := []string{"Bar", "Baz", "Bat"}

	first := Suggest("Ba", fields, -1)
	for range 10 {
		assert.Equal(t, first, Suggest("Ba", fields, -1))
	}
	assert.Equal(t, []string{"Bar", "Bat", "Baz"}, first)
}
