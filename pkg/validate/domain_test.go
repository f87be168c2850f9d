package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDomainName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "Simple domain", input: "example.com", expect: true},
		{name: "Subdomain", input: "shop.example.co.uk", expect: true},
		{name: "Hyphenated label", input: "my-store.org", expect: true},
		{name: "Digits in label", input: "web3.io", expect: true},
		{name: "Empty string", input: "", expect: false},
		{name: "No TLD", input: "localhost", expect: false},
		{name: "Leading hyphen", input: "-bad.com", expect: false},
		{name: "Trailing hyphen", input: "bad-.com", expect: false},
		{name: "Uppercase rejected", input: "Example.com", expect: false},
		{name: "Scheme rejected", input: "http://example.com", expect: false},
		{name: "Space rejected", input: "exa mple.com", expect: false},
		{name: "Too long", input: strings.Repeat("a", 250) + ".com", expect: false},
		{name: "Numeric TLD rejected", input: "example.123", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsDomainName(tt.input))
		})
	}
}
