package core

import (
	"strings"
	"testing"
)

func TestRegistrationInvalid(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		invalid  bool
	}{
		{"valid minimal", "A", "a@b.co", "secret1", false},
		{"valid dotted local part", "Alice", "alice.smith@example.com", "password", false},
		{"valid hyphenated domain", "Bob", "bob@my-site.org", "hunter22", false},
		{"valid multi-label domain", "Carol", "carol@mail.example.co", "abcdef", false},
		{"name at 300 chars", strings.Repeat("x", 300), "x@y.io", "secret1", false},
		{"name over 300 chars", strings.Repeat("x", 301), "x@y.io", "secret1", true},
		{"password 6 chars", "A", "a@b.co", "123456", false},
		{"password under 6 chars", "A", "a@b.co", "12345", true},
		{"email without at", "A", "ab.co", "secret1", true},
		{"email without tld", "A", "a@b", "secret1", true},
		{"email tld too long", "A", "a@b.info", "secret1", true},
		{"email with double at", "A", "a@@b.co", "secret1", true},
		{"email with space", "A", "a b@c.co", "secret1", true},
		{"email with consecutive dots", "A", "a..b@c.co", "secret1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := registrationInvalid(tt.userName, tt.email, tt.password); got != tt.invalid {
				t.Errorf("registrationInvalid(%q, %q, %q) = %v, want %v", tt.userName, tt.email, tt.password, got, tt.invalid)
			}
		})
	}
}
