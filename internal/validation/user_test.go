package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	valid := []string{
		"TestPass123!@#",
		"Another-Good1Pass",
		"Xy9?" + strings.Repeat("a", 8),
	}
	for _, p := range valid {
		assert.NoError(t, ValidatePassword(p), p)
	}

	invalid := []string{
		"Short1!",                        // too short
		strings.Repeat("Aa1!", 40),       // too long
		"alllowercase1!!",                // no uppercase
		"ALLUPPERCASE1!!",                // no lowercase
		"NoDigitsHere!!!",                // no digit
		"NoSpecialChars12",               // no special
	}
	for _, p := range invalid {
		assert.Error(t, ValidatePassword(p), p)
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"bob", "alice_smith", "user-42", strings.Repeat("a", 30)}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), u)
	}

	invalid := []string{
		"ab",                       // too short
		strings.Repeat("a", 31),    // too long
		"has space",                // illegal character
		"dots.not.ok",              // illegal character
		"_leading",                 // leading underscore
		"trailing-",                // trailing hyphen
	}
	for _, u := range invalid {
		assert.Error(t, ValidateUsername(u), u)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+c@sub.domain.org"}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}

	invalid := []string{"", "plain", "no@tld", "@example.com", "spaces in@example.com"}
	for _, e := range invalid {
		assert.Error(t, ValidateEmail(e), e)
	}
}
