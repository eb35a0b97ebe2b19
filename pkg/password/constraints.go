package password

import (
	"strings"
	"unicode/utf8"
)

// Constraint is a single named rule a valid password must satisfy.
type Constraint struct {
	Name  string
	Check func(password string) bool
}

// Constraints returns the fixed, ordered set of rules evaluated by IsValid.
// All rules must hold; the order carries no semantic weight.
func Constraints() []Constraint {
	return []Constraint{
		{Name: "min_length", Check: hasMinLength},
		{Name: "lowercase", Check: hasLowercase},
		{Name: "uppercase", Check: hasUppercase},
		{Name: "digit", Check: hasDigit},
		{Name: "special", Check: hasSpecial},
	}
}

// Length is counted in characters, not bytes.
func hasMinLength(s string) bool {
	return utf8.RuneCountInString(s) >= MinLength
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func hasSpecial(s string) bool {
	return strings.ContainsAny(s, SpecialChars)
}
