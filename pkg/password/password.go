// Package password implements the validity rules applied to passwords
// chosen by new users when registering.
package password

// SpecialChars is the fixed set of special characters, at least one of
// which must appear in a valid password.
const SpecialChars = "!?&%*@"

// MinLength is the minimum number of characters in a valid password.
const MinLength = 6

// IsValid reports whether password satisfies every registration rule:
// at least MinLength characters, at least one lowercase letter, one
// uppercase letter, one digit, and one character from SpecialChars.
//
// Letter and digit classification is ASCII-only, matching the character
// classes the rules were written against. Non-ASCII runes count toward
// length but toward no character class.
//
// IsValid is total: every input, including the empty string, maps to a
// boolean result. It never reports why a password failed.
func IsValid(password string) bool {
	for _, c := range Constraints() {
		if !c.Check(password) {
			return false
		}
	}
	return true
}

// Password attaches the validity rules directly to a password value, for
// callers that prefer carrying the rule set with the text itself.
//
// It should be passed by value.
type Password string

// IsValid reports whether the password satisfies every registration rule.
func (p Password) IsValid() bool {
	return IsValid(string(p))
}

// String returns the raw password text.
func (p Password) String() string {
	return string(p)
}
