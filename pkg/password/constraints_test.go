package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/passcheck/pkg/password"
)

func constraintByName(t *testing.T, name string) password.Constraint {
	t.Helper()
	for _, c := range password.Constraints() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no constraint named %q", name)
	return password.Constraint{}
}

func TestConstraintsFixedSet(t *testing.T) {
	cs := password.Constraints()
	require.Len(t, cs, 5)

	names := make([]string, 0, len(cs))
	for _, c := range cs {
		require.NotNil(t, c.Check, "constraint %q has no check", c.Name)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"min_length", "lowercase", "uppercase", "digit", "special"}, names)
}

func TestConstraintMinLength(t *testing.T) {
	c := constraintByName(t, "min_length")
	assert.False(t, c.Check(""))
	assert.False(t, c.Check("abcde"))
	assert.True(t, c.Check("abcdef"))
	assert.True(t, c.Check("abcdefg"))
}

func TestConstraintLowercase(t *testing.T) {
	c := constraintByName(t, "lowercase")
	assert.False(t, c.Check(""))
	assert.False(t, c.Check("ABC123!"))
	assert.True(t, c.Check("ABC123x"))
	assert.False(t, c.Check("é"), "non-ASCII letters do not classify")
}

func TestConstraintUppercase(t *testing.T) {
	c := constraintByName(t, "uppercase")
	assert.False(t, c.Check(""))
	assert.False(t, c.Check("abc123!"))
	assert.True(t, c.Check("abc123X"))
	assert.False(t, c.Check("É"), "non-ASCII letters do not classify")
}

func TestConstraintDigit(t *testing.T) {
	c := constraintByName(t, "digit")
	assert.False(t, c.Check(""))
	assert.False(t, c.Check("abcXYZ!"))
	assert.True(t, c.Check("abcXYZ9"))
}

func TestConstraintSpecial(t *testing.T) {
	c := constraintByName(t, "special")
	assert.False(t, c.Check(""))
	assert.False(t, c.Check("abcXYZ123"))
	assert.False(t, c.Check("abc#$^"), "punctuation outside the fixed set does not count")
	for _, r := range password.SpecialChars {
		assert.True(t, c.Check(string(r)), "special char %q", r)
	}
}
