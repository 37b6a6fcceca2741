package bpaf

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAndParseWith(t *testing.T) {
	base := ArgumentString(Long("count"), "N")
	n := ParseWith(base, func(s string) (int, error) { return strconv.Atoi(s) })
	doubled := Map(n, func(v int) int { return v * 2 })

	v, _, err := Eval(doubled, tok(t, "--count=21"))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, _, err = Eval(n, tok(t, "--count=nope"))
	require.Error(t, err)
	assert.False(t, err.catchable())
}

func TestGuardRejectsValue(t *testing.T) {
	n := ParseWith(ArgumentString(Long("n"), "N"), strconv.Atoi)
	positive := Guard(n, func(v int) bool { return v > 0 }, "n must be positive")

	_, _, err := Eval(positive, tok(t, "--n=-3"))
	require.Error(t, err)

	v, _, err := Eval(positive, tok(t, "--n=3"))
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestNonZeroRejectsEmptyString(t *testing.T) {
	n := NonZero(ArgumentString(Long("name"), "NAME"), "name")

	_, _, err := Eval(n, tok(t, "--name="))
	require.Error(t, err)

	v, _, err := Eval(n, tok(t, "--name=bob"))
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
}

func TestOptionalAbsentIsNil(t *testing.T) {
	opt := Optional(ArgumentString(Long("name"), "NAME"))
	v, _, err := Eval(opt, tok(t))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestOptionalPresent(t *testing.T) {
	opt := Optional(ArgumentString(Long("name"), "NAME"))
	v, _, err := Eval(opt, tok(t, "--name=bob"))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "bob", *v)
}

func TestFallbackUsesDefault(t *testing.T) {
	fb := Fallback(ArgumentString(Long("name"), "NAME"), "anon")
	v, _, err := Eval(fb, tok(t))
	require.NoError(t, err)
	assert.Equal(t, "anon", v)
}

func TestManyCollectsRepeats(t *testing.T) {
	many := Many(ArgumentString(Long("tag"), "TAG"))
	v, st, err := Eval(many, tok(t, "--tag=a", "--tag=b", "--tag=c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v)
	assert.True(t, st.IsEmpty())
}

func TestManyStopsOnNoMatch(t *testing.T) {
	many := Many(ArgumentString(Long("tag"), "TAG"))
	v, _, err := Eval(many, tok(t))
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSomeRequiresAtLeastOne(t *testing.T) {
	some := Some(ArgumentString(Long("tag"), "TAG"))
	_, _, err := Eval(some, tok(t))
	require.Error(t, err)
	assert.True(t, err.catchable())

	v, _, err := Eval(some, tok(t, "--tag=a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v)
}
