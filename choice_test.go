package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrPicksBranchConsumingMoreTokens(t *testing.T) {
	short := Map(Switch(Long("a")), func(bool) string { return "a" })
	long := Map(
		Construct2(Switch(Long("a")), Switch(Long("b")), func(bool, bool) string { return "ab" }),
		func(s string) string { return s },
	)
	choice := Or(short, long)

	v, st, err := Eval(choice, tok(t, "--a", "--b"))
	require.NoError(t, err)
	assert.Equal(t, "ab", v)
	assert.True(t, st.IsEmpty())
}

func TestOrTieBreaksByConstructionOrder(t *testing.T) {
	first := Map(ReqFlag(Long("a"), true), func(bool) string { return "first" })
	second := Map(ReqFlag(Long("a"), true), func(bool) string { return "second" })
	choice := Or(first, second)

	v, _, err := Eval(choice, tok(t, "--a"))
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestOrAllBranchesFail(t *testing.T) {
	a := ReqFlag(Long("a"), true)
	b := ReqFlag(Long("b"), true)
	choice := Or(a, b)

	_, _, err := Eval(choice, tok(t))
	require.Error(t, err)
	var missing Missing
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Items, 2)
}

func TestOrBothBranchesPresentIsConflict(t *testing.T) {
	choice := Or(ReqFlag(Short('a'), true), ReqFlag(Short('b'), true))

	_, _, err := Eval(choice, tok(t, "-a", "-b"))
	require.Error(t, err)
	var msg Message
	require.ErrorAs(t, err, &msg)
	kind, ok := msg.Kind.(KindConflict)
	require.True(t, ok)
	assert.Equal(t, "-a", kind.Winner.String())
	assert.Equal(t, "-b", kind.Loser.String())
	assert.Contains(t, err.Error(), "-a cannot be used at the same time as -b")
}

func TestOrSingleBranchPresentStillWorks(t *testing.T) {
	choice := Or(ReqFlag(Short('a'), true), ReqFlag(Short('b'), true))

	v, st, err := Eval(choice, tok(t, "-b"))
	require.NoError(t, err)
	assert.True(t, v)
	assert.True(t, st.IsEmpty())
}
