package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xy struct{ x, y string }

func xyParser() Parser[xy] {
	return Construct2(
		ArgumentString(Long("x"), "X"),
		ArgumentString(Long("y"), "Y"),
		func(x, y string) xy { return xy{x: x, y: y} },
	)
}

func TestAdjacentAcceptsContiguousGroup(t *testing.T) {
	p := Adjacent(xyParser())
	v, st, err := Eval(p, tok(t, "--x=1", "--y=2", "--z=3"))
	require.NoError(t, err)
	assert.Equal(t, xy{x: "1", y: "2"}, v)
	assert.Equal(t, 1, st.Len()) // --z=3 survives, untouched
}

func TestAdjacentRejectsGapBetweenTokens(t *testing.T) {
	p := Adjacent(xyParser())
	_, _, err := Eval(p, tok(t, "--x=1", "--extra", "--y=2"))
	require.Error(t, err)
	assert.False(t, err.catchable())
}
