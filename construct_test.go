package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetArgs struct {
	name string
	loud bool
}

func TestConstruct2Succeeds(t *testing.T) {
	p := Construct2(
		ArgumentString(Long("name"), "NAME"),
		Switch(Long("loud")),
		func(name string, loud bool) greetArgs { return greetArgs{name: name, loud: loud} },
	)

	v, _, err := Eval(p, tok(t, "--name=ava", "--loud"))
	require.NoError(t, err)
	assert.Equal(t, greetArgs{name: "ava", loud: true}, v)
}

func TestConstruct2CombinesMissing(t *testing.T) {
	p := Construct2(
		ReqFlag(Long("a"), true),
		ReqFlag(Long("b"), true),
		func(a, b bool) bool { return a && b },
	)

	_, _, err := Eval(p, tok(t))
	require.Error(t, err)
	var missing Missing
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Items, 2)
}

func TestConstruct2NoPartialConsumptionOnFailure(t *testing.T) {
	p := Construct2(
		Switch(Long("a")),
		ReqFlag(Long("b"), true),
		func(a, b bool) bool { return a && b },
	)

	_, st, err := Eval(p, tok(t, "--a"))
	require.Error(t, err)
	// b is missing, so the whole Construct must fail without consuming
	// --a either.
	assert.Equal(t, 1, st.Len())
}
