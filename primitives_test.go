package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(t *testing.T, args ...string) Tokens {
	t.Helper()
	toks, err := Tokenize(args, nil)
	require.NoError(t, err)
	return toks
}

func TestSwitchOutOfOrder(t *testing.T) {
	a := Switch(Short('a'))
	b := Switch(Short('b'))

	va, _, erra := Eval(a, tok(t, "-b"))
	require.NoError(t, erra)
	assert.False(t, va)

	vb, _, errb := Eval(b, tok(t, "-b"))
	require.NoError(t, errb)
	assert.True(t, vb)
}

func TestSwitchDoesNotEatAttachedArgument(t *testing.T) {
	// Simulate a registry where 'o' is a known argument, so "-ofile"
	// tokenizes as a Short with a tail, which a Switch for 'o' must not
	// treat as a bare match.
	reg := &NameRegistry{isArgument: map[rune]bool{'o': true}, isFlag: map[rune]bool{}}
	toks, err := Tokenize([]string{"-ofile"}, reg)
	require.NoError(t, err)

	sw := Switch(Short('o'))
	v, st, err := Eval(sw, toks)
	require.NoError(t, err)
	assert.False(t, v)
	assert.Equal(t, 1, st.Len())
}

func TestArgumentAttachedAndSeparate(t *testing.T) {
	arg := ArgumentString(Long("output"), "FILE")

	v, _, err := Eval(arg, tok(t, "--output=out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "out.txt", v)

	v, _, err = Eval(arg, tok(t, "--output", "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "out.txt", v)
}

func TestArgumentMissingValue(t *testing.T) {
	arg := ArgumentString(Long("output"), "FILE")
	_, _, err := Eval(arg, tok(t, "--output"))
	require.Error(t, err)
	assert.False(t, err.catchable())
}

func TestArgumentMissingEntirely(t *testing.T) {
	arg := ArgumentString(Long("output"), "FILE")
	_, _, err := Eval(arg, tok(t))
	require.Error(t, err)
	assert.True(t, err.catchable())
}

func TestArgumentEnvFallback(t *testing.T) {
	arg := ArgumentString(Long("output").Env("OUTPUT"), "FILE")
	st := NewState(tok(t))
	st.env = MapEnv{"OUTPUT": "env.txt"}
	v, err := arg.eval(st)
	require.NoError(t, err)
	assert.Equal(t, "env.txt", v)
}

func TestPositionalStrictRejectsPlainWord(t *testing.T) {
	p := Positional[string]("NAME", func(s string) (string, error) { return s, nil }).Strict()
	_, _, err := Eval(p, tok(t, "hello"))
	require.Error(t, err)
}

func TestPositionalStrictAcceptsAfterDashDash(t *testing.T) {
	p := Positional[string]("NAME", func(s string) (string, error) { return s, nil }).Strict()
	v, _, err := Eval(p, tok(t, "--", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestCommandDispatch(t *testing.T) {
	inner := Switch(Short('v'))
	cmd := Command("status", inner)
	v, st, err := Eval[bool](cmd, tok(t, "status", "-v"))
	require.NoError(t, err)
	assert.True(t, v)
	assert.True(t, st.IsEmpty())
}

func TestCommandAlias(t *testing.T) {
	cmd := Command("status", Pure(true)).Alias("st")
	_, _, err := Eval[bool](cmd, tok(t, "st"))
	require.NoError(t, err)
}

func TestReqFlagMissing(t *testing.T) {
	rf := ReqFlag(Long("force"), true)
	_, _, err := Eval(rf, tok(t))
	require.Error(t, err)
	var missing Missing
	require.ErrorAs(t, err, &missing)
}

func TestArgumentNoValueReportsName(t *testing.T) {
	a := ArgumentInt(Short('a'), "N")
	_, _, err := Eval(a, tok(t, "-a"))
	require.Error(t, err)
	assert.Equal(t, "-a requires an argument, try -a=value (pass --help for usage)", err.Error())
}

func TestArgumentNoValueReportsOffendingToken(t *testing.T) {
	a := ArgumentInt(Short('a'), "N")
	_, _, err := Eval(a, tok(t, "-a", "-2"))
	require.Error(t, err)
	assert.Equal(t, "-a requires an argument, try -a=-2 (pass --help for usage)", err.Error())
}
