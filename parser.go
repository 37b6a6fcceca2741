package bpaf

// Parser is the capability every node in the algebra satisfies (§3
// "Parser<T>"): it can evaluate against a State, consuming tokens it
// accepts, and it can describe itself with a state-independent Meta tree.
//
// eval/Meta are deliberately asymmetric in visibility: Meta is exported
// because usage synthesis, help rendering, completion, and invariant
// checking all need to inspect a parser from outside the package that
// built it, while eval stays package-private so that the only way to
// build a Parser is through the primitives and combinators this package
// exports — exactly the "parsers form a heterogeneous tree built from
// concrete combinator types" design in §9.
type Parser[T any] interface {
	eval(s *State) (T, Error)
	// Meta returns this parser's metadata tree. It must be pure: two
	// calls on the same Parser value return equal trees (invariant I1).
	Meta() Meta
}

// Pure builds a Parser that consumes no tokens and always succeeds with
// v. It's the applicative "unit": useful as a Construct field default, or
// as one arm of a Fallback.
func Pure[T any](v T) Parser[T] {
	return pureParser[T]{get: func() (T, Error) { return v, nil }}
}

// PureWith is like Pure but computes its value lazily, once per eval
// call, and may fail. A failure is always catchable (KindPureFailed): a
// Pure that can't produce a value behaves like one that simply has
// nothing to offer.
func PureWith[T any](f func() (T, error)) Parser[T] {
	return pureParser[T]{get: func() (T, Error) {
		v, err := f()
		if err != nil {
			return v, Message{Kind: KindPureFailed{Detail: err.Error()}}
		}
		return v, nil
	}}
}

type pureParser[T any] struct {
	get func() (T, Error)
}

func (p pureParser[T]) eval(_ *State) (T, Error) { return p.get() }
func (pureParser[T]) Meta() Meta                 { return MetaSkip{} }

// Eval runs p against a fresh State built from already-tokenized input,
// without any of the Run/RunInner help-or-version splicing or residual
// classification. It's the building block tests use to exercise a single
// parser in isolation (§8's concrete scenarios are expressed this way).
func Eval[T any](p Parser[T], toks Tokens) (T, *State, Error) {
	st := NewState(toks)
	v, err := p.eval(st)
	return v, st, err
}
