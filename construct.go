package bpaf

// Construct2 through Construct5 build a sequential (product) Parser from
// several independent fields, calling f once all of them have succeeded
// (§4.3 "construct", mirroring bpaf's construct! macro). Go generics
// can't express a variadic field count, so each arity gets its own
// numbered constructor, the same shape as other Go combinator libraries
// (e.g. a pair/triple/tuple constructor set).
//
// Every field is tried against a private clone of the incoming State;
// the clone is committed back only if every field succeeded, so a
// partially-matched Construct never leaves side effects for a sibling Or
// branch or an enclosing Optional to trip over.
func Construct2[A, B, R any](pa Parser[A], pb Parser[B], f func(A, B) R) Parser[R] {
	return construct2[A, B, R]{pa: pa, pb: pb, f: f}
}

type construct2[A, B, R any] struct {
	pa Parser[A]
	pb Parser[B]
	f  func(A, B) R
}

func (c construct2[A, B, R]) Meta() Meta {
	return MetaAnd{Children: []Meta{c.pa.Meta(), c.pb.Meta()}}
}

func (c construct2[A, B, R]) eval(s *State) (R, Error) {
	var zero R
	trial := s.Clone()
	a, ea := c.pa.eval(trial)
	b, eb := c.pb.eval(trial)
	if err := combineAll(ea, eb); err != nil {
		return zero, err
	}
	s.Assign(trial)
	return c.f(a, b), nil
}

func Construct3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C], f func(A, B, C) R) Parser[R] {
	return construct3[A, B, C, R]{pa: pa, pb: pb, pc: pc, f: f}
}

type construct3[A, B, C, R any] struct {
	pa Parser[A]
	pb Parser[B]
	pc Parser[C]
	f  func(A, B, C) R
}

func (c construct3[A, B, C, R]) Meta() Meta {
	return MetaAnd{Children: []Meta{c.pa.Meta(), c.pb.Meta(), c.pc.Meta()}}
}

func (c construct3[A, B, C, R]) eval(s *State) (R, Error) {
	var zero R
	trial := s.Clone()
	a, ea := c.pa.eval(trial)
	b, eb := c.pb.eval(trial)
	cc, ec := c.pc.eval(trial)
	if err := combineAll(ea, eb, ec); err != nil {
		return zero, err
	}
	s.Assign(trial)
	return c.f(a, b, cc), nil
}

func Construct4[A, B, C, D, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], f func(A, B, C, D) R) Parser[R] {
	return construct4[A, B, C, D, R]{pa: pa, pb: pb, pc: pc, pd: pd, f: f}
}

type construct4[A, B, C, D, R any] struct {
	pa Parser[A]
	pb Parser[B]
	pc Parser[C]
	pd Parser[D]
	f  func(A, B, C, D) R
}

func (c construct4[A, B, C, D, R]) Meta() Meta {
	return MetaAnd{Children: []Meta{c.pa.Meta(), c.pb.Meta(), c.pc.Meta(), c.pd.Meta()}}
}

func (c construct4[A, B, C, D, R]) eval(s *State) (R, Error) {
	var zero R
	trial := s.Clone()
	a, ea := c.pa.eval(trial)
	b, eb := c.pb.eval(trial)
	cc, ec := c.pc.eval(trial)
	d, ed := c.pd.eval(trial)
	if err := combineAll(ea, eb, ec, ed); err != nil {
		return zero, err
	}
	s.Assign(trial)
	return c.f(a, b, cc, d), nil
}

func Construct5[A, B, C, D, E, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], f func(A, B, C, D, E) R) Parser[R] {
	return construct5[A, B, C, D, E, R]{pa: pa, pb: pb, pc: pc, pd: pd, pe: pe, f: f}
}

type construct5[A, B, C, D, E, R any] struct {
	pa Parser[A]
	pb Parser[B]
	pc Parser[C]
	pd Parser[D]
	pe Parser[E]
	f  func(A, B, C, D, E) R
}

func (c construct5[A, B, C, D, E, R]) Meta() Meta {
	return MetaAnd{Children: []Meta{c.pa.Meta(), c.pb.Meta(), c.pc.Meta(), c.pd.Meta(), c.pe.Meta()}}
}

func (c construct5[A, B, C, D, E, R]) eval(s *State) (R, Error) {
	var zero R
	trial := s.Clone()
	a, ea := c.pa.eval(trial)
	b, eb := c.pb.eval(trial)
	cc, ec := c.pc.eval(trial)
	d, ed := c.pd.eval(trial)
	e, ee := c.pe.eval(trial)
	if err := combineAll(ea, eb, ec, ed, ee); err != nil {
		return zero, err
	}
	s.Assign(trial)
	return c.f(a, b, cc, d, e), nil
}

// combineAll folds combineErrors across every non-nil error, so a
// Construct with several missing required fields reports all of them
// together rather than just the first (§7's Missing-concatenation rule
// applied across sibling fields, not just sibling Or branches).
func combineAll(errs ...Error) Error {
	var result Error
	for _, e := range errs {
		if e == nil {
			continue
		}
		if result == nil {
			result = e
			continue
		}
		result = combineErrors(result, e)
	}
	return result
}
