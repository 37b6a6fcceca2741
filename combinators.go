package bpaf

import "go.bpaf.dev/bpaf/internal/cmputil"

// Map transforms a successful value with f, leaving Meta and failure
// behavior untouched (§4.3 "map").
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return mapParser[A, B]{inner: p, f: f}
}

type mapParser[A, B any] struct {
	inner Parser[A]
	f     func(A) B
}

func (m mapParser[A, B]) Meta() Meta { return m.inner.Meta() }

func (m mapParser[A, B]) eval(s *State) (B, Error) {
	var zero B
	v, err := m.inner.eval(s)
	if err != nil {
		return zero, err
	}
	return m.f(v), nil
}

// ParseWith is Map for a transform that can itself fail (§4.3 "parse").
// Since the input token was already consumed, a rejection here is never
// catchable: the caller committed to this branch by the time f runs.
func ParseWith[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return parseWithParser[A, B]{inner: p, f: f}
}

type parseWithParser[A, B any] struct {
	inner Parser[A]
	f     func(A) (B, error)
}

func (m parseWithParser[A, B]) Meta() Meta { return m.inner.Meta() }

func (m parseWithParser[A, B]) eval(s *State) (B, Error) {
	var zero B
	v, err := m.inner.eval(s)
	if err != nil {
		return zero, err
	}
	w, perr := m.f(v)
	if perr != nil {
		return zero, Message{Kind: KindValidateFail{Detail: perr.Error()}}
	}
	return w, nil
}

// Guard rejects an already-parsed value that fails pred, reporting
// message (§4.3 "guard"). Like ParseWith, never catchable.
func Guard[T any](p Parser[T], pred func(T) bool, message string) Parser[T] {
	return guardParser[T]{inner: p, pred: pred, message: message}
}

type guardParser[T any] struct {
	inner   Parser[T]
	pred    func(T) bool
	message string
}

func (g guardParser[T]) Meta() Meta { return g.inner.Meta() }

func (g guardParser[T]) eval(s *State) (T, Error) {
	var zero T
	v, err := g.inner.eval(s)
	if err != nil {
		return zero, err
	}
	if !g.pred(v) {
		return zero, Message{Kind: KindValidateFail{Detail: g.message}}
	}
	return v, nil
}

// NonZero rejects p's value when it equals T's zero value, reporting that
// name is required. A common shorthand for Guard(p, func(v T) bool {
// return v != zero }, ...) that reads at the call site the way the
// validation itself reads.
func NonZero[T comparable](p Parser[T], name string) Parser[T] {
	return Guard(p, func(v T) bool { return !cmputil.Zero(v) }, name+" must not be empty")
}

// Optional turns a catchable failure of p into a nil *T rather than a
// parse failure (§4.3 "optional"). A non-catchable failure still
// propagates: Optional only absorbs "wasn't there", not "was there and
// broken".
func Optional[T any](p Parser[T]) Parser[*T] {
	return optionalParser[T]{inner: p}
}

type optionalParser[T any] struct{ inner Parser[T] }

func (o optionalParser[T]) Meta() Meta { return MetaOptional{Child: o.inner.Meta()} }

func (o optionalParser[T]) eval(s *State) (*T, Error) {
	trial := s.Clone()
	v, err := o.inner.eval(trial)
	if err == nil {
		s.Assign(trial)
		return &v, nil
	}
	if err.catchable() {
		return nil, nil
	}
	return nil, err
}

// Fallback is Optional with an eagerly-supplied default instead of a nil
// pointer (§4.3 "fallback").
func Fallback[T any](p Parser[T], def T) Parser[T] {
	return fallbackParser[T]{inner: p, def: def}
}

type fallbackParser[T any] struct {
	inner Parser[T]
	def   T
}

func (f fallbackParser[T]) Meta() Meta { return MetaOptional{Child: f.inner.Meta()} }

func (f fallbackParser[T]) eval(s *State) (T, Error) {
	trial := s.Clone()
	v, err := f.inner.eval(trial)
	if err == nil {
		s.Assign(trial)
		return v, nil
	}
	if err.catchable() {
		return f.def, nil
	}
	return v, err
}

// FallbackWith is Fallback with a lazily-computed default that may itself
// fail (§4.3 "fallback_with"); a failing default is reported the same way
// a failing PureWith thunk is.
func FallbackWith[T any](p Parser[T], f func() (T, error)) Parser[T] {
	return fallbackWithParser[T]{inner: p, f: f}
}

type fallbackWithParser[T any] struct {
	inner Parser[T]
	f     func() (T, error)
}

func (f fallbackWithParser[T]) Meta() Meta { return MetaOptional{Child: f.inner.Meta()} }

func (f fallbackWithParser[T]) eval(s *State) (T, Error) {
	trial := s.Clone()
	v, err := f.inner.eval(trial)
	if err == nil {
		s.Assign(trial)
		return v, nil
	}
	if !err.catchable() {
		return v, err
	}
	var zero T
	w, ferr := f.f()
	if ferr != nil {
		return zero, Message{Kind: KindPureFailed{Detail: ferr.Error()}}
	}
	return w, nil
}

// Many repeats p zero or more times, collecting results in order (§4.3
// "many"). Each attempt runs against a clone so a failed final attempt
// never leaves partial effects; repetition stops the moment an attempt
// succeeds while consuming zero tokens, which would otherwise loop
// forever (§4.3 edge case).
func Many[T any](p Parser[T]) Parser[[]T] {
	return manyParser[T]{inner: p}
}

type manyParser[T any] struct{ inner Parser[T] }

func (m manyParser[T]) Meta() Meta { return MetaMany{Child: m.inner.Meta()} }

func (m manyParser[T]) eval(s *State) ([]T, Error) {
	var out []T
	for {
		trial := s.Clone()
		before := trial.Len()
		v, err := m.inner.eval(trial)
		if err != nil {
			if err.catchable() {
				if s.logger != nil {
					s.logger.Debug("many: stopped on catchable failure", "matched", len(out))
				}
				break
			}
			return nil, err
		}
		s.Assign(trial)
		out = append(out, v)
		if trial.Len() == before {
			if s.logger != nil {
				s.logger.Debug("many: stopped on zero-width match", "matched", len(out))
			}
			break
		}
	}
	return out, nil
}

// Some is Many with at least one match required (§4.3 "some"): zero
// matches is reported as Missing against every primitive p.Meta()
// bottoms out at.
func Some[T any](p Parser[T]) Parser[[]T] {
	return someParser[T]{inner: manyParser[T]{inner: p}}
}

type someParser[T any] struct{ inner manyParser[T] }

func (s someParser[T]) Meta() Meta { return MetaRequired{Child: MetaMany{Child: s.inner.inner.Meta()}} }

func (sp someParser[T]) eval(s *State) ([]T, Error) {
	out, err := sp.inner.eval(s)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		var items []MissingItem
		walkPrimitives(sp.inner.inner.Meta(), func(p Primitive) {
			items = append(items, MissingItem{Primitive: p})
		})
		return nil, Missing{Items: items}
	}
	return out, nil
}
