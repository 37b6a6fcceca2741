package bpaf

// Anywhere lifts a normally head-restricted parser — Positional or a
// non-anywhere Any — so it may match starting at any position in the
// current scope, not just its head (§4.3/§4.8 "anywhere"). It scans left
// to right, trying p as though each successive token were the scope's
// head; the first position where p succeeds wins, and everything before
// that position is left untouched and still visible afterward. A
// non-catchable failure at any position aborts the scan immediately and
// propagates, rather than being treated as "try the next position".
func Anywhere[T any](p Parser[T]) Parser[T] {
	return anywhereParser[T]{inner: p}
}

type anywhereParser[T any] struct{ inner Parser[T] }

func (a anywhereParser[T]) Meta() Meta {
	return MetaDecorated{Child: a.inner.Meta(), Banner: "anywhere"}
}

func (a anywhereParser[T]) eval(s *State) (T, Error) {
	var zero T
	lo, hi := s.scope()

	var failure Error
	for i := 0; i < hi-lo; i++ {
		trial := s.Clone()
		trial.setScope(lo+i, hi)
		v, err := a.inner.eval(trial)
		if err == nil {
			trial.setScope(lo, trial.scopeHi)
			s.Assign(trial)
			return v, nil
		}
		if !err.catchable() {
			return zero, err
		}
		if failure == nil {
			failure = err
		} else {
			failure = combineErrors(failure, err)
		}
	}
	if failure == nil {
		failure = Missing{}
	}
	return zero, failure
}
