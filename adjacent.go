package bpaf

// Adjacent wraps p so that, after a successful match, the tokens p
// consumed must form one contiguous run within the scope p saw — no
// other still-unconsumed token may sit between the first and last token
// p claimed (§4.8 "adjacent"). This is what lets a multi-token group like
// `--point X Y` be told apart from `--point X --other Y`, where Y would
// otherwise still be reachable by a scope-wide flag search.
func Adjacent[T any](p Parser[T]) Parser[T] {
	return adjacentParser[T]{inner: p}
}

type adjacentParser[T any] struct{ inner Parser[T] }

func (a adjacentParser[T]) Meta() Meta {
	return MetaDecorated{Child: a.inner.Meta(), Banner: "adjacent"}
}

func (a adjacentParser[T]) eval(s *State) (T, Error) {
	var zero T
	before := s.liveSnapshot()

	trial := s.Clone()
	v, err := a.inner.eval(trial)
	if err != nil {
		return zero, err
	}
	after := trial.liveSnapshot()

	afterSet := make(map[int]bool, len(after))
	for _, pos := range after {
		afterSet[pos] = true
	}

	firstIdx, lastIdx := -1, -1
	consumed := make(map[int]bool)
	for i, pos := range before {
		if !afterSet[pos] {
			consumed[pos] = true
			if firstIdx == -1 {
				firstIdx = i
			}
			lastIdx = i
		}
	}
	if firstIdx == -1 {
		// Nothing consumed: trivially contiguous.
		s.Assign(trial)
		return v, nil
	}
	for i := firstIdx; i <= lastIdx; i++ {
		if !consumed[before[i]] {
			return zero, Message{Kind: KindValidateFail{Detail: "adjacent group must be contiguous"}}
		}
	}
	s.Assign(trial)
	return v, nil
}
