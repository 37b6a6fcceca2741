package bpaf

// Or builds an alternative Parser from several same-typed branches (§4.6
// "choice"). Go's single type parameter naturally covers any arity here
// — unlike Construct, Or doesn't need numbered variants — since every
// branch already agrees on T; a caller choosing between differently
// shaped alternatives maps each branch into a shared result type first.
//
// Every branch is tried, each against its own clone of the incoming
// state, so a branch that partially matches before failing never
// disturbs its siblings. Among branches that succeed, the one that
// consumed the most tokens wins; ties are broken by the branch's
// position in ps, i.e. construction order (§4.6's "pecking order").
func Or[T any](ps ...Parser[T]) Parser[T] {
	return orParser[T]{branches: ps}
}

type orParser[T any] struct {
	branches []Parser[T]
}

func (o orParser[T]) Meta() Meta {
	children := make([]Meta, len(o.branches))
	for i, b := range o.branches {
		children[i] = b.Meta()
	}
	return MetaOr{Children: children}
}

type orCandidate[T any] struct {
	value    T
	trial    *State
	consumed int
}

func (o orParser[T]) eval(s *State) (T, Error) {
	var zero T
	before := s.Len()

	var best *orCandidate[T]
	bestIdx := -1
	var failure Error
	for i, branch := range o.branches {
		trial := s.Clone()
		v, err := branch.eval(trial)
		if err != nil {
			if failure == nil {
				failure = err
			} else {
				failure = combineErrors(failure, err)
			}
			continue
		}
		consumed := before - trial.Len()
		if best == nil || consumed > best.consumed {
			best = &orCandidate[T]{value: v, trial: trial, consumed: consumed}
			bestIdx = i
		}
	}

	if best == nil {
		if failure == nil {
			failure = Missing{}
		}
		if s.logger != nil {
			s.logger.Debug("or: every branch failed", "branches", len(o.branches))
		}
		return zero, failure
	}

	// A token left over by the winning branch that belongs to a sibling
	// branch isn't an ordinary unexpected argument — it's proof the user
	// asked for two mutually exclusive alternatives at once (§4.6).
	if conflict, ok := o.detectSiblingConflict(bestIdx, best.trial); ok {
		if s.logger != nil {
			s.logger.Debug("or: conflicting branches both present", "winner", bestIdx)
		}
		return zero, conflict
	}

	if s.logger != nil {
		s.logger.Debug("or: picked branch", "index", bestIdx, "consumed", best.consumed)
	}
	s.Assign(best.trial)
	return best.value, nil
}

// detectSiblingConflict reports whether any token still unconsumed in
// trial names a flag/argument belonging to a branch other than the one
// that won (bestIdx).
func (o orParser[T]) detectSiblingConflict(bestIdx int, trial *State) (Error, bool) {
	winnerNames := collectNames(o.branches[bestIdx].Meta())
	for i, branch := range o.branches {
		if i == bestIdx {
			continue
		}
		siblingNames := collectNames(branch.Meta())
		for j := 0; j < trial.Len(); j++ {
			tok, _ := trial.At(j)
			if matched, ok := siblingNames.Matching(tok); ok {
				return Message{Kind: KindConflict{Winner: winnerNames, Loser: Names{matched}}}, true
			}
		}
	}
	return nil, false
}
