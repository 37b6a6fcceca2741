package bpaf

import (
	"fmt"
	"strings"

	"go.bpaf.dev/bpaf/internal/must"
)

// InvariantViolation reports one place a Meta tree breaks a structural
// invariant the evaluator depends on.
type InvariantViolation struct {
	Path   []int // child index at each level from the tree root
	Detail string
}

func (v InvariantViolation) String() string {
	if len(v.Path) == 0 {
		return v.Detail
	}
	parts := make([]string, len(v.Path))
	for i, p := range v.Path {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return fmt.Sprintf("at %s: %s", strings.Join(parts, "."), v.Detail)
}

// CheckInvariants walks m and reports every violation of I3: within a
// sequential (And/Construct) node, once a child shaped like a positional
// or a command appears, every later sibling must also be positional- or
// command-shaped. A flag or argument after a positional would be
// ambiguous about which one a bare word belongs to, so the tree is
// required to keep them rightmost.
//
// It operates on a built Meta value, not on types: a parser only exposes
// what it could have been built from, and two structurally different
// trees can use the same Go types, so the check has to walk the actual
// tree rather than pattern-match on a parser's static shape.
func CheckInvariants(m Meta) []InvariantViolation {
	var violations []InvariantViolation
	var walk func(m Meta, path []int)
	walk = func(m Meta, path []int) {
		switch t := m.(type) {
		case MetaAnd:
			seenTrailing := false
			for i, c := range t.Children {
				childPath := append(append([]int(nil), path...), i)
				if positionalOrCommandShaped(c) {
					seenTrailing = true
				} else if seenTrailing {
					violations = append(violations, InvariantViolation{
						Path:   childPath,
						Detail: "a flag or argument follows a positional/command in the same sequence; positionals and commands must be rightmost",
					})
				}
				walk(c, childPath)
			}
		case MetaOr:
			for i, c := range t.Children {
				walk(c, append(append([]int(nil), path...), i))
			}
		case MetaOptional:
			walk(t.Child, path)
		case MetaMany:
			walk(t.Child, path)
		case MetaRequired:
			walk(t.Child, path)
		case MetaDecorated:
			walk(t.Child, path)
		case MetaItem:
			if cmd, ok := t.Primitive.(CommandMeta); ok {
				walk(cmd.InnerMeta, path)
			}
		case MetaSkip:
		}
	}
	walk(m, nil)
	return violations
}

// positionalOrCommandShaped reports whether any of m's primitives is
// positional/command-shaped (a Positional, a Command, or an Any built
// with .Positional()). It's used to decide where, in a
// sequence, the "must be rightmost" boundary falls.
func positionalOrCommandShaped(m Meta) bool {
	shaped := false
	walkPrimitives(m, func(p Primitive) {
		switch v := p.(type) {
		case PositionalMeta:
			shaped = true
		case CommandMeta:
			shaped = true
		case AnyMeta:
			if v.IsPositional {
				shaped = true
			}
		}
	})
	return shaped
}

// MustCheckInvariants panics if m violates I3. Parser construction
// happens once at program startup, so a violation here is a programming
// error in the caller's grammar, not a runtime user-input problem —
// exactly the class of fault internal/must exists to crash loudly on.
func MustCheckInvariants(m Meta) {
	violations := CheckInvariants(m)
	if len(violations) == 0 {
		return
	}
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.String()
	}
	must.Failf("bpaf: invalid parser grammar:\n%s", strings.Join(msgs, "\n"))
}
