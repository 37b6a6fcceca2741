package bpaf

import "iter"

// Meta is the pure, state-independent description every Parser exposes
// (§3 "Meta tree"). It never changes across calls for a given parser
// (invariant I1) and drives usage synthesis, help rendering, completion,
// and invariant checking without evaluating anything.
type Meta interface {
	isMeta()
}

// MetaAnd is the metadata for a sequential (product) composition: all
// children apply, in order.
type MetaAnd struct{ Children []Meta }

// MetaOr is the metadata for an alternative (choice) composition: exactly
// one child applies.
type MetaOr struct{ Children []Meta }

// MetaOptional marks its child as not required to succeed.
type MetaOptional struct{ Child Meta }

// MetaMany marks its child as repeatable zero or more times.
type MetaMany struct{ Child Meta }

// MetaRequired marks its child as mandatory, wrapping parenthesization in
// usage rendering (§4.12) around a compound child.
type MetaRequired struct{ Child Meta }

// MetaDecorated attaches a rendering banner (used by Adjacent/Anywhere to
// annotate their child) without changing the child's semantics.
type MetaDecorated struct {
	Child  Meta
	Banner string
}

// MetaItem wraps a single Primitive leaf.
type MetaItem struct{ Primitive Primitive }

// MetaSkip renders as nothing: used by Pure/PureWith, which consume no
// tokens and have no visible surface.
type MetaSkip struct{}

func (MetaAnd) isMeta()       {}
func (MetaOr) isMeta()        {}
func (MetaOptional) isMeta()  {}
func (MetaMany) isMeta()      {}
func (MetaRequired) isMeta()  {}
func (MetaDecorated) isMeta() {}
func (MetaItem) isMeta()      {}
func (MetaSkip) isMeta()      {}

// Primitive is the set of leaf descriptions a Meta tree bottoms out at
// (§3 "Primitive metadata").
type Primitive interface {
	isPrimitive()
	// Help returns the primitive's help string, if any.
	Help() string
}

// FlagMeta describes a Switch/Flag/ReqFlag primitive.
type FlagMeta struct {
	Names   Names
	EnvKey  string // "" if none
	HelpStr string
}

// ArgumentMeta describes an Argument<T> primitive.
type ArgumentMeta struct {
	Names     Names
	Metavar   string
	EnvKey    string // "" if none
	Predictor string // name registered via completion predictors, "" if none
	HelpStr   string
}

// PositionalMeta describes a Positional<T> primitive.
type PositionalMeta struct {
	Metavar   string
	Strict    bool
	Predictor string
	HelpStr   string
}

// CommandMeta describes a Command primitive.
type CommandMeta struct {
	Name      string
	Aliases   []string
	HelpStr   string
	InnerMeta Meta
}

// AnyMeta describes an Any<T> primitive: a user function consumes the
// first token it accepts.
type AnyMeta struct {
	Metavar      string
	IsPositional bool
	HelpStr      string
}

func (FlagMeta) isPrimitive()       {}
func (ArgumentMeta) isPrimitive()   {}
func (PositionalMeta) isPrimitive() {}
func (CommandMeta) isPrimitive()    {}
func (AnyMeta) isPrimitive()        {}

func (f FlagMeta) Help() string       { return f.HelpStr }
func (a ArgumentMeta) Help() string   { return a.HelpStr }
func (p PositionalMeta) Help() string { return p.HelpStr }
func (c CommandMeta) Help() string    { return c.HelpStr }
func (a AnyMeta) Help() string        { return a.HelpStr }

// walkPrimitives calls fn once for every Primitive reachable in m,
// depth-first, left-to-right. It does not recurse into a CommandMeta's
// InnerMeta, since those names live in a disjoint scope.
func walkPrimitives(m Meta, fn func(Primitive)) {
	switch t := m.(type) {
	case MetaAnd:
		for _, c := range t.Children {
			walkPrimitives(c, fn)
		}
	case MetaOr:
		for _, c := range t.Children {
			walkPrimitives(c, fn)
		}
	case MetaOptional:
		walkPrimitives(t.Child, fn)
	case MetaMany:
		walkPrimitives(t.Child, fn)
	case MetaRequired:
		walkPrimitives(t.Child, fn)
	case MetaDecorated:
		walkPrimitives(t.Child, fn)
	case MetaItem:
		fn(t.Primitive)
	case MetaSkip:
		// no-op
	}
}

// Primitives returns an iterator over every Primitive reachable in m, in
// the same depth-first order as walkPrimitives. It exists alongside the
// callback form so callers that want a range-over-func loop (or to feed
// iterutil.Enumerate for a 1-based listing) don't need their own closure.
func Primitives(m Meta) iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		done := false
		walkPrimitives(m, func(p Primitive) {
			if done {
				return
			}
			if !yield(p) {
				done = true
			}
		})
	}
}

// walkAllPrimitives is like walkPrimitives but does descend into command
// bodies, passing each primitive's command-nesting depth to fn.
func walkAllPrimitives(m Meta, fn func(depth int, p Primitive)) {
	var walk func(Meta, int)
	walk = func(m Meta, depth int) {
		switch t := m.(type) {
		case MetaAnd:
			for _, c := range t.Children {
				walk(c, depth)
			}
		case MetaOr:
			for _, c := range t.Children {
				walk(c, depth)
			}
		case MetaOptional:
			walk(t.Child, depth)
		case MetaMany:
			walk(t.Child, depth)
		case MetaRequired:
			walk(t.Child, depth)
		case MetaDecorated:
			walk(t.Child, depth)
		case MetaItem:
			fn(depth, t.Primitive)
			if cmd, ok := t.Primitive.(CommandMeta); ok {
				walk(cmd.InnerMeta, depth+1)
			}
		case MetaSkip:
		}
	}
	walk(m, 0)
}
