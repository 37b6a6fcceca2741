package bpaf

import "fmt"

// Name identifies a named primitive (flag or argument) by either a single
// short rune (`-o`) or a long string (`--output`). A named primitive may
// carry several Names; the first short and first long name are "primary"
// for rendering in usage lines and help text.
type Name struct {
	short rune   // 0 if this is a long name
	long  string // "" if this is a short name
}

func shortName(r rune) Name { return Name{short: r} }
func longName(s string) Name { return Name{long: s} }

// IsShort reports whether n is a short name.
func (n Name) IsShort() bool { return n.long == "" }

// IsLong reports whether n is a long name.
func (n Name) IsLong() bool { return n.long != "" }

// Rune returns the rune for a short name. It panics if n is a long name.
func (n Name) Rune() rune {
	if !n.IsShort() {
		panic("bpaf: Name.Rune called on a long name")
	}
	return n.short
}

// String returns the long name text, or the rune as a one-character
// string if n is a short name.
func (n Name) String() string {
	if n.IsShort() {
		return string(n.short)
	}
	return n.long
}

// Render renders n the way it would appear on the command line,
// e.g. "-o" or "--output".
func (n Name) Render() string {
	if n.IsShort() {
		return "-" + string(n.short)
	}
	return "--" + n.long
}

// Names is an ordered, non-empty set of Name values attached to a single
// named primitive. Construction helpers (Short/Long) append to it via the
// fluent NamedBuilder; Names itself just tracks insertion order so the
// first short and first long name can be picked out as "primary".
type Names []Name

// Primary returns the first short and first long name, if present.
func (ns Names) Primary() (short Name, hasShort bool, long Name, hasLong bool) {
	for _, n := range ns {
		if n.IsShort() && !hasShort {
			short, hasShort = n, true
		}
		if n.IsLong() && !hasLong {
			long, hasLong = n, true
		}
	}
	return
}

// Matches reports whether tok is a Short or Long token naming one of ns.
func (ns Names) Matches(tok Token) bool {
	_, ok := ns.Matching(tok)
	return ok
}

// Matching returns the Name within ns that tok names, if any. Used by
// diagnostics that need to render the specific spelling the user typed
// (or the primitive's own) rather than just knowing a match occurred.
func (ns Names) Matching(tok Token) (Name, bool) {
	switch t := tok.(type) {
	case Short:
		for _, n := range ns {
			if n.IsShort() && n.short == t.Rune {
				return n, true
			}
		}
	case Long:
		for _, n := range ns {
			if n.IsLong() && n.long == t.Name {
				return n, true
			}
		}
	}
	return Name{}, false
}

// String renders all names joined by ", ", e.g. "-o, --output".
func (ns Names) String() string {
	s := ""
	for i, n := range ns {
		if i > 0 {
			s += ", "
		}
		s += n.Render()
	}
	return s
}

func (n Name) GoString() string {
	return fmt.Sprintf("Name(%q)", n.Render())
}
