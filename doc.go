// Package bpaf is an applicative command-line argument parser.
//
// Parsers are built from primitives (flags, arguments, positionals,
// commands) and combined with combinators (Map, Optional, Many, Construct,
// Choice, Adjacent, Anywhere) into a tree describing the shape of a typed
// value. The resulting tree is finalized into an [OptionParser] and run
// against a slice of argv-style strings; it produces the typed value, a
// rendered diagnostic, or a help/completion artifact.
//
// The package does not interpret the value it builds: shells, man pages,
// and derive-macro style generation of parsers from struct tags are
// explicitly out of scope.
package bpaf
