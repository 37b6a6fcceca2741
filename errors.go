package bpaf

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Error is the common interface for every error an evaluator can return
// (§3 "Error"). Besides being a normal Go error, it knows whether it is
// catchable — convertible to absence by Optional/Many/Fallback (§7).
type Error interface {
	error
	catchable() bool
}

// MissingItem names one primitive that was searched for and not found,
// along with where in the token stream the search happened.
type MissingItem struct {
	Primitive Primitive
	Pos       int // scope-relative search position, for ordering/rendering
}

// Missing is raised when a required primitive could not be matched
// anywhere in its scope. It is always catchable: Optional/Fallback/Many
// all turn a bare Missing into absence, and Or merges sibling Missing
// errors together (§7 rule 3) rather than treating them as fatal.
type Missing struct {
	Items []MissingItem
}

var _ Error = Missing{}

func (Missing) catchable() bool { return true }

func (m Missing) Error() string {
	if len(m.Items) == 0 {
		return "expected an argument"
	}
	parts := make([]string, len(m.Items))
	for i, it := range m.Items {
		parts[i] = describePrimitive(it.Primitive)
	}
	return "expected " + joinOr(parts)
}

// MessageKind is the closed set of non-Missing failure shapes (§3
// "Message"). Each concrete kind is a distinct Go type implementing this
// interface; a type switch in Message.Error/catchable dispatches on it.
type MessageKind interface {
	isMessageKind()
	render() string
}

// KindNoEnv: an Argument declared an env key, argv had no value for it,
// and the Env source had a value that the Argument's parse function
// rejected. An env key with no value at all is not an error here: the
// Argument goes on to the config source and then reports Missing.
type KindNoEnv struct{ EnvKey string }

// KindStrictPos: a strict Positional was matched against a plain Word
// that appeared before the `--` sentinel.
type KindStrictPos struct{ Metavar string }

// KindParseFail: the user-supplied parse function for an Argument,
// Positional, or Any rejected the input. FromAny distinguishes the `any`
// combinator's case (catchable per §7) from Argument/Positional's
// (non-catchable: the token was already claimed).
type KindParseFail struct {
	Detail  string
	Pos     int
	FromAny bool
}

// KindValidateFail: guard's predicate rejected an already-parsed value.
type KindValidateFail struct{ Detail string }

// KindNoArgument: an Argument matched a name but no value followed it
// (and none was attached). Value is the offending token's literal text
// when one was present but rejected as not value-like (e.g. it looked
// like another flag); it's empty when nothing followed at all.
type KindNoArgument struct {
	Name  Name
	Value string
	Pos   int
}

// KindUnconsumed: a token survived to the end of evaluation with nothing
// left to claim it (§4.10 classifies this further before rendering).
type KindUnconsumed struct{ Pos int }

// KindConflict: two mutually exclusive primitives were both present.
type KindConflict struct {
	Winner, Loser Names
}

// KindOnlyOnce: a single-shot primitive was matched more than once.
type KindOnlyOnce struct {
	Names    Names
	Prev, Cur int
}

// KindAmbiguity: surfaces a tokenizer-level AmbiguityError (§4.1 rule 5)
// through the same Error union the evaluator uses.
type KindAmbiguity struct {
	Pos     int
	Literal string
}

// SuggestionVariant distinguishes the residual-token classifications of
// §4.10 that produce a "did you mean" style message.
type SuggestionVariant int

const (
	SuggestionTypo       SuggestionVariant = iota // Damerau-Levenshtein match
	SuggestionMissingDash                          // "-xyz" meant "--xyz"
	SuggestionExtraDash                            // "--x" meant "-x"
	SuggestionNested                                // valid only inside a subcommand
)

// KindSuggestion: an unexpected token closely resembles a known name.
type KindSuggestion struct {
	Pos     int
	Literal string
	Variant SuggestionVariant
	Target  string   // the suggested spelling
	CmdPath []string // for SuggestionNested, the command path it's valid under
}

// KindExpected: a generic "expected one of these, got that" shape used by
// residual-token classification when no more specific kind applies.
type KindExpected struct {
	List   []string
	Actual string
}

// KindPureFailed: PureWith's thunk returned an error. Catchable, since a
// Pure that fails is equivalent to simply not having a value on offer.
type KindPureFailed struct{ Detail string }

func (KindNoEnv) isMessageKind()        {}
func (KindStrictPos) isMessageKind()    {}
func (KindParseFail) isMessageKind()    {}
func (KindValidateFail) isMessageKind() {}
func (KindNoArgument) isMessageKind()   {}
func (KindUnconsumed) isMessageKind()   {}
func (KindConflict) isMessageKind()     {}
func (KindOnlyOnce) isMessageKind()     {}
func (KindAmbiguity) isMessageKind()    {}
func (KindSuggestion) isMessageKind()   {}
func (KindExpected) isMessageKind()     {}
func (KindPureFailed) isMessageKind()   {}

func (k KindNoEnv) render() string {
	return fmt.Sprintf("couldn't parse the value of environment variable %q", k.EnvKey)
}

func (k KindStrictPos) render() string {
	return fmt.Sprintf("expected %s after --", k.Metavar)
}

func (k KindParseFail) render() string {
	return fmt.Sprintf("couldn't parse %s: %s", humanize.Ordinal(k.Pos+1)+" argument", k.Detail)
}

func (k KindValidateFail) render() string { return k.Detail }

func (k KindNoArgument) render() string {
	value := k.Value
	if value == "" {
		value = "value"
	}
	return fmt.Sprintf("%s requires an argument, try %s=%s", k.Name.Render(), k.Name.Render(), value)
}

func (k KindUnconsumed) render() string {
	return fmt.Sprintf("unexpected argument at the %s position", humanize.Ordinal(k.Pos+1))
}

func (k KindConflict) render() string {
	return fmt.Sprintf("%s cannot be used at the same time as %s", k.Winner.String(), k.Loser.String())
}

func (k KindOnlyOnce) render() string {
	return fmt.Sprintf("%s cannot be specified more than once (first used at the %s argument)",
		k.Names.String(), humanize.Ordinal(k.Prev+1))
}

func (k KindAmbiguity) render() string {
	return fmt.Sprintf("%q is ambiguous; write it as an argument (-x=value) or split the flags", k.Literal)
}

func (k KindSuggestion) render() string {
	switch k.Variant {
	case SuggestionMissingDash:
		return fmt.Sprintf("%q is not expected; did you mean --%s?", k.Literal, k.Target)
	case SuggestionExtraDash:
		return fmt.Sprintf("%q is not expected; did you mean -%s?", k.Literal, k.Target)
	case SuggestionNested:
		return fmt.Sprintf("%q is only valid under %q", k.Literal, strings.Join(k.CmdPath, " "))
	default:
		return fmt.Sprintf("%q is not expected in this context, did you mean %q?", k.Literal, k.Target)
	}
}

func (k KindExpected) render() string {
	return fmt.Sprintf("expected %s, got %q", joinOr(k.List), k.Actual)
}

func (k KindPureFailed) render() string { return k.Detail }

// Message wraps a MessageKind into an Error. Catchability follows §7's
// explicit enumeration: only an Any-sourced ParseFail and PureFailed are
// catchable; everything else propagates regardless of Optional/Many.
type Message struct {
	Kind MessageKind
}

var _ Error = Message{}

func (m Message) Error() string { return m.Kind.render() + helpHint }

func (m Message) catchable() bool {
	switch k := m.Kind.(type) {
	case KindParseFail:
		return k.FromAny
	case KindPureFailed:
		return true
	default:
		return false
	}
}

const helpHint = " (pass --help for usage)"

// Destination says where a finalized ParseFailure should be written.
type Destination int

const (
	Stderr Destination = iota
	Stdout
)

// ParseFailure is a finalized, already-rendered diagnostic: help text,
// version output, or a fully rendered error message. It is never
// catchable and always wins the §7 lattice (Finalized > NonCatchable >
// Missing).
type ParseFailure struct {
	Dest     Destination
	Rendered string
}

var _ Error = (*ParseFailure)(nil)

func (f *ParseFailure) Error() string  { return f.Rendered }
func (*ParseFailure) catchable() bool  { return false }

// ExitCode maps a ParseFailure's destination to a process exit code, per
// §6's "Exit behavior" contract (an adapter concern, implemented here
// since it's a one-line pure function every adapter would otherwise
// duplicate).
func (f *ParseFailure) ExitCode() int {
	if f.Dest == Stdout {
		return 0
	}
	return 1
}

// errorRank orders errors for the §7 combination lattice:
// Finalized(2) > NonCatchable Message(1) > Missing(0).
func errorRank(err Error) int {
	switch e := err.(type) {
	case *ParseFailure:
		return 2
	case Message:
		if e.catchable() {
			return 0 // catchable messages behave like Missing in the lattice
		}
		return 1
	case Missing:
		return 0
	default:
		return 1
	}
}

// combineErrors implements the §7 merge rule used when an Or node needs
// to report failure because every branch failed.
func combineErrors(a, b Error) Error {
	ra, rb := errorRank(a), errorRank(b)
	switch {
	case ra > rb:
		return a
	case rb > ra:
		return b
	}

	// Equal rank. If both are Missing values, concatenate and dedup their
	// items; otherwise (two messages, a Missing and a catchable message,
	// or two finalized failures) the leftmost wins.
	am, aIsMissing := asMissing(a)
	bm, bIsMissing := asMissing(b)
	if aIsMissing && bIsMissing {
		return Missing{Items: dedupMissingItems(append(append([]MissingItem{}, am.Items...), bm.Items...))}
	}
	return a
}

func asMissing(err Error) (Missing, bool) {
	if m, ok := err.(Missing); ok {
		return m, true
	}
	return Missing{}, false
}

func dedupMissingItems(items []MissingItem) []MissingItem {
	type key struct {
		pos  int
		desc string
	}
	seen := make(map[key]bool, len(items))
	out := items[:0]
	for _, it := range items {
		k := key{pos: it.Pos, desc: describePrimitive(it.Primitive)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// describePrimitive renders a single Primitive for "Expected X" messages.
func describePrimitive(p Primitive) string {
	switch v := p.(type) {
	case FlagMeta:
		return v.Names.String()
	case ArgumentMeta:
		return v.Names.String() + "=" + v.Metavar
	case PositionalMeta:
		return v.Metavar
	case CommandMeta:
		return v.Name
	case AnyMeta:
		return v.Metavar
	default:
		return "?"
	}
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return "more input"
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}
