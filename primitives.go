package bpaf

import (
	"strconv"
	"strings"
)

// NamedBuilder accumulates the names, help text, and fallback sources for
// a flag or argument before one of the terminal constructors (Switch,
// Flag, ReqFlag, Argument) turns it into a Parser (§4.2 "Named
// primitives"). It exists because Go methods can't introduce a type
// parameter of their own: the builder collects everything that doesn't
// depend on the eventual value type T, and the terminal functions — which
// do need T — take a *NamedBuilder as a plain argument instead of being
// chained off it directly.
type NamedBuilder struct {
	names   Names
	help    string
	envKey  string
	predictor string
}

// Short starts a NamedBuilder with a single short name, e.g. Short('o').
func Short(r rune) *NamedBuilder {
	return &NamedBuilder{names: Names{shortName(r)}}
}

// Long starts a NamedBuilder with a single long name, e.g. Long("output").
func Long(s string) *NamedBuilder {
	return &NamedBuilder{names: Names{longName(s)}}
}

// Short adds another short name as an alias.
func (b *NamedBuilder) Short(r rune) *NamedBuilder {
	b.names = append(b.names, shortName(r))
	return b
}

// Long adds another long name as an alias.
func (b *NamedBuilder) Long(s string) *NamedBuilder {
	b.names = append(b.names, longName(s))
	return b
}

// Help attaches a one-line help description shown in usage/help text.
func (b *NamedBuilder) Help(s string) *NamedBuilder {
	b.help = s
	return b
}

// Env registers an environment variable consulted when argv has no value
// for this primitive (§6 "Environment fallback").
func (b *NamedBuilder) Env(key string) *NamedBuilder {
	b.envKey = key
	return b
}

// Predictor names a Predictor (registered via RegisterPredictor) used to
// offer completions for this Argument's value. No effect on Switch/Flag.
func (b *NamedBuilder) Predictor(name string) *NamedBuilder {
	b.predictor = name
	return b
}

// findNamed scans the whole current scope (not just its head) for the
// first token matching ns, since flags and arguments may appear anywhere
// relative to positionals and other flags. It returns the scope-relative
// offset of the match, or ok=false. A Short token carrying a tail is
// included: Argument wants that match, since the tail is an attached
// value.
func findNamed(s *State, ns Names) (offset int, tok Token, ok bool) {
	for i := 0; i < s.Len(); i++ {
		t, _ := s.At(i)
		if ns.Matches(t) {
			return i, t, true
		}
	}
	return 0, nil, false
}

// findNamedBoolean is findNamed restricted to tail-less Short tokens: a
// Short carrying a tail (`-ofile`) is reserved for Argument's
// attached-value reading and must never be consumed whole by a
// Switch/Flag/ReqFlag.
func findNamedBoolean(s *State, ns Names) (offset int, ok bool) {
	for i := 0; i < s.Len(); i++ {
		t, _ := s.At(i)
		if sh, isShort := t.(Short); isShort && sh.HasTail() {
			continue
		}
		if ns.Matches(t) {
			return i, true
		}
	}
	return 0, false
}

// Switch builds a boolean Parser that is true if any of b's names appear
// in argv and false otherwise; it never fails (§4.2 "switch").
func Switch(b *NamedBuilder) Parser[bool] {
	return switchParser{b: b}
}

type switchParser struct{ b *NamedBuilder }

func (p switchParser) Meta() Meta {
	return MetaItem{Primitive: FlagMeta{Names: p.b.names, EnvKey: p.b.envKey, HelpStr: p.b.help}}
}

func (p switchParser) eval(s *State) (bool, Error) {
	if s.Completing() {
		completeNames(s, p.b.names, p.b.help)
	}
	offset, ok := findNamedBoolean(s, p.b.names)
	if !ok {
		return false, nil
	}
	s.ConsumeAt(offset, 1)
	return true, nil
}

// Flag builds a Parser yielding present when any of b's names appear in
// argv, or absent otherwise, falling back to Env/ConfigSource in between
// (§4.2 "flag").
func Flag[T any](b *NamedBuilder, present, absent T) Parser[T] {
	return flagParser[T]{b: b, present: present, absent: absent}
}

type flagParser[T any] struct {
	b               *NamedBuilder
	present, absent T
}

func (p flagParser[T]) Meta() Meta {
	return MetaItem{Primitive: FlagMeta{Names: p.b.names, EnvKey: p.b.envKey, HelpStr: p.b.help}}
}

func (p flagParser[T]) eval(s *State) (T, Error) {
	if s.Completing() {
		completeNames(s, p.b.names, p.b.help)
	}
	if offset, ok := findNamedBoolean(s, p.b.names); ok {
		s.ConsumeAt(offset, 1)
		return p.present, nil
	}
	if p.b.envKey != "" {
		if _, ok := s.lookupEnv(p.b.envKey); ok {
			return p.present, nil
		}
	}
	if _, ok := s.lookupConfig(primaryConfigKey(p.b.names)); ok {
		return p.present, nil
	}
	return p.absent, nil
}

// ReqFlag is like Flag but fails (catchably, as Missing) rather than
// falling back to an absent value when none of b's names appear and
// neither Env nor ConfigSource has a value (§4.2 "req_flag").
func ReqFlag[T any](b *NamedBuilder, value T) Parser[T] {
	return reqFlagParser[T]{b: b, value: value}
}

type reqFlagParser[T any] struct {
	b     *NamedBuilder
	value T
}

func (p reqFlagParser[T]) Meta() Meta {
	return MetaItem{Primitive: FlagMeta{Names: p.b.names, EnvKey: p.b.envKey, HelpStr: p.b.help}}
}

func (p reqFlagParser[T]) eval(s *State) (T, Error) {
	if s.Completing() {
		completeNames(s, p.b.names, p.b.help)
	}
	if offset, ok := findNamedBoolean(s, p.b.names); ok {
		s.ConsumeAt(offset, 1)
		return p.value, nil
	}
	if p.b.envKey != "" {
		if _, ok := s.lookupEnv(p.b.envKey); ok {
			return p.value, nil
		}
	}
	if _, ok := s.lookupConfig(primaryConfigKey(p.b.names)); ok {
		return p.value, nil
	}
	var zero T
	return zero, Missing{Items: []MissingItem{{
		Primitive: FlagMeta{Names: p.b.names, EnvKey: p.b.envKey, HelpStr: p.b.help},
	}}}
}

// Argument builds a Parser that matches one of b's names and consumes
// the value that follows (attached via "=" or "-xvalue", or as the next
// token), parsing it with parse (§4.2 "argument"). Falls back to Env and
// then ConfigSource if no name is found in argv.
func Argument[T any](b *NamedBuilder, metavar string, parse func(string) (T, error)) Parser[T] {
	return argumentParser[T]{b: b, metavar: metavar, parse: parse}
}

// ArgumentString is sugar for Argument with an identity parse function.
func ArgumentString(b *NamedBuilder, metavar string) Parser[string] {
	return Argument(b, metavar, func(s string) (string, error) { return s, nil })
}

// ArgumentInt is sugar for Argument parsing a base-10 integer.
func ArgumentInt(b *NamedBuilder, metavar string) Parser[int] {
	return Argument(b, metavar, func(s string) (int, error) {
		return strconv.Atoi(s)
	})
}

type argumentParser[T any] struct {
	b       *NamedBuilder
	metavar string
	parse   func(string) (T, error)
}

func (p argumentParser[T]) Meta() Meta {
	return MetaItem{Primitive: ArgumentMeta{
		Names: p.b.names, Metavar: p.metavar, EnvKey: p.b.envKey,
		Predictor: p.b.predictor, HelpStr: p.b.help,
	}}
}

func (p argumentParser[T]) eval(s *State) (T, Error) {
	var zero T
	if s.Completing() {
		completeNames(s, p.b.names, p.b.help)
		completeValue(s, p.b.predictor)
	}

	if offset, tok, ok := findNamed(s, p.b.names); ok {
		switch t := tok.(type) {
		case Short:
			if t.HasTail() {
				s.ConsumeAt(offset, 1)
				v, err := p.parse(strings.TrimPrefix(t.Tail, "="))
				if err != nil {
					return zero, Message{Kind: KindParseFail{Detail: err.Error(), Pos: t.Pos()}}
				}
				return v, nil
			}
		case Long:
			if t.Attached != nil {
				s.ConsumeAt(offset, 1)
				v, err := p.parse(*t.Attached)
				if err != nil {
					return zero, Message{Kind: KindParseFail{Detail: err.Error(), Pos: t.Pos()}}
				}
				return v, nil
			}
		}
		matched, _ := p.b.names.Matching(tok)
		valTok, hasVal := s.At(offset + 1)
		if !hasVal {
			return zero, Message{Kind: KindNoArgument{Name: matched, Pos: tok.Pos()}}
		}
		text, isValueLike := valueText(valTok)
		if !isValueLike {
			return zero, Message{Kind: KindNoArgument{Name: matched, Value: tokenLiteral(valTok), Pos: tok.Pos()}}
		}
		s.ConsumeAt(offset, 2)
		v, err := p.parse(text)
		if err != nil {
			return zero, Message{Kind: KindParseFail{Detail: err.Error(), Pos: valTok.Pos()}}
		}
		return v, nil
	}

	if p.b.envKey != "" {
		if text, ok := s.lookupEnv(p.b.envKey); ok {
			v, err := p.parse(text)
			if err != nil {
				return zero, Message{Kind: KindNoEnv{EnvKey: p.b.envKey}}
			}
			return v, nil
		}
	}
	if text, ok := s.lookupConfig(primaryConfigKey(p.b.names)); ok {
		v, err := p.parse(text)
		if err == nil {
			return v, nil
		}
	}

	return zero, Missing{Items: []MissingItem{{Primitive: p.Meta().(MetaItem).Primitive}}}
}

// valueText extracts the literal text of a token that can serve as an
// Argument's value: a bare Word, or a PosWord (anything after --).
// Another named flag token is never treated as a value.
func valueText(tok Token) (string, bool) {
	switch t := tok.(type) {
	case Word:
		return t.Text, true
	case PosWord:
		return t.Text, true
	}
	return "", false
}

func primaryConfigKey(ns Names) string {
	short, hasShort, long, hasLong := ns.Primary()
	if hasLong {
		return long.String()
	}
	if hasShort {
		return string(short.Rune())
	}
	return ""
}

// PositionalBuilder accumulates options for a Positional<T> primitive
// (§4.2 "positional"). Unlike NamedBuilder it is generic over T itself,
// since a positional only ever has one terminal shape, so its chained
// methods can return *PositionalBuilder[T] directly and it can implement
// Parser[T] on its own.
type PositionalBuilder[T any] struct {
	metavar   string
	parse     func(string) (T, error)
	strict    bool
	predictor string
	help      string
}

// Positional builds a positional argument parser that matches the next
// unclaimed plain Word (or, after --, PosWord) and parses it with parse.
func Positional[T any](metavar string, parse func(string) (T, error)) *PositionalBuilder[T] {
	return &PositionalBuilder[T]{metavar: metavar, parse: parse}
}

// PositionalString is sugar for Positional with an identity parse.
func PositionalString(metavar string) *PositionalBuilder[string] {
	return Positional(metavar, func(s string) (string, error) { return s, nil })
}

// Strict restricts this positional to only match tokens after the --
// sentinel (§4.2 "strict positional").
func (b *PositionalBuilder[T]) Strict() *PositionalBuilder[T] {
	b.strict = true
	return b
}

// Help attaches help text.
func (b *PositionalBuilder[T]) Help(s string) *PositionalBuilder[T] {
	b.help = s
	return b
}

// Predictor names a registered Predictor for completion candidates.
func (b *PositionalBuilder[T]) Predictor(name string) *PositionalBuilder[T] {
	b.predictor = name
	return b
}

func (b *PositionalBuilder[T]) Meta() Meta {
	return MetaItem{Primitive: PositionalMeta{
		Metavar: b.metavar, Strict: b.strict, Predictor: b.predictor, HelpStr: b.help,
	}}
}

func (b *PositionalBuilder[T]) eval(s *State) (T, Error) {
	var zero T
	if s.Completing() {
		completeValue(s, b.predictor)
	}
	tok, ok := s.Head()
	if !ok {
		return zero, Missing{Items: []MissingItem{{Primitive: b.Meta().(MetaItem).Primitive}}}
	}
	switch t := tok.(type) {
	case PosWord:
		s.Consume(1)
		v, err := b.parse(t.Text)
		if err != nil {
			return zero, Message{Kind: KindParseFail{Detail: err.Error(), Pos: t.Pos()}}
		}
		return v, nil
	case Word:
		if b.strict {
			return zero, Message{Kind: KindStrictPos{Metavar: b.metavar}}
		}
		s.Consume(1)
		v, err := b.parse(t.Text)
		if err != nil {
			return zero, Message{Kind: KindParseFail{Detail: err.Error(), Pos: t.Pos()}}
		}
		return v, nil
	default:
		return zero, Missing{Items: []MissingItem{{Primitive: b.Meta().(MetaItem).Primitive}}}
	}
}

// CommandBuilder wraps a named subcommand whose body is parsed by inner
// (§4.2 "command", §4.9 "Command dispatch"). Like PositionalBuilder it is
// generic over T and implements Parser[T] directly.
type CommandBuilder[T any] struct {
	name    string
	aliases []string
	help    string
	inner   Parser[T]
}

// Command builds a command primitive: name must appear as the next plain
// Word, after which inner parses everything up to the end of the current
// scope (or the next token left unconsumed, which becomes residual).
func Command[T any](name string, inner Parser[T]) *CommandBuilder[T] {
	return &CommandBuilder[T]{name: name, inner: inner}
}

// Alias registers an additional spelling that also dispatches to inner.
func (b *CommandBuilder[T]) Alias(name string) *CommandBuilder[T] {
	b.aliases = append(b.aliases, name)
	return b
}

// Help attaches the one-line summary shown next to this command in its
// parent's usage/help listing.
func (b *CommandBuilder[T]) Help(s string) *CommandBuilder[T] {
	b.help = s
	return b
}

func (b *CommandBuilder[T]) Meta() Meta {
	return MetaItem{Primitive: CommandMeta{
		Name: b.name, Aliases: b.aliases, HelpStr: b.help, InnerMeta: b.inner.Meta(),
	}}
}

func (b *CommandBuilder[T]) matchesName(text string) bool {
	if text == b.name {
		return true
	}
	for _, a := range b.aliases {
		if text == a {
			return true
		}
	}
	return false
}

func (b *CommandBuilder[T]) eval(s *State) (T, Error) {
	var zero T
	if s.Completing() {
		completeCommand(s, b.name, b.aliases, b.help)
	}
	tok, ok := s.Head()
	if !ok {
		return zero, Missing{Items: []MissingItem{{Primitive: b.Meta().(MetaItem).Primitive}}}
	}
	word, isWord := tok.(Word)
	if !isWord || !b.matchesName(word.Text) {
		return zero, Missing{Items: []MissingItem{{Primitive: b.Meta().(MetaItem).Primitive}}}
	}
	s.Consume(1)
	restore := s.EnterCommand(b.name)
	defer restore()
	return b.inner.eval(s)
}

// Any builds an escape-hatch primitive (§4.2 "any") accepting the first
// in-scope token for which fn returns ok=true; fn sees the raw Token, so
// it can implement ad-hoc syntax a structured primitive can't express.
// Unlike Flag/Argument it only ever looks at the scope's head unless
// wrapped in Anywhere.
func Any[T any](metavar string, fn func(tok Token) (T, bool)) *AnyBuilder[T] {
	return &AnyBuilder[T]{metavar: metavar, fn: fn}
}

type AnyBuilder[T any] struct {
	metavar      string
	fn           func(Token) (T, bool)
	isPositional bool
	help         string
}

// Positional marks this Any as consuming positional-shaped input for the
// purposes of invariant checking and usage rendering.
func (b *AnyBuilder[T]) Positional() *AnyBuilder[T] {
	b.isPositional = true
	return b
}

// Help attaches help text.
func (b *AnyBuilder[T]) Help(s string) *AnyBuilder[T] {
	b.help = s
	return b
}

func (b *AnyBuilder[T]) Meta() Meta {
	return MetaItem{Primitive: AnyMeta{Metavar: b.metavar, IsPositional: b.isPositional, HelpStr: b.help}}
}

func (b *AnyBuilder[T]) eval(s *State) (T, Error) {
	var zero T
	tok, ok := s.Head()
	if !ok {
		return zero, Missing{Items: []MissingItem{{Primitive: b.Meta().(MetaItem).Primitive}}}
	}
	v, matched := b.fn(tok)
	if !matched {
		return zero, Missing{Items: []MissingItem{{Primitive: b.Meta().(MetaItem).Primitive}}}
	}
	s.Consume(1)
	return v, nil
}
