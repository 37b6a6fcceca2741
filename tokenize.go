package bpaf

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NameRegistry answers the one question the tokenizer needs about the
// parser tree it's about to feed: for a short name, is it known to be an
// argument (takes a value), a flag (takes none), both, or neither? The
// execution engine builds this by walking Meta before tokenizing (§4.5
// step 1); nothing else in the tokenizer depends on parser semantics.
type NameRegistry struct {
	isArgument map[rune]bool
	isFlag     map[rune]bool
}

// NewNameRegistry builds a registry from the given Meta tree.
func NewNameRegistry(m Meta) *NameRegistry {
	reg := &NameRegistry{
		isArgument: make(map[rune]bool),
		isFlag:     make(map[rune]bool),
	}
	walkPrimitives(m, func(p Primitive) {
		switch prim := p.(type) {
		case FlagMeta:
			for _, n := range prim.Names {
				if n.IsShort() {
					reg.isFlag[n.Rune()] = true
				}
			}
		case ArgumentMeta:
			for _, n := range prim.Names {
				if n.IsShort() {
					reg.isArgument[n.Rune()] = true
				}
			}
		}
	})
	return reg
}

// AmbiguityError is raised by the tokenizer per §4.1 rule 5 when a short
// cluster `-Xrest` could be read either as an argument with an attached
// value or as a cluster of boolean flags, and the registry does not
// disambiguate it.
type AmbiguityError struct {
	Pos     int
	Literal string
}

func (e *AmbiguityError) Error() string {
	r, _ := utf8.DecodeRuneInString(e.Literal[1:])
	rest := e.Literal[1+utf8.RuneLen(r):]
	return fmt.Sprintf(
		"%q is ambiguous: write -%c=%s for an argument or split the flags (e.g. -%c %s) for a cluster",
		e.Literal, r, rest, r, spacedRunes(rest),
	)
}

func spacedRunes(s string) string {
	var b strings.Builder
	first := true
	for _, r := range s {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteByte('-')
		b.WriteRune(r)
		first = false
	}
	return b.String()
}

// Tokenize splits raw argv into a Tokens value per §4.1.
//
// reg may be nil, in which case no rune is known as a flag or an
// argument: every `-Xrest` becomes a single Short with rest as its
// attached value, and no ambiguity is ever reported.
func Tokenize(args []string, reg *NameRegistry) (Tokens, error) {
	if reg == nil {
		reg = &NameRegistry{isArgument: map[rune]bool{}, isFlag: map[rune]bool{}}
	}

	toks := Tokens{DashDashAt: -1}
	positionalMode := false

	for pos, arg := range args {
		if positionalMode {
			toks.Items = append(toks.Items, PosWord{Text: arg, pos: pos})
			continue
		}

		switch {
		case arg == "--":
			positionalMode = true
			toks.DashDashAt = pos

		case arg == "-":
			// Rule 3: bare "-" is a conventional stdin marker, a Word.
			toks.Items = append(toks.Items, Word{Text: arg, pos: pos})

		case strings.HasPrefix(arg, "--"):
			body := arg[2:]
			name, value, hasEq := strings.Cut(body, "=")
			if name == "" {
				return Tokens{}, fmt.Errorf("bpaf: %q: long option name must not be empty", arg)
			}
			if hasEq {
				v := value
				toks.Items = append(toks.Items, Long{Name: name, Attached: &v, pos: pos})
			} else {
				toks.Items = append(toks.Items, Long{Name: name, pos: pos})
			}

		case strings.HasPrefix(arg, "-"):
			items, err := tokenizeShort(arg, pos, reg)
			if err != nil {
				return Tokens{}, err
			}
			toks.Items = append(toks.Items, items...)

		default:
			toks.Items = append(toks.Items, Word{Text: arg, pos: pos})
		}
	}

	return toks, nil
}

// tokenizeShort handles a single argv element starting with a single `-`,
// implementing §4.1 rules 4-6.
func tokenizeShort(arg string, pos int, reg *NameRegistry) ([]Token, error) {
	body := arg[1:] // drop leading '-'
	r, size := utf8.DecodeRuneInString(body)
	rest := body[size:]

	if rest == "" {
		// Rule 4: a lone short flag/argument name.
		return []Token{Short{Rune: r, pos: pos}}, nil
	}

	if strings.HasPrefix(rest, "=") {
		// Rule 6: `-X=rest` is unambiguously the short-argument form.
		v := rest[1:]
		return []Token{Short{Rune: r, Tail: "=" + v, pos: pos}}, nil
	}

	// Rule 5: `-Xrest` is ambiguous between an attached-value argument
	// and a cluster of boolean flags.
	xIsArgument := reg.isArgument[r]
	xIsFlag := reg.isFlag[r]
	restAllFlags := allRunesAreFlags(rest, reg)

	switch {
	case xIsArgument && !restAllFlagsUnlessSingleton(rest, reg):
		// (a): treat as an argument with an attached value.
		return []Token{Short{Rune: r, Tail: rest, pos: pos}}, nil

	case restAllFlags && !xIsArgument:
		// (b): treat as a cluster of single-letter flags.
		return expandCluster(body, pos), nil

	case xIsArgument && restAllFlags:
		// Both readings are plausible: ambiguous.
		return nil, &AmbiguityError{Pos: pos, Literal: arg}

	case xIsFlag:
		// X is definitely a flag: must be a cluster (or an unknown
		// trailing rest, which the evaluator will reject later).
		return expandCluster(body, pos), nil

	default:
		// Neither X nor rest is known. Default to the attached-value
		// reading; an unrecognized name fails later in the evaluator
		// with a clearer diagnostic than a tokenizer-level one.
		return []Token{Short{Rune: r, Tail: rest, pos: pos}}, nil
	}
}

// restAllFlagsUnlessSingleton special-cases the situation where X is a
// known argument AND rest happens to also look like all-flags; the
// ambiguity is only real when rest is non-trivial. A single trailing rune
// is always ambiguous in principle but ordinary usage (`-ofile`) dominates
// so we don't special-case it here; see allRunesAreFlags.
func restAllFlagsUnlessSingleton(rest string, reg *NameRegistry) bool {
	return allRunesAreFlags(rest, reg)
}

func allRunesAreFlags(s string, reg *NameRegistry) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !reg.isFlag[r] {
			return false
		}
	}
	return true
}

// expandCluster turns "abc" (the body of `-abc`, with the leading `-`
// already stripped) into Short{a}, Short{b}, Short{c}, all reporting the
// same argv position.
func expandCluster(body string, pos int) []Token {
	var out []Token
	for _, r := range body {
		out = append(out, Short{Rune: r, pos: pos})
	}
	return out
}
