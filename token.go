package bpaf

// Token is a normalized argument item produced by the tokenizer (§4.1).
// Exactly one of the concrete types below is stored per command-line item,
// except that a single `-abc` cluster unfolds into several Short tokens at
// tokenization time.
type Token interface {
	isToken()
	// Pos is the index of the raw os.Args element this token was derived
	// from. Several tokens (an unfolded short cluster) may share a Pos.
	Pos() int
}

// Short is `-X` or `-Xtail`, where tail is either empty, an attached
// argument value (`-ofile`), or `=value` for the `-X=value` spelling. A
// cluster of flags (`-vvv`) is unfolded into separate tail-less Shorts.
type Short struct {
	Rune rune
	Tail string // "" if nothing follows
	pos  int
}

func (Short) isToken()    {}
func (s Short) Pos() int  { return s.pos }
func (s Short) HasTail() bool { return s.Tail != "" }

// Long is `--name` or `--name=value`.
type Long struct {
	Name     string
	Attached *string // nil unless the token was `--name=value`
	pos      int
}

func (Long) isToken()   {}
func (l Long) Pos() int { return l.pos }

// Word is a bare token: not prefixed with `-`, or any token (including one
// that looks like a flag) following the `--` sentinel is instead a
// PosWord. Word preserves the raw OS-string bytes losslessly; only a
// parser that requires text may fail on non-UTF-8 input.
type Word struct {
	Text string
	pos  int
}

func (Word) isToken()   {}
func (w Word) Pos() int { return w.pos }

// PosWord is identical to Word but is flagged as strictly positional,
// because it appeared after the `--` sentinel (or after positional mode
// was otherwise toggled on). A Positional built with Strict accepts only
// PosWord; a plain Positional accepts both Word and PosWord.
type PosWord struct {
	Text string
	pos  int
}

func (PosWord) isToken() {}
func (w PosWord) Pos() int { return w.pos }

// tokenLiteral reconstructs a token's command-line spelling, for
// diagnostics that need to show the user the exact text they typed.
func tokenLiteral(tok Token) string {
	switch t := tok.(type) {
	case Short:
		if t.Tail == "" {
			return "-" + string(t.Rune)
		}
		return "-" + string(t.Rune) + t.Tail
	case Long:
		if t.Attached == nil {
			return "--" + t.Name
		}
		return "--" + t.Name + "=" + *t.Attached
	case Word:
		return t.Text
	case PosWord:
		return t.Text
	default:
		return ""
	}
}

// Tokens is the result of tokenizing argv: an ordered token list plus the
// index (into the original argv, not into Items) of the first `--`
// sentinel, or -1 if none was seen.
type Tokens struct {
	Items      []Token
	DashDashAt int // -1 if no `--` was present
}
