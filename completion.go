package bpaf

import (
	"sort"
	"strings"

	"github.com/buildkite/shellwords"

	"go.bpaf.dev/bpaf/internal/maputil"
	"go.bpaf.dev/bpaf/internal/sliceutil"
)

// Candidate is one suggestion surfaced by Complete (§4.13 "Completion
// Mode"). Substitution is what actually gets spliced onto the command
// line; Display and Description are what a shell's completion menu shows
// a human, and may differ from Substitution (e.g. a branch name with a
// description of the commit it points at).
type Candidate struct {
	Substitution string
	Display      string
	Description  string
	Group        string
}

// completionChannel is the side-channel threaded through a State running
// in completion-probe mode (§9 "dry evaluation"): primitives that would
// normally just fail to match instead record what they would have
// accepted, and evaluation is allowed to run to completion (or failure)
// without that failure being user-visible.
type completionChannel struct {
	collected []Candidate
}

func (c *completionChannel) push(item Candidate) {
	c.collected = append(c.collected, item)
}

// Predictor supplies dynamic completions for an Argument or Positional's
// value, given whatever prefix the user has typed so far (§4.13
// "Predictor"). Predictors are registered by name and referenced from a
// NamedBuilder/PositionalBuilder so that Meta stays plain data.
type Predictor func(prefix string) []Candidate

var predictorRegistry = map[string]Predictor{}

// RegisterPredictor makes fn available to any primitive whose Predictor
// name matches. Typically called from an init func in the program
// assembling the parser.
func RegisterPredictor(name string, fn Predictor) {
	predictorRegistry[name] = fn
}

func lookupPredictor(name string) (Predictor, bool) {
	if name == "" {
		return nil, false
	}
	fn, ok := predictorRegistry[name]
	return fn, ok
}

// RegisteredPredictorNames returns every name passed to RegisterPredictor
// so far, sorted. Mainly useful for diagnosing a Predictor name typo in a
// NamedBuilder/PositionalBuilder that doesn't match anything registered.
func RegisteredPredictorNames() []string {
	names := maputil.Keys(predictorRegistry)
	sort.Strings(names)
	return names
}

// Complete runs p in completion-probe mode against args and returns every
// Candidate the parse tree offered. The last element of args is treated
// as the (possibly empty) word being completed; everything before it is
// parsed normally so that completions can depend on context (e.g. a
// command's own flags only show up once that command's name has been
// matched).
func Complete[T any](p Parser[T], args []string) []Candidate {
	reg := NewNameRegistry(p.Meta())
	toks, err := Tokenize(args, reg)
	if err != nil {
		// Even a malformed partial line should still offer something;
		// fall back to treating the raw args as opaque words.
		toks = Tokens{DashDashAt: -1}
		for i, a := range args {
			toks.Items = append(toks.Items, Word{Text: a, pos: i})
		}
	}

	st := NewState(toks)
	ch := &completionChannel{}
	st.completion = ch
	_, _ = p.eval(st)
	return dedupCandidates(ch.collected)
}

// CompleteLine is Complete for a shell completion hook that only has the
// raw command line text (e.g. $COMP_LINE) rather than an already-split
// argv. It splits line with shell word-splitting rules so quoting inside
// the partial line is handled the way the user's shell would handle it,
// then delegates to Complete. A trailing space in line means the user has
// finished a word and is starting a new one, so an empty trailing argument
// is appended to keep that distinction visible to Complete.
func CompleteLine[T any](p Parser[T], line string) []Candidate {
	args, err := shellwords.Split(line)
	if err != nil {
		args = strings.Fields(line)
	}
	if strings.HasSuffix(line, " ") {
		args = append(args, "")
	}
	return Complete(p, args)
}

func dedupCandidates(cs []Candidate) []Candidate {
	seen := make(map[string]bool, len(cs))
	return sliceutil.RemoveFunc(cs, func(c Candidate) bool {
		if seen[c.Substitution] {
			return true
		}
		seen[c.Substitution] = true
		return false
	})
}

// lastWordPrefix returns the text of the trailing in-scope token, if it
// looks like the partial word a shell would be asking us to complete
// (i.e. it hasn't matched anything yet), along with whether one exists.
func lastWordPrefix(s *State) (string, bool) {
	if s.IsEmpty() {
		return "", false
	}
	tok, _ := s.At(s.Len() - 1)
	switch t := tok.(type) {
	case Word:
		return t.Text, true
	case PosWord:
		return t.Text, true
	case Long:
		if t.Attached == nil {
			return "--" + t.Name, true
		}
	case Short:
		if !t.HasTail() {
			return "-" + string(t.Rune), true
		}
	}
	return "", false
}

// completeNames pushes a Candidate for every name in ns whose rendered
// form has the in-progress word as a prefix. Called by named primitives
// while Completing.
func completeNames(s *State, ns Names, help string) {
	prefix, ok := lastWordPrefix(s)
	if !ok {
		prefix = ""
	}
	for _, n := range ns {
		rendered := n.Render()
		if strings.HasPrefix(rendered, prefix) {
			s.pushCompletion(Candidate{Substitution: rendered, Display: rendered, Description: help})
		}
	}
}

// completeValue consults a registered predictor (if any) for an
// Argument/Positional's value, using whatever partial word is pending.
func completeValue(s *State, predictorName string) {
	fn, ok := lookupPredictor(predictorName)
	if !ok {
		return
	}
	prefix, _ := lastWordPrefix(s)
	for _, c := range fn(prefix) {
		s.pushCompletion(c)
	}
}

// completeCommand pushes a Candidate for a command name/alias whose
// spelling has the in-progress word as a prefix.
func completeCommand(s *State, name string, aliases []string, help string) {
	prefix, ok := lastWordPrefix(s)
	if !ok {
		prefix = ""
	}
	if strings.HasPrefix(name, prefix) {
		s.pushCompletion(Candidate{Substitution: name, Display: name, Description: help})
	}
	for _, a := range aliases {
		if strings.HasPrefix(a, prefix) {
			s.pushCompletion(Candidate{Substitution: a, Display: a, Description: help})
		}
	}
}
