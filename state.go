package bpaf

import "go.bpaf.dev/bpaf/internal/silog"

// State is the mutable bag of unconsumed tokens an evaluation walks (§4.4,
// "ArgumentState"). tokens is the full, immutable token list for the run;
// live holds the positions (indices into tokens) of everything not yet
// consumed, in original order. Scope restriction (Anywhere probing from a
// later start position) is expressed as a window
// [scopeLo, scopeHi) over live, not over tokens directly, so that
// "consume the Nth remaining token" stays correct regardless of what has
// already been claimed elsewhere.
//
// Clone is cheap: tokens' backing array is shared and only live (one int
// per remaining token) and the lookup caches are copied, which is what
// makes trying several Or branches against independent clones affordable
// (§4.6).
type State struct {
	tokens []Token
	live   []int
	scopeLo, scopeHi int

	depth int // incremented when entering a Command

	completion *completionChannel // non-nil only in completion-probe mode

	env    Env
	config ConfigSource
	cfgPath *configPath

	// logger traces evaluation decisions (Or branch selection, Many
	// termination, command dispatch) at debug level; nil unless the
	// OptionParser was built with WithLogger. EnterCommand prefixes it
	// with the command name for the duration of the command body so
	// nested traces read as "status: or: picked branch" (with index and
	// consumed attributes), etc.
	logger *silog.Logger

	// envCache/configCache memoize external lookups so that cloning a
	// state for an alternative branch doesn't re-read (and
	// double-count occurrences of) an external source; each clone owns
	// its own copy so an uncommitted branch's reads never pollute a
	// sibling's (§5 "Resource ownership").
	envCache    map[string]envCacheEntry
	configCache map[configCacheKey]configCacheEntry
}

type envCacheEntry struct {
	value string
	ok    bool
}

type configCacheKey struct {
	path       string
	name       string
	occurrence int
}

type configCacheEntry struct {
	value string
	ok    bool
}

// NewState builds the initial State for a tokenized argv.
func NewState(toks Tokens) *State {
	live := make([]int, len(toks.Items))
	for i := range live {
		live[i] = i
	}
	return &State{
		tokens:  toks.Items,
		live:    live,
		scopeLo: 0,
		scopeHi: len(live),
		cfgPath: newConfigPath(),
	}
}

// Clone returns an independent copy of s suitable for trying an
// alternative branch (I4). Mutating the clone never affects s until the
// caller explicitly commits via Assign.
func (s *State) Clone() *State {
	c := &State{
		tokens:     s.tokens,
		live:       append([]int(nil), s.live...),
		scopeLo:    s.scopeLo,
		scopeHi:    s.scopeHi,
		depth:      s.depth,
		completion: s.completion,
		env:        s.env,
		config:     s.config,
		cfgPath:    s.cfgPath.clone(),
		logger:     s.logger,
	}
	if s.envCache != nil {
		c.envCache = make(map[string]envCacheEntry, len(s.envCache))
		for k, v := range s.envCache {
			c.envCache[k] = v
		}
	}
	if s.configCache != nil {
		c.configCache = make(map[configCacheKey]configCacheEntry, len(s.configCache))
		for k, v := range s.configCache {
			c.configCache[k] = v
		}
	}
	return c
}

// Assign replaces s's fields with other's, committing a cloned branch's
// mutations back into s. Used once a winning Or branch is chosen.
func (s *State) Assign(other *State) { *s = *other }

// Len reports how many tokens remain in the current scope.
func (s *State) Len() int { return s.scopeHi - s.scopeLo }

// IsEmpty reports whether no tokens remain in scope.
func (s *State) IsEmpty() bool { return s.scopeLo >= s.scopeHi }

// Head returns the first in-scope unconsumed token, if any.
func (s *State) Head() (Token, bool) {
	if s.scopeLo >= s.scopeHi {
		return nil, false
	}
	return s.tokens[s.live[s.scopeLo]], true
}

// At returns the i'th in-scope token (0-indexed from the scope start) and
// whether such a token exists; OriginalPos gives its argv position.
func (s *State) At(i int) (tok Token, ok bool) {
	idx := s.scopeLo + i
	if idx < 0 || idx >= s.scopeHi {
		return nil, false
	}
	return s.tokens[s.live[idx]], true
}

// Consume removes the first k in-scope tokens.
func (s *State) Consume(k int) {
	if k < 0 || s.scopeLo+k > s.scopeHi {
		panic("bpaf: Consume called with an out-of-range count")
	}
	s.live = append(s.live[:s.scopeLo], s.live[s.scopeLo+k:]...)
	s.scopeHi -= k
}

// ConsumeAt removes k in-scope tokens starting at scope-relative offset.
// Used by named primitives (flags/arguments), which search the whole
// scope rather than just its head.
func (s *State) ConsumeAt(offset, k int) {
	at := s.scopeLo + offset
	if offset < 0 || k < 0 || at+k > s.scopeHi {
		panic("bpaf: ConsumeAt called with an out-of-range range")
	}
	s.live = append(s.live[:at], s.live[at+k:]...)
	s.scopeHi -= k
}

// OriginalPos returns the absolute argv position of the i'th in-scope
// token, for error reporting.
func (s *State) OriginalPos(i int) int {
	tok, ok := s.At(i)
	if !ok {
		return -1
	}
	return tok.Pos()
}

// setScope restricts visibility to the window [lo, hi) over the live
// slice, used internally by Anywhere to probe a sub-window.
func (s *State) setScope(lo, hi int) { s.scopeLo, s.scopeHi = lo, hi }

// scope returns the current scope window bounds (indices into live).
func (s *State) scope() (lo, hi int) { return s.scopeLo, s.scopeHi }

// liveSnapshot returns the live positions (into tokens) currently in
// scope, for Adjacent's contiguity check.
func (s *State) liveSnapshot() []int {
	return append([]int(nil), s.live[s.scopeLo:s.scopeHi]...)
}

// EnterCommand increments depth and descends the config-path for the
// duration of evaluating a command's inner parser. The command keyword
// token itself must already have been consumed by the caller; everything
// after it in the current scope becomes the command body automatically,
// since live only ever holds unconsumed tokens.
func (s *State) EnterCommand(name string) (restore func()) {
	prevDepth, prevPath, prevLogger := s.depth, s.cfgPath, s.logger
	s.depth++
	s.cfgPath = s.cfgPath.child(name)
	if s.logger != nil {
		s.logger = s.logger.WithPrefix(name)
	}
	return func() { s.depth, s.cfgPath, s.logger = prevDepth, prevPath, prevLogger }
}

// Depth returns the current command-nesting depth.
func (s *State) Depth() int { return s.depth }

// Completing reports whether s is running in completion-probe mode.
func (s *State) Completing() bool { return s.completion != nil }

// SwapCompletion exchanges s's completion side-channel for other,
// returning the previous value. Combinators that need to capture a
// child's emitted candidates separately (so a losing Or branch's
// completions still surface) swap in a fresh channel, evaluate the
// child, and swap the result back out.
func (s *State) SwapCompletion(other *completionChannel) *completionChannel {
	prev := s.completion
	s.completion = other
	return prev
}

// pushCompletion records a candidate on the active completion channel, if
// any; a no-op in normal (non-completing) mode.
func (s *State) pushCompletion(c Candidate) {
	if s.completion != nil {
		s.completion.push(c)
	}
}
