package bpaf

//go:generate mockgen -destination mocks_test.go -package bpaf -typed . ConfigSource

// ConfigSource is the optional structured-configuration fallback a named
// primitive can be wired to in addition to argv and Env (§6 "Config
// fallback"). path is the dotted path to the command the primitive
// belongs to (e.g. "remote.add" for a nested command), name is the
// primitive's configuration key, and occurrence lets a config source
// that models repeated values (an array, say) hand back the Nth one on
// the Nth lookup within the same command path.
type ConfigSource interface {
	Lookup(path, name string, occurrence int) (value string, ok bool)
}

// lookupConfig consults s's ConfigSource for name at s's current command
// path, memoizing per (path, name, occurrence) for the same reason
// lookupEnv does: cloned Or branches must not double-count or diverge on
// what a shared external source returns. Each call advances the
// occurrence counter for (path, name), so a primitive evaluated more than
// once (inside a Many, say) walks forward through successive configured
// values instead of repeating the first.
func (s *State) lookupConfig(name string) (string, bool) {
	if s.config == nil {
		return "", false
	}
	path := s.cfgPath.String()
	occurrence := s.cfgPath.next(name)
	key := configCacheKey{path: path, name: name, occurrence: occurrence}
	if s.configCache == nil {
		s.configCache = make(map[configCacheKey]configCacheEntry)
	}
	if e, ok := s.configCache[key]; ok {
		return e.value, e.ok
	}
	v, ok := s.config.Lookup(path, name, occurrence)
	s.configCache[key] = configCacheEntry{value: v, ok: ok}
	return v, ok
}

// configPath tracks the dotted command path lookupConfig needs, alongside
// an occurrence counter per (path, name) pair so repeated lookups of the
// same key within one command body advance through successive values
// instead of always returning the first.
type configPath struct {
	segments []string
	counts   map[string]int
}

func newConfigPath() *configPath { return &configPath{counts: map[string]int{}} }

func (p *configPath) child(name string) *configPath {
	return &configPath{segments: append(append([]string(nil), p.segments...), name), counts: map[string]int{}}
}

// clone returns an independent copy so that cloning a State for an
// alternative Or branch doesn't let that branch's occurrence counting
// leak back into its sibling.
func (p *configPath) clone() *configPath {
	counts := make(map[string]int, len(p.counts))
	for k, v := range p.counts {
		counts[k] = v
	}
	return &configPath{segments: append([]string(nil), p.segments...), counts: counts}
}

func (p *configPath) String() string {
	out := ""
	for i, s := range p.segments {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

func (p *configPath) next(name string) int {
	n := p.counts[name]
	p.counts[name] = n + 1
	return n
}
