package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// yamlConfigSource is a test-only ConfigSource backed by a parsed YAML
// document, standing in for the kind of structured config file a real
// program would wire through WithConfig. Nesting mirrors the dotted
// command path: "push.remote" looks up doc["push"]["remote"].
type yamlConfigSource struct {
	doc map[string]any
}

func newYAMLConfigSource(t *testing.T, text string) *yamlConfigSource {
	t.Helper()
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	return &yamlConfigSource{doc: doc}
}

func (c *yamlConfigSource) Lookup(path, name string, occurrence int) (string, bool) {
	node := c.doc
	if path != "" {
		for _, seg := range splitPath(path) {
			child, ok := node[seg].(map[string]any)
			if !ok {
				return "", false
			}
			node = child
		}
	}
	v, ok := node[name]
	if !ok {
		return "", false
	}
	if list, isList := v.([]any); isList {
		if occurrence >= len(list) {
			return "", false
		}
		v = list[occurrence]
	}
	s, ok := v.(string)
	return s, ok
}

func splitPath(path string) []string {
	var out []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			out = append(out, path[start:i])
			start = i + 1
		}
	}
	return append(out, path[start:])
}

func TestYAMLConfigSourceTopLevel(t *testing.T) {
	cfg := newYAMLConfigSource(t, "remote: origin\n")
	p := ArgumentString(Long("remote"), "REMOTE")
	op := New(p, WithConfig[string](cfg))

	v, err := op.RunInner(nil)
	assert.NoError(t, err)
	assert.Equal(t, "origin", v)
}

func TestYAMLConfigSourceNestedUnderCommand(t *testing.T) {
	cfg := newYAMLConfigSource(t, "push:\n  remote: upstream\n")
	cmd := Command("push", ArgumentString(Long("remote"), "REMOTE"))
	op := New[string](cmd, WithConfig[string](cfg))

	v, err := op.RunInner([]string{"push"})
	assert.NoError(t, err)
	assert.Equal(t, "upstream", v)
}

func TestYAMLConfigSourceRepeatedValuesAdvance(t *testing.T) {
	cfg := newYAMLConfigSource(t, "reviewer:\n  - alice\n  - bob\n")

	// argv is empty, so each call falls through to config; we evaluate
	// the primitive directly a few times against the same state to walk
	// the configured list one occurrence at a time.
	st := NewState(tok(t))
	st.config = cfg
	inner := ArgumentString(Long("reviewer"), "NAME")

	first, err := inner.eval(st)
	require.NoError(t, err)
	assert.Equal(t, "alice", first)

	second, err := inner.eval(st)
	require.NoError(t, err)
	assert.Equal(t, "bob", second)
}
