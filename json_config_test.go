package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

// jsonConfigSource is a second test-only ConfigSource, backed by raw JSON
// text instead of a parsed tree. gjson's dotted path queries line up
// exactly with the dotted command path lookupConfig already builds, so
// the adapter is just string concatenation plus a gjson.Get call.
type jsonConfigSource struct {
	json string
}

func (c jsonConfigSource) Lookup(path, name string, occurrence int) (string, bool) {
	key := name
	if path != "" {
		key = path + "." + name
	}
	res := gjson.Get(c.json, key)
	if !res.Exists() {
		return "", false
	}
	if res.IsArray() {
		items := res.Array()
		if occurrence >= len(items) {
			return "", false
		}
		return items[occurrence].String(), true
	}
	return res.String(), true
}

func TestJSONConfigSourceTopLevel(t *testing.T) {
	cfg := jsonConfigSource{json: `{"remote": "origin"}`}
	p := ArgumentString(Long("remote"), "REMOTE")
	op := New(p, WithConfig[string](cfg))

	v, err := op.RunInner(nil)
	assert.NoError(t, err)
	assert.Equal(t, "origin", v)
}

func TestJSONConfigSourceNestedUnderCommand(t *testing.T) {
	cfg := jsonConfigSource{json: `{"push": {"remote": "upstream"}}`}
	cmd := Command("push", ArgumentString(Long("remote"), "REMOTE"))
	op := New[string](cmd, WithConfig[string](cfg))

	v, err := op.RunInner([]string{"push"})
	assert.NoError(t, err)
	assert.Equal(t, "upstream", v)
}

func TestJSONConfigSourceArrayOccurrence(t *testing.T) {
	cfg := jsonConfigSource{json: `{"reviewer": ["alice", "bob"]}`}
	inner := ArgumentString(Long("reviewer"), "NAME")
	st := NewState(tok(t))
	st.config = cfg

	first, err := inner.eval(st)
	assert.NoError(t, err)
	assert.Equal(t, "alice", first)

	second, err := inner.eval(st)
	assert.NoError(t, err)
	assert.Equal(t, "bob", second)
}
