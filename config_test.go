package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapConfig map[string]string

func (m mapConfig) Lookup(path, name string, occurrence int) (string, bool) {
	v, ok := m[path+"."+name]
	return v, ok
}

func TestArgumentConfigFallback(t *testing.T) {
	p := ArgumentString(Long("remote"), "REMOTE")
	op := New(p, WithConfig[string](mapConfig{".remote": "origin"}))

	v, err := op.RunInner(nil)
	assert.NoError(t, err)
	assert.Equal(t, "origin", v)
}

func TestConfigPathDescendsIntoCommand(t *testing.T) {
	cfg := mapConfig{"push.remote": "upstream"}
	cmd := Command("push", ArgumentString(Long("remote"), "REMOTE"))
	op := New[string](cmd, WithConfig[string](cfg))

	v, err := op.RunInner([]string{"push"})
	assert.NoError(t, err)
	assert.Equal(t, "upstream", v)
}

func TestConfigOccurrenceAdvancesPerLookup(t *testing.T) {
	p := &configPath{counts: map[string]int{}}
	assert.Equal(t, 0, p.next("x"))
	assert.Equal(t, 1, p.next("x"))
	assert.Equal(t, 0, p.next("y"))
}

func TestConfigPathChildAppendsSegment(t *testing.T) {
	p := newConfigPath().child("remote").child("add")
	assert.Equal(t, "remote.add", p.String())
}
