package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArgumentConfigFallbackWithMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := NewMockConfigSource(ctrl)
	cfg.EXPECT().Lookup("", "remote", 0).Return("origin", true)

	p := ArgumentString(Long("remote"), "REMOTE")
	st := NewState(tok(t))
	st.config = cfg

	v, err := p.eval(st)
	require.NoError(t, err)
	assert.Equal(t, "origin", v)
}

func TestArgumentConfigFallbackMockMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := NewMockConfigSource(ctrl)
	cfg.EXPECT().Lookup("", "remote", 0).Return("", false)

	p := ArgumentString(Long("remote"), "REMOTE")
	st := NewState(tok(t))
	st.config = cfg

	_, err := p.eval(st)
	require.Error(t, err)
	assert.True(t, err.catchable())
}
