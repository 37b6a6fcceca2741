package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.bpaf.dev/bpaf/internal/random"
)

func TestCompleteNamesByPrefix(t *testing.T) {
	p := Switch(Long("verbose").Help("be chatty"))
	cands := Complete[bool](p, []string{"--ver"})
	assert.Len(t, cands, 1)
	assert.Equal(t, "--verbose", cands[0].Substitution)
}

func TestCompleteCommandByPrefix(t *testing.T) {
	p := Command("status", Switch(Long("short"))).Alias("st")
	cands := Complete[bool](p, []string{"sta"})
	assert.Len(t, cands, 1)
	assert.Equal(t, "status", cands[0].Substitution)
}

func TestCompleteValueUsesRegisteredPredictor(t *testing.T) {
	// predictorRegistry is package-global, so give this test its own name
	// rather than risk colliding with another test's "colors" fixture.
	name := "bpaf-test-" + random.Alnum(8)
	RegisterPredictor(name, func(prefix string) []Candidate {
		all := []string{"red", "green", "blue"}
		var out []Candidate
		for _, c := range all {
			if len(prefix) <= len(c) && c[:len(prefix)] == prefix {
				out = append(out, Candidate{Substitution: c, Display: c})
			}
		}
		return out
	})

	p := ArgumentString(Long("color").Predictor(name), "COLOR")
	cands := Complete[string](p, []string{"--color", "r"})
	assert.Len(t, cands, 1)
	assert.Equal(t, "red", cands[0].Substitution)

	assert.Contains(t, RegisteredPredictorNames(), name)
}

func TestCompleteDedupsCandidates(t *testing.T) {
	cands := dedupCandidates([]Candidate{
		{Substitution: "--verbose"},
		{Substitution: "--verbose"},
		{Substitution: "--version"},
	})
	assert.Len(t, cands, 2)
}
