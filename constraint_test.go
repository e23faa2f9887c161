package koine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Propagation only ever shrinks candidate sets.
func TestPropagationMonotonic(t *testing.T) {
	a := newTestAnalyzer(t)
	for _, sentence := range []string{
		"Οι άνθρωπος γράφει το βιβλίο.",
		"Εγώ διαβάζω το βιβλίο.",
		"Θέλω να γράψω.",
		"Τρέχω από εγώ.",
	} {
		p := newPass(a)
		p.assemble(Tokenize(sentence))

		before := make([]int, p.arena.Len())
		for i := range before {
			before[i] = len(p.arena.Candidates(EntityID(i)))
		}
		p.propagate()
		for i := range before {
			assert.LessOrEqual(t, len(p.arena.Candidates(EntityID(i))), before[i],
				"%s: candidate set of entity %d grew", sentence, i)
		}
	}
}

// Re-running propagation over already-singleton candidate sets changes
// nothing and emits nothing.
func TestPropagationIdempotentOnResolved(t *testing.T) {
	a := newTestAnalyzer(t)
	p := newPass(a)
	p.assemble(Tokenize("Ο άνθρωπος γράφει."))
	p.propagate()
	p.resolve()

	for i := 0; i < p.arena.Len(); i++ {
		p.arena.SetCandidates(EntityID(i), []Candidate{p.resolved[i]})
	}
	var before [][]Candidate
	for i := 0; i < p.arena.Len(); i++ {
		before = append(before, append([]Candidate(nil), p.arena.Candidates(EntityID(i))...))
	}
	diags := len(p.diags)

	p.propagate()

	assert.Equal(t, diags, len(p.diags), "second propagation emitted diagnostics")
	for i := range before {
		if diff := cmp.Diff(before[i], p.arena.Candidates(EntityID(i))); diff != "" {
			t.Errorf("entity %d changed on second propagation:\n%s", i, diff)
		}
	}
}
