package koine

// NoLemma marks a candidate that does not correspond to a dictionary entry
// (the synthesized implicit subject).
const NoLemma = ^LemmaID(0)

// Span is a half-open byte range into the analyzed text.
type Span struct {
	Start int
	End   int
}

// Arena holds the per-sentence entity state as parallel slices indexed by
// EntityID (structure-of-arrays). It lives for one analysis pass, is mutated
// in place by constraint propagation, and is read-only for the dependency
// resolver. Reset makes it reusable across passes.
type Arena struct {
	texts    []string
	spans    []Span
	cands    [][]Candidate
	saved    [][]Candidate
	implicit []bool
	unknown  []bool
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// Reset clears the arena for reuse without releasing its backing storage.
func (a *Arena) Reset() {
	a.texts = a.texts[:0]
	a.spans = a.spans[:0]
	a.cands = a.cands[:0]
	a.saved = a.saved[:0]
	a.implicit = a.implicit[:0]
	a.unknown = a.unknown[:0]
}

// Len returns the number of entities.
func (a *Arena) Len() int { return len(a.texts) }

// Add creates an entity for a token with its initial candidate set and
// returns its id. An empty candidate set marks the entity unknown; unknown
// entities act as wildcards during propagation.
func (a *Arena) Add(text string, span Span, cands []Candidate) EntityID {
	id := EntityID(len(a.texts))
	a.texts = append(a.texts, text)
	a.spans = append(a.spans, span)
	a.cands = append(a.cands, cands)
	a.saved = append(a.saved, nil)
	a.implicit = append(a.implicit, false)
	a.unknown = append(a.unknown, len(cands) == 0)
	return id
}

// AddImplicit creates the implicit-subject marker entity carrying the verb's
// person and number. It has no surface text; its span points at the verb.
func (a *Arena) AddImplicit(tags TagSet, span Span) EntityID {
	id := a.Add("", span, []Candidate{{Lemma: NoLemma, Tags: tags}})
	a.implicit[id] = true
	a.unknown[id] = false
	return id
}

// Text returns the surface text of entity id.
func (a *Arena) Text(id EntityID) string { return a.texts[id] }

// Span returns the byte span of entity id.
func (a *Arena) Span(id EntityID) Span { return a.spans[id] }

// Candidates returns the current candidate set of entity id.
func (a *Arena) Candidates(id EntityID) []Candidate { return a.cands[id] }

// SetCandidates replaces the candidate set of entity id. Propagation only
// ever shrinks sets; growth would break the termination argument.
func (a *Arena) SetCandidates(id EntityID, cs []Candidate) { a.cands[id] = cs }

// Unknown reports whether entity id had no analyzer candidates.
func (a *Arena) Unknown(id EntityID) bool { return a.unknown[id] }

// Implicit reports whether entity id is the synthesized implicit subject.
func (a *Arena) Implicit(id EntityID) bool { return a.implicit[id] }

// Snapshot saves every candidate set so a later wipeout can be rolled back.
func (a *Arena) Snapshot() {
	for i := range a.cands {
		a.saved[i] = append(a.saved[i][:0], a.cands[i]...)
	}
}

// Restore rolls entity id back to its snapshotted candidate set.
func (a *Arena) Restore(id EntityID) {
	a.cands[id] = append(a.cands[id][:0], a.saved[id]...)
}
