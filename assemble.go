package koine

import "fmt"

// pass is the per-sentence state of one analysis run: the entity arena, the
// diagnostics accumulated so far, and (after resolution) one candidate per
// entity. A pass is private to one goroutine; passes share only the
// read-only store.
type pass struct {
	a        *Analyzer
	arena    *Arena
	diags    []Diagnostic
	resolved []Candidate
	edges    []DependencyEdge
}

func newPass(a *Analyzer) *pass {
	return &pass{a: a, arena: NewArena()}
}

func (p *pass) diag(kind DiagnosticKind, sev Severity, ent EntityID, msg string) {
	span := Span{}
	if int(ent) < p.arena.Len() {
		span = p.arena.Span(ent)
	}
	p.diags = append(p.diags, Diagnostic{
		Kind:     kind,
		Severity: sev,
		Entity:   ent,
		Span:     span,
		Message:  msg,
	})
}

// lex returns the lexeme behind a candidate, nil for the implicit subject.
func (p *pass) lex(id LemmaID) *Lexeme {
	if id == NoLemma {
		return nil
	}
	return p.a.store.Lexeme(id)
}

// candPOS returns the part of speech of one candidate.
func (p *pass) candPOS(c Candidate) PartOfSpeech {
	if lex := p.lex(c.Lemma); lex != nil {
		return lex.POS
	}
	return POSUnknown
}

// hasPOS reports whether any candidate of the entity belongs to pos.
func (p *pass) hasPOS(id EntityID, pos PartOfSpeech) bool {
	for _, c := range p.arena.Candidates(id) {
		if p.candPOS(c) == pos {
			return true
		}
	}
	return false
}

// nominalEntity reports whether the entity can head or fill a noun-phrase
// slot. Unknown entities count: they are wildcards.
func (p *pass) nominalEntity(id EntityID) bool {
	if p.arena.Unknown(id) {
		return true
	}
	for _, c := range p.arena.Candidates(id) {
		if p.candPOS(c).nominal() {
			return true
		}
	}
	return false
}

// finiteVerbEntity reports whether any candidate is a finite verb form.
func (p *pass) finiteVerbEntity(id EntityID) bool {
	for _, c := range p.arena.Candidates(id) {
		if p.candPOS(c) == POSVerb && c.Tags.Finite() {
			return true
		}
	}
	return false
}

// assemble builds one entity per token whose initial candidate set is the
// analyzer output. A token with zero candidates becomes an Unknown wildcard
// entity; it is diagnosed but never blocks the rest of the sentence.
func (p *pass) assemble(tokens []Token) {
	for _, t := range tokens {
		cands := p.a.store.Analyze(t.Text)
		id := p.arena.Add(t.Text, Span{Start: t.Start, End: t.End}, cands)
		if len(cands) == 0 {
			p.diag(LookupMiss, SeverityWarning, id, fmt.Sprintf("unknown word %q", t.Text))
		}
	}
	p.pruneLexicalClass()
	p.arena.Snapshot()
}

// pruneLexicalClass resolves the article/clitic homography (τον, την, το,
// τους, τις, τα, με, σε) positionally before propagation: before a nominal
// the form reads as an article or preposition, next to a verb as a weak
// pronoun. This mirrors how the forms actually distribute and keeps the
// constraint graph from linking a clitic to a noun it can never modify.
func (p *pass) pruneLexicalClass() {
	n := p.arena.Len()
	for i := 0; i < n; i++ {
		cands := p.arena.Candidates(EntityID(i))
		var clitic, other bool
		for _, c := range cands {
			if lex := p.lex(c.Lemma); lex != nil && lex.Clitic {
				clitic = true
			} else {
				other = true
			}
		}
		if !clitic || !other {
			continue
		}
		nominalNext := i+1 < n && p.nominalEntity(EntityID(i+1)) && !p.finiteVerbEntity(EntityID(i+1))
		keep := cands[:0:0]
		for _, c := range cands {
			isClitic := false
			if lex := p.lex(c.Lemma); lex != nil && lex.Clitic {
				isClitic = true
			}
			if isClitic != nominalNext {
				keep = append(keep, c)
			}
		}
		if len(keep) > 0 {
			p.arena.SetCandidates(EntityID(i), keep)
		}
	}
}
