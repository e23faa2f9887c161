package koine

import "fmt"

// constraintKind names the linguistic rule an edge enforces.
type constraintKind uint8

const (
	conDet   constraintKind = iota // article ↔ noun: case, gender, number
	conAmod                        // adjective ↔ noun: case, gender, number
	conNsubj                       // subject ↔ verb: person, number
	conGov                         // preposition ↔ complement: governed case
)

// constraint is one edge of the constraint graph. dep is the constraining
// side (article, adjective, subject, preposition), head the constrained one.
// A violated edge is deactivated instead of emptying an endpoint, so the
// sentence keeps a determinate analysis and the violation surfaces as a
// diagnostic.
type constraint struct {
	kind   constraintKind
	dep    EntityID
	head   EntityID
	active bool
}

// agreementMask returns the categories the constraint compares.
func (c constraint) agreementMask() TagSet {
	switch c.kind {
	case conDet, conAmod:
		return MaskCase | MaskGender | MaskNumber
	case conNsubj:
		return MaskPerson | MaskNumber
	case conGov:
		return MaskCase
	}
	return 0
}

// buildConstraints derives the constraint graph from part-of-speech
// adjacency: articles and adjectives bind the next nominal, prepositions
// govern their complement, nominative-capable nominals bind the nearest
// finite verb.
func (p *pass) buildConstraints() []constraint {
	n := p.arena.Len()
	var cons []constraint
	add := func(kind constraintKind, dep, head EntityID) {
		cons = append(cons, constraint{kind: kind, dep: dep, head: head, active: true})
	}

	for i := 0; i < n; i++ {
		id := EntityID(i)
		if p.arena.Unknown(id) {
			continue
		}
		if p.hasPOS(id, POSArticle) {
			if j := p.nextNominal(i + 1); j != NoEntity {
				add(conDet, id, j)
			}
		}
		if p.hasPOS(id, POSAdjective) {
			if j := p.nextPOS(i+1, POSNoun); j != NoEntity {
				add(conAmod, id, j)
			}
		}
		if p.hasPOS(id, POSPreposition) {
			if j := p.nextNominal(i + 1); j != NoEntity {
				add(conGov, id, j)
			}
		}
		if p.nominative(id) && p.nominalEntity(id) {
			if v := p.nearestFiniteVerb(i); v != NoEntity {
				add(conNsubj, id, v)
			}
		}
	}
	return cons
}

// nextNominal scans forward for the next nominal entity, stopping at a
// finite verb (an article or preposition never reaches across the verb).
func (p *pass) nextNominal(from int) EntityID {
	for j := from; j < p.arena.Len(); j++ {
		id := EntityID(j)
		if p.nominalEntity(id) && !p.finiteVerbEntity(id) {
			return id
		}
		if p.finiteVerbEntity(id) {
			return NoEntity
		}
	}
	return NoEntity
}

// nextPOS scans forward for the next entity with a candidate of pos,
// stopping at a finite verb.
func (p *pass) nextPOS(from int, pos PartOfSpeech) EntityID {
	for j := from; j < p.arena.Len(); j++ {
		id := EntityID(j)
		if p.hasPOS(id, pos) {
			return id
		}
		if p.finiteVerbEntity(id) {
			return NoEntity
		}
	}
	return NoEntity
}

// nominative reports whether any candidate carries nominative case.
func (p *pass) nominative(id EntityID) bool {
	for _, c := range p.arena.Candidates(id) {
		if c.Tags.Has(Nominative) {
			return true
		}
	}
	return false
}

// nearestFiniteVerb returns the closest finite-verb entity to position i,
// preferring the following one on a distance tie.
func (p *pass) nearestFiniteVerb(i int) EntityID {
	n := p.arena.Len()
	for d := 1; d < n; d++ {
		if j := i + d; j < n && p.finiteVerbEntity(EntityID(j)) {
			return EntityID(j)
		}
		if j := i - d; j >= 0 && p.finiteVerbEntity(EntityID(j)) {
			return EntityID(j)
		}
	}
	return NoEntity
}

// pairOK is the constraint predicate over one candidate pair. Candidates
// outside the rule's word class are vacuously supported: an edge built for
// the article reading of a form must not prune that form's other readings.
func (p *pass) pairOK(kind constraintKind, d, h Candidate) bool {
	switch kind {
	case conDet:
		if p.candPOS(d) != POSArticle {
			return true
		}
		if !p.candPOS(h).nominal() {
			return false
		}
		return d.Tags.AgreesOn(h.Tags, MaskCase|MaskGender|MaskNumber)
	case conAmod:
		if p.candPOS(d) != POSAdjective {
			return true
		}
		if p.candPOS(h) != POSNoun {
			return false
		}
		return d.Tags.AgreesOn(h.Tags, MaskCase|MaskGender|MaskNumber)
	case conGov:
		lex := p.lex(d.Lemma)
		if lex == nil || lex.POS != POSPreposition || lex.Governs == 0 {
			return true
		}
		if !p.candPOS(h).nominal() {
			return false
		}
		return h.Tags.Case() == 0 || h.Tags.Case() == lex.Governs
	case conNsubj:
		if !d.Tags.Has(Nominative) || !p.candPOS(d).nominal() {
			return true
		}
		if p.candPOS(h) != POSVerb || !h.Tags.Finite() {
			return true
		}
		dp := d.Tags.Person()
		if dp == 0 {
			dp = Third // bare nouns are third person
		}
		if hp := h.Tags.Person(); hp != 0 && hp != dp {
			return false
		}
		return d.Tags.AgreesOn(h.Tags, MaskNumber)
	}
	return true
}

// revise prunes one endpoint of c against the other. It returns true when
// the candidate set shrank. If pruning would empty the endpoint, the edge is
// reported as a violation and deactivated instead: rule violations are
// diagnostics, not dead ends.
func (p *pass) revise(c *constraint, pruneDep bool) bool {
	x, y := c.dep, c.head
	if !pruneDep {
		x, y = y, x
	}
	if p.arena.Unknown(x) || p.arena.Unknown(y) {
		return false
	}

	xs := p.arena.Candidates(x)
	ys := p.arena.Candidates(y)
	keep := xs[:0:0]
	for _, xc := range xs {
		for _, yc := range ys {
			dc, hc := xc, yc
			if !pruneDep {
				dc, hc = yc, xc
			}
			if p.pairOK(c.kind, dc, hc) {
				keep = append(keep, xc)
				break
			}
		}
	}
	if len(keep) == 0 {
		p.reportViolation(c)
		c.active = false
		return false
	}
	if len(keep) < len(xs) {
		p.arena.SetCandidates(x, keep)
		return true
	}
	return false
}

// categoryName labels a single-category mask for diagnostics.
func categoryName(mask TagSet) string {
	switch mask {
	case MaskCase:
		return "case"
	case MaskGender:
		return "gender"
	case MaskNumber:
		return "number"
	case MaskPerson:
		return "person"
	case MaskAspect:
		return "aspect"
	case MaskTime:
		return "time"
	case MaskVoice:
		return "voice"
	case MaskMood:
		return "mood"
	}
	return "feature"
}

// reportViolation emits the diagnostic for an unsatisfiable constraint,
// naming the first category on which the two candidate sets share no value.
func (p *pass) reportViolation(c *constraint) {
	var unionDep, unionHead TagSet
	for _, cd := range p.arena.Candidates(c.dep) {
		unionDep |= cd.Tags
	}
	for _, cd := range p.arena.Candidates(c.head) {
		unionHead |= cd.Tags
	}

	msg := fmt.Sprintf("%q cannot agree with %q", p.arena.Text(c.dep), p.arena.Text(c.head))
	for _, m := range categoryMasks {
		if m&c.agreementMask() == 0 {
			continue
		}
		a, b := unionDep&m, unionHead&m
		if a != 0 && b != 0 && a&b == 0 {
			msg = fmt.Sprintf("%s mismatch: %s vs %s", categoryName(m), a, b)
			break
		}
	}
	if c.kind == conGov {
		lexText := p.arena.Text(c.dep)
		msg = fmt.Sprintf("%q requires %s on its complement %q", lexText, unionDep&MaskCase, p.arena.Text(c.head))
		if lex := p.firstPrepLexeme(c.dep); lex != nil {
			msg = fmt.Sprintf("%q requires %s on its complement %q", lex.Text, lex.Governs, p.arena.Text(c.head))
		}
	}
	p.diag(AgreementViolation, SeverityError, c.dep, msg)
}

func (p *pass) firstPrepLexeme(id EntityID) *Lexeme {
	for _, c := range p.arena.Candidates(id) {
		if lex := p.lex(c.Lemma); lex != nil && lex.POS == POSPreposition {
			return lex
		}
	}
	return nil
}

// propagate runs the arc-consistency worklist to fixpoint, then applies the
// mood tie-break and, if that pruned anything, runs to fixpoint again.
// Termination: candidate sets are finite and only ever shrink.
func (p *pass) propagate() {
	cons := p.buildConstraints()
	touching := func(id EntityID) []int {
		var out []int
		for ci := range cons {
			if cons[ci].active && (cons[ci].dep == id || cons[ci].head == id) {
				out = append(out, ci)
			}
		}
		return out
	}

	runFixpoint := func() {
		work := make([]int, len(cons))
		for i := range cons {
			work[i] = i
		}
		queued := make([]bool, len(cons))
		for len(work) > 0 {
			ci := work[0]
			work = work[1:]
			queued[ci] = false
			c := &cons[ci]
			if !c.active {
				continue
			}
			for _, pruneDep := range []bool{true, false} {
				if !c.active {
					break
				}
				changed := p.revise(c, pruneDep)
				if !changed || !c.active {
					continue
				}
				shrunk := c.dep
				if !pruneDep {
					shrunk = c.head
				}
				for _, other := range touching(shrunk) {
					if other != ci && !queued[other] {
						queued[other] = true
						work = append(work, other)
					}
				}
			}
		}
	}

	runFixpoint()
	if p.moodTieBreak() {
		runFixpoint()
	}
}

// moodTieBreak resolves the indicative/subjunctive homography left by
// structural pruning: without a preceding να/ας the indicative reading wins,
// with one the subjunctive reading wins.
func (p *pass) moodTieBreak() bool {
	changed := false
	for i := 0; i < p.arena.Len(); i++ {
		id := EntityID(i)
		cands := p.arena.Candidates(id)
		var hasInd, hasSubj bool
		for _, c := range cands {
			if p.candPOS(c) != POSVerb {
				continue
			}
			switch c.Tags.Mood() {
			case Indicative:
				hasInd = true
			case Subjunctive:
				hasSubj = true
			}
		}
		if !hasInd || !hasSubj {
			continue
		}

		drop := Subjunctive
		if p.subjunctiveTriggerBefore(i) {
			drop = Indicative
		}
		keep := cands[:0:0]
		for _, c := range cands {
			if p.candPOS(c) == POSVerb && c.Tags.Mood() == drop {
				continue
			}
			keep = append(keep, c)
		}
		if len(keep) > 0 && len(keep) < len(cands) {
			p.arena.SetCandidates(id, keep)
			changed = true
		}
	}
	return changed
}

// subjunctiveTriggerBefore reports whether a particle requiring the
// subjunctive (να, ας) precedes position i.
func (p *pass) subjunctiveTriggerBefore(i int) bool {
	for j := i - 1; j >= 0; j-- {
		if p.finiteVerbEntity(EntityID(j)) {
			return false
		}
		for _, c := range p.arena.Candidates(EntityID(j)) {
			if lex := p.lex(c.Lemma); lex != nil && lex.RequiresMood == Subjunctive {
				return true
			}
		}
	}
	return false
}

// resolve collapses every entity to exactly one candidate. An entity whose
// set was somehow emptied is diagnosed, rolled back to its pre-propagation
// set, and resolved by the fixed priority order, so the pass always
// terminates with one TagSet per entity.
func (p *pass) resolve() {
	n := p.arena.Len()
	p.resolved = make([]Candidate, n)
	for i := 0; i < n; i++ {
		id := EntityID(i)
		cands := p.arena.Candidates(id)
		if len(cands) == 0 {
			if !p.arena.Unknown(id) {
				p.diag(AmbiguityUnresolved, SeverityWarning, id,
					fmt.Sprintf("no consistent reading of %q, falling back", p.arena.Text(id)))
				p.arena.Restore(id)
				cands = p.arena.Candidates(id)
			}
			if len(cands) == 0 {
				p.resolved[i] = Candidate{Lemma: NoLemma}
				continue
			}
		}
		p.resolved[i] = p.pick(cands)
	}
}

// pick applies the deterministic fallback order: highest lemma frequency
// first, then lowest lemma id, then analyzer emission order.
func (p *pass) pick(cands []Candidate) Candidate {
	freq := func(id LemmaID) int {
		if lex := p.lex(id); lex != nil {
			return lex.Freq
		}
		return 0
	}
	best := cands[0]
	bestFreq := freq(best.Lemma)
	for _, c := range cands[1:] {
		f := freq(c.Lemma)
		if f > bestFreq || (f == bestFreq && c.Lemma < best.Lemma) {
			best, bestFreq = c, f
		}
	}
	return best
}

// synthesizeSubject implements pro-drop: when no entity resolved to a
// nominative and a finite verb is present, an implicit-subject marker with
// the verb's person and number joins the entity set.
func (p *pass) synthesizeSubject() {
	for i := range p.resolved {
		if p.resolved[i].Tags.Has(Nominative) {
			return
		}
	}
	for i, c := range p.resolved {
		lex := p.lex(c.Lemma)
		if lex == nil || lex.POS != POSVerb || !c.Tags.Finite() {
			continue
		}
		tags := Nominative | c.Tags.Person() | c.Tags.Number()
		p.arena.AddImplicit(tags, p.arena.Span(EntityID(i)))
		p.resolved = append(p.resolved, Candidate{Lemma: NoLemma, Tags: tags})
		return
	}
}
