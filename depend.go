package koine

import "fmt"

// resolvedPOS returns the part of speech of an entity's resolved candidate.
// The implicit subject counts as a pronoun.
func (p *pass) resolvedPOS(id EntityID) PartOfSpeech {
	if p.arena.Implicit(id) {
		return POSPronoun
	}
	if lex := p.lex(p.resolved[id].Lemma); lex != nil {
		return lex.POS
	}
	return POSUnknown
}

// resolvedTags returns the entity's resolved TagSet.
func (p *pass) resolvedTags(id EntityID) TagSet {
	return p.resolved[id].Tags
}

// buildTree assigns every non-root entity a head, forming a rooted
// dependency tree over the resolved entities. Attachment is
// nearest-governing-head driven by part of speech and the resolved TagSet.
func (p *pass) buildTree() {
	n := p.arena.Len()
	if n == 0 {
		return
	}

	root := p.pickRoot()
	heads := make([]EntityID, n)
	for i := range heads {
		heads[i] = NoEntity
	}

	attach := func(dep, head EntityID, rel Relation) {
		if head == dep || head == NoEntity {
			head = root
		}
		if head == dep {
			return
		}
		heads[dep] = head
		p.edges = append(p.edges, DependencyEdge{Head: head, Dep: dep, Rel: rel})
	}

	openPrep := NoEntity
	for i := 0; i < n; i++ {
		id := EntityID(i)
		if id == root {
			continue
		}

		switch pos := p.resolvedPOS(id); {
		case pos == POSArticle:
			attach(id, p.nextResolvedNominal(i+1), RelDet)

		case pos == POSAdjective:
			head := p.nextResolvedPOS(i+1, POSNoun)
			if head == NoEntity {
				head = p.prevResolvedPOS(i-1, POSNoun)
			}
			attach(id, head, RelAmod)

		case pos == POSPreposition:
			rel := RelObl
			if lex := p.lex(p.resolved[id].Lemma); lex != nil && PhoneticKey(lex.Text) == "σε" {
				// σε-phrases fill the indirect-object slot.
				rel = RelIobj
			}
			attach(id, p.clauseVerb(root, i), rel)
			openPrep = id

		case pos == POSParticle || pos == POSConjunction || pos == POSAdverb:
			attach(id, p.clauseVerb(root, i), RelObl)

		case pos == POSPronoun && p.cliticEntity(id):
			verb := p.adjacentVerb(i)
			rel := RelObj
			if p.resolvedTags(id).Has(Genitive) {
				rel = RelIobj
			}
			attach(id, verb, rel)
			p.checkValency(verb, id, rel)

		case pos.nominal() || pos == POSUnknown:
			if openPrep != NoEntity {
				attach(id, openPrep, RelObj)
				openPrep = NoEntity
				break
			}
			p.attachNominal(id, i, root, attach)

		default:
			attach(id, root, RelObl)
		}
	}

	if cycle := p.findCycle(heads); cycle != NoEntity {
		p.diag(CyclicDependency, SeverityFatal, cycle,
			fmt.Sprintf("entity %q is its own ancestor; no dependency tree for this sentence", p.arena.Text(cycle)))
		p.edges = nil
	}
}

// pickRoot selects the first finite-verb entity, or for verbless fragments
// the first noun-like entity, or entity 0.
func (p *pass) pickRoot() EntityID {
	for i := range p.resolved {
		if p.resolvedPOS(EntityID(i)) == POSVerb && p.resolvedTags(EntityID(i)).Finite() {
			return EntityID(i)
		}
	}
	for i := range p.resolved {
		pos := p.resolvedPOS(EntityID(i))
		if pos == POSNoun || pos == POSPronoun {
			return EntityID(i)
		}
	}
	return 0
}

// attachNominal places a case-bearing entity: nominatives become subjects of
// the nearest finite verb, accusatives objects, genitives modifiers of the
// preceding noun (or indirect objects when none), vocatives obliques.
func (p *pass) attachNominal(id EntityID, i int, root EntityID, attach func(EntityID, EntityID, Relation)) {
	verb := p.nearestResolvedVerb(i)
	if verb == NoEntity {
		verb = root
	}
	tags := p.resolvedTags(id)
	switch tags.Case() {
	case Nominative:
		attach(id, verb, RelNsubj)
	case Accusative:
		attach(id, verb, RelObj)
		p.checkValency(verb, id, RelObj)
	case Genitive:
		if prev := p.prevResolvedPOS(i-1, POSNoun); prev != NoEntity {
			attach(id, prev, RelObl)
		} else {
			attach(id, verb, RelIobj)
		}
	default:
		attach(id, root, RelObl)
	}
}

// checkValency flags a direct object attached to a verb that takes none.
func (p *pass) checkValency(verb, obj EntityID, rel Relation) {
	if rel != RelObj || verb == NoEntity {
		return
	}
	lex := p.lex(p.resolved[verb].Lemma)
	if lex != nil && lex.POS == POSVerb && lex.Valency == Intransitive {
		p.diag(ValencyViolation, SeverityError, obj,
			fmt.Sprintf("%q does not take a direct object", lex.Text))
	}
}

// cliticEntity reports whether the entity resolved to a weak pronoun form.
func (p *pass) cliticEntity(id EntityID) bool {
	lex := p.lex(p.resolved[id].Lemma)
	return lex != nil && lex.Clitic
}

func (p *pass) nextResolvedNominal(from int) EntityID {
	for j := from; j < p.arena.Len(); j++ {
		if pos := p.resolvedPOS(EntityID(j)); pos.nominal() || pos == POSUnknown {
			return EntityID(j)
		}
		if p.resolvedPOS(EntityID(j)) == POSVerb {
			return NoEntity
		}
	}
	return NoEntity
}

func (p *pass) nextResolvedPOS(from int, pos PartOfSpeech) EntityID {
	for j := from; j < p.arena.Len(); j++ {
		if p.resolvedPOS(EntityID(j)) == pos {
			return EntityID(j)
		}
		if p.resolvedPOS(EntityID(j)) == POSVerb {
			return NoEntity
		}
	}
	return NoEntity
}

func (p *pass) prevResolvedPOS(from int, pos PartOfSpeech) EntityID {
	for j := from; j >= 0; j-- {
		if p.resolvedPOS(EntityID(j)) == pos {
			return EntityID(j)
		}
	}
	return NoEntity
}

// nearestResolvedVerb returns the closest finite-verb entity to position i,
// preferring the following one on a tie.
func (p *pass) nearestResolvedVerb(i int) EntityID {
	n := p.arena.Len()
	isVerb := func(j int) bool {
		return p.resolvedPOS(EntityID(j)) == POSVerb && p.resolvedTags(EntityID(j)).Finite()
	}
	for d := 1; d < n; d++ {
		if j := i + d; j < n && isVerb(j) {
			return EntityID(j)
		}
		if j := i - d; j >= 0 && isVerb(j) {
			return EntityID(j)
		}
	}
	return NoEntity
}

// clauseVerb returns the verb governing position i, defaulting to the root.
func (p *pass) clauseVerb(root EntityID, i int) EntityID {
	if v := p.nearestResolvedVerb(i); v != NoEntity {
		return v
	}
	return root
}

// adjacentVerb finds the verb a clitic leans on: the next entity if it is a
// verb (proclitic), otherwise the previous one (enclitic), otherwise the
// nearest.
func (p *pass) adjacentVerb(i int) EntityID {
	isVerb := func(j int) bool {
		return j >= 0 && j < p.arena.Len() &&
			p.resolvedPOS(EntityID(j)) == POSVerb
	}
	if isVerb(i + 1) {
		return EntityID(i + 1)
	}
	if isVerb(i - 1) {
		return EntityID(i - 1)
	}
	return p.nearestResolvedVerb(i)
}

// findCycle validates acyclicity: no entity may be its own ancestor.
// Returns the offending entity, or NoEntity for a valid tree.
func (p *pass) findCycle(heads []EntityID) EntityID {
	n := len(heads)
	for i := 0; i < n; i++ {
		steps := 0
		for cur := heads[i]; cur != NoEntity; cur = heads[cur] {
			steps++
			if steps > n {
				return EntityID(i)
			}
		}
	}
	return NoEntity
}
