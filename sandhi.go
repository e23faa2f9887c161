package koine

import "fmt"

// movable-ν words checked for retention: the feminine accusative article and
// the negation particles. τον is excluded: keeping its ν is standard in all
// positions to distinguish it from το.
var movableNu = map[string]bool{
	"την": true,
	"δεν": true,
	"μην": true,
}

// checkSandhi enforces the final-N rule over adjacent surface forms: the
// movable ν is kept before a vowel or plosive onset and dropped otherwise.
// Formal register retains the ν everywhere, so retention is only flagged
// outside it. The truncated feminine article τη is flagged where the ν was
// required.
func (p *pass) checkSandhi() {
	n := p.arena.Len()
	for i := 0; i+1 < n; i++ {
		id := EntityID(i)
		if p.arena.Implicit(id) || p.arena.Implicit(EntityID(i+1)) {
			continue
		}
		word := PhoneticKey(p.arena.Text(id))
		next := p.arena.Text(EntityID(i + 1))
		nuKept := vowelInitial(next) || plosiveInitial(next)

		switch {
		case movableNu[word] && !nuKept && p.a.register != RegisterFormal:
			p.diag(SandhiViolation, SeverityWarning, id,
				fmt.Sprintf("final ν of %q should drop before %q", p.arena.Text(id), next))
		case word == "τη" && nuKept:
			p.diag(SandhiViolation, SeverityWarning, id,
				fmt.Sprintf("final ν missing on %q before %q", p.arena.Text(id), next))
		}
	}
}

// checkStyle flags sentences that mix lemmas of the formal and colloquial
// registers. The diagnostic lands on the later of the two entities.
func (p *pass) checkStyle() {
	formal, colloquial := NoEntity, NoEntity
	for i := range p.resolved {
		lex := p.lex(p.resolved[i].Lemma)
		if lex == nil {
			continue
		}
		switch lex.Register {
		case RegisterFormal:
			formal = EntityID(i)
		case RegisterColloquial:
			colloquial = EntityID(i)
		}
	}
	if formal == NoEntity || colloquial == NoEntity {
		return
	}
	later := formal
	if colloquial > later {
		later = colloquial
	}
	p.diag(StyleClash, SeverityWarning, later,
		fmt.Sprintf("formal %q and colloquial %q in one sentence",
			p.arena.Text(formal), p.arena.Text(colloquial)))
}
