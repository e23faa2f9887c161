package koine

import (
	"fmt"
	"strings"
)

// TagSet is a fixed-width bitset of morphological features. Each grammatical
// category (case, gender, number, person, aspect, time, voice, mood) owns a
// contiguous group of bits; a resolved TagSet carries at most one bit per
// category. Ambiguity is represented as separate Candidates, never as a
// multi-bit value inside one candidate.
type TagSet uint32

const (
	// Case
	Nominative TagSet = 1 << iota
	Genitive
	Accusative
	Vocative
	// Gender
	Masculine
	Feminine
	Neuter
	// Number
	Singular
	Plural
	// Person
	First
	Second
	Third
	// Aspect
	Imperfective
	Perfective
	Perfect
	// Time
	Past
	NonPast
	// Voice
	Active
	Passive
	// Mood
	Indicative
	Subjunctive
	// Deponent marks a lemma whose surface voice is passive but whose
	// syntactic role is active. It is not a category of its own; it
	// modifies how Voice is read (see SyntacticVoice).
	Deponent
)

// Category masks.
const (
	MaskCase   = Nominative | Genitive | Accusative | Vocative
	MaskGender = Masculine | Feminine | Neuter
	MaskNumber = Singular | Plural
	MaskPerson = First | Second | Third
	MaskAspect = Imperfective | Perfective | Perfect
	MaskTime   = Past | NonPast
	MaskVoice  = Active | Passive
	MaskMood   = Indicative | Subjunctive
)

var categoryMasks = []TagSet{
	MaskCase, MaskGender, MaskNumber, MaskPerson,
	MaskAspect, MaskTime, MaskVoice, MaskMood,
}

// Has reports whether every bit of t2 is set in t.
func (t TagSet) Has(t2 TagSet) bool { return t&t2 == t2 }

// Case returns the case bits of t (zero or one bit when resolved).
func (t TagSet) Case() TagSet { return t & MaskCase }

// Gender returns the gender bits of t.
func (t TagSet) Gender() TagSet { return t & MaskGender }

// Number returns the number bits of t.
func (t TagSet) Number() TagSet { return t & MaskNumber }

// Person returns the person bits of t.
func (t TagSet) Person() TagSet { return t & MaskPerson }

// Aspect returns the aspect bits of t.
func (t TagSet) Aspect() TagSet { return t & MaskAspect }

// Time returns the time bits of t.
func (t TagSet) Time() TagSet { return t & MaskTime }

// Voice returns the raw surface-voice bits of t. Callers deciding on
// syntactic behaviour must use SyntacticVoice instead.
func (t TagSet) Voice() TagSet { return t & MaskVoice }

// Mood returns the mood bits of t.
func (t TagSet) Mood() TagSet { return t & MaskMood }

// SyntacticVoice returns the voice that governs argument structure.
// A deponent form is morphologically passive but syntactically active.
func (t TagSet) SyntacticVoice() TagSet {
	if t.Has(Deponent) {
		return Active
	}
	return t.Voice()
}

// Resolved reports whether t carries at most one bit per category.
func (t TagSet) Resolved() bool {
	for _, m := range categoryMasks {
		c := t & m
		if c&(c-1) != 0 {
			return false
		}
	}
	return true
}

// Finite reports whether t describes a finite verb form (person and mood set).
func (t TagSet) Finite() bool {
	return t.Person() != 0 && t.Mood() != 0
}

// AgreesOn reports whether t and u agree on the categories selected by mask.
// A category that is unset on either side does not block agreement; only a
// set-but-different category is a mismatch.
func (t TagSet) AgreesOn(u, mask TagSet) bool {
	for _, m := range categoryMasks {
		m &= mask
		if m == 0 {
			continue
		}
		a, b := t&m, u&m
		if a != 0 && b != 0 && a != b {
			return false
		}
	}
	return true
}

// tagNames is ordered by bit position.
var tagNames = []string{
	"Nom", "Gen", "Acc", "Voc",
	"Masc", "Fem", "Neut",
	"Sg", "Pl",
	"1", "2", "3",
	"Ipfv", "Pfv", "Prf",
	"Past", "NonPast",
	"Act", "Pass",
	"Ind", "Subj",
	"Dep",
}

// String renders the set bits in bit order, dot-separated, e.g. "Nom.Masc.Sg".
func (t TagSet) String() string {
	if t == 0 {
		return "-"
	}
	var parts []string
	for i, name := range tagNames {
		if t&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ".")
}

// ParseTagSet parses the dot-separated rendering produced by String,
// e.g. "Acc.Fem.Sg". Lookup is case-insensitive; "-" and "" parse to the
// empty set.
func ParseTagSet(s string) (TagSet, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	var tags TagSet
	for _, name := range strings.Split(s, ".") {
		bit, ok := parseTag(name)
		if !ok {
			return 0, fmt.Errorf("unknown tag %q", name)
		}
		tags |= bit
	}
	return tags, nil
}

// parseTag maps a data-file tag name to its bit. Lookup is case-insensitive.
func parseTag(name string) (TagSet, bool) {
	for i, n := range tagNames {
		if strings.EqualFold(n, name) {
			return 1 << uint(i), true
		}
	}
	return 0, false
}

// PartOfSpeech classifies a lemma. It lives on the lemma, not in the TagSet:
// a headword never changes class under inflection.
type PartOfSpeech uint8

const (
	POSUnknown PartOfSpeech = iota
	POSNoun
	POSAdjective
	POSVerb
	POSArticle
	POSPronoun
	POSPreposition
	POSParticle
	POSAdverb
	POSConjunction
	POSNumeral
)

var posNames = map[string]PartOfSpeech{
	"noun":        POSNoun,
	"adjective":   POSAdjective,
	"verb":        POSVerb,
	"article":     POSArticle,
	"pronoun":     POSPronoun,
	"preposition": POSPreposition,
	"particle":    POSParticle,
	"adverb":      POSAdverb,
	"conjunction": POSConjunction,
	"numeral":     POSNumeral,
}

func (p PartOfSpeech) String() string {
	for name, v := range posNames {
		if v == p {
			return name
		}
	}
	return "unknown"
}

// nominal reports whether p can head or modify a noun phrase.
func (p PartOfSpeech) nominal() bool {
	return p == POSNoun || p == POSAdjective || p == POSPronoun || p == POSNumeral
}
