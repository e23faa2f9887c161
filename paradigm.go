package koine

// Ending is one inflectional rule inside a paradigm: the suffix attached to
// a numbered stem, and the TagSet the resulting form realizes. Two endings
// with the same surface but different tags are distinct rules (that is where
// morphological ambiguity comes from).
type Ending struct {
	Tags   TagSet
	Suffix string
	Stem   int
}

// Paradigm is an inflection class shared by many lemmas: a table of endings
// over numbered stems. Paradigms are owned by the Store and never mutated
// after load.
type Paradigm struct {
	ID      ParadigmID
	Name    string
	POS     PartOfSpeech
	Endings []Ending
}

// Register marks the stylistic level of a lemma.
type Register uint8

const (
	RegisterNeutral Register = iota
	RegisterColloquial
	RegisterFormal
)

var registerNames = map[string]Register{
	"neutral":    RegisterNeutral,
	"colloquial": RegisterColloquial,
	"formal":     RegisterFormal,
}

// ParseRegister maps a register name ("neutral", "colloquial", "formal")
// to its value.
func ParseRegister(name string) (Register, bool) {
	r, ok := registerNames[name]
	return r, ok
}

func (r Register) String() string {
	for name, v := range registerNames {
		if v == r {
			return name
		}
	}
	return "neutral"
}

// Valency is the argument structure a verb requires.
type Valency uint8

const (
	ValencyNone Valency = iota
	Intransitive
	Transitive
	Ditransitive
)

var valencyNames = map[string]Valency{
	"intransitive": Intransitive,
	"transitive":   Transitive,
	"ditransitive": Ditransitive,
}

// Lexeme is a dictionary headword with its stems and paradigm binding.
type Lexeme struct {
	ID       LemmaID
	Text     string
	Paradigm ParadigmID
	POS      PartOfSpeech
	// Gender is the inherent gender bit for nouns; zero when gender is
	// realized by the endings themselves (adjectives, articles).
	Gender   TagSet
	Stems    map[int]string
	Freq     int
	Register Register
	Valency  Valency
	Deponent bool
	// Inherent carries features realized by the word itself rather than by
	// an ending (personal pronouns, other invariant tagged words).
	Inherent TagSet
	// Governs is the case a preposition requires on its complement;
	// zero for everything else.
	Governs TagSet
	// RequiresMood is the mood a particle forces on the verb it precedes
	// (να, ας → Subjunctive); zero for everything else.
	RequiresMood TagSet
	// Clitic marks weak pronoun forms that attach to a neighbouring verb.
	Clitic bool
}

type stemRef struct {
	lemma LemmaID
	num   int
}

type endingRef struct {
	paradigm ParadigmID
	idx      int
}

// Store is the immutable paradigm store: every lemma, paradigm, and the
// phonetic-key indexes the analyzer searches. It is loaded once and safely
// shared by reference across concurrent analysis passes.
type Store struct {
	lemmas    []Lexeme
	paradigms []Paradigm

	paradigmByName map[string]ParadigmID

	// stems maps PhoneticKey(stem) → every (lemma, stem number) spelled so.
	stems map[string][]stemRef
	// endings maps PhoneticKey(suffix) → every (paradigm, rule index)
	// spelled so. The empty suffix is a legal key.
	endings map[string][]endingRef
	// byCitation maps PhoneticKey(citation form) → lemma ids.
	byCitation map[string][]LemmaID
}

// Lexeme returns the lexeme for id, or nil for an unknown id.
func (s *Store) Lexeme(id LemmaID) *Lexeme {
	if int(id) >= len(s.lemmas) {
		return nil
	}
	return &s.lemmas[id]
}

// Paradigm returns the paradigm for id, or nil for an unknown id.
func (s *Store) Paradigm(id ParadigmID) *Paradigm {
	if int(id) >= len(s.paradigms) {
		return nil
	}
	return &s.paradigms[id]
}

// Lemmas returns the number of loaded lemmas.
func (s *Store) Lemmas() int { return len(s.lemmas) }

// Paradigms returns the number of loaded paradigms.
func (s *Store) Paradigms() int { return len(s.paradigms) }

// ByCitation looks up lemmas whose citation form matches the given surface,
// accent-insensitively.
func (s *Store) ByCitation(form string) []LemmaID {
	return s.byCitation[PhoneticKey(form)]
}

// candidateTags combines an ending's tags with the lexeme's inherent
// features: nouns contribute their gender when the ending leaves it open,
// invariant words contribute their inherent tags, deponent lemmas contribute
// the Deponent flag.
func candidateTags(lex *Lexeme, e Ending) TagSet {
	tags := e.Tags | lex.Inherent
	if tags.Gender() == 0 {
		tags |= lex.Gender
	}
	if lex.Deponent {
		tags |= Deponent
	}
	return tags
}

func (s *Store) addStem(lemma LemmaID, num int, stem string) {
	key := PhoneticKey(stem)
	s.stems[key] = append(s.stems[key], stemRef{lemma: lemma, num: num})
}

func (s *Store) addEnding(paradigm ParadigmID, idx int) {
	key := PhoneticKey(s.paradigms[paradigm].Endings[idx].Suffix)
	s.endings[key] = append(s.endings[key], endingRef{paradigm: paradigm, idx: idx})
}
