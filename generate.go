package koine

// Generate builds the surface form of lemma under tags: paradigm lookup,
// suffix rule lookup, stem selection, then orthographic normalization
// (NFC, final ς). The Deponent flag is ignored for rule matching since it is
// a lemma property, not a form feature.
func (s *Store) Generate(lemma LemmaID, tags TagSet) (string, error) {
	lex := s.Lexeme(lemma)
	if lex == nil {
		return "", ErrUnknownLemma
	}
	p := s.Paradigm(lex.Paradigm)
	want := tags &^ Deponent

	for _, e := range p.Endings {
		if candidateTags(lex, e)&^Deponent != want {
			continue
		}
		stem, ok := lex.Stems[e.Stem]
		if !ok {
			continue
		}
		return NormalizeForm(stem + e.Suffix), nil
	}
	return "", &ErrUnsupportedTagCombination{Lemma: lemma, Tags: tags}
}
