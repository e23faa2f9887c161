package koine

// Candidate is one morphological reading of a surface form: a lemma plus a
// fully specified TagSet. An ambiguous form yields several Candidates, never
// one Candidate with multiple bits per category.
type Candidate struct {
	Lemma LemmaID
	Tags  TagSet
}

// Analyze returns every (lemma, tags) pair whose generated form matches the
// surface accent-insensitively. The form is split at every rune boundary into
// a stem key and an ending key; a pair matches when stem and ending belong to
// the same paradigm and stem number. Out-of-vocabulary input returns an empty
// slice, not an error — callers must treat that as a distinct outcome.
func (s *Store) Analyze(surface string) []Candidate {
	key := PhoneticKey(NormalizeForm(surface))
	if key == "" {
		return nil
	}

	runes := []rune(key)
	var out []Candidate
	seen := make(map[Candidate]bool)

	for i := 0; i <= len(runes); i++ {
		stemKey := string(runes[:i])
		endKey := string(runes[i:])

		refs, ok := s.stems[stemKey]
		if !ok {
			continue
		}
		ends, ok := s.endings[endKey]
		if !ok {
			continue
		}

		for _, sr := range refs {
			lex := &s.lemmas[sr.lemma]
			for _, er := range ends {
				if er.paradigm != lex.Paradigm {
					continue
				}
				e := s.paradigms[er.paradigm].Endings[er.idx]
				if e.Stem != sr.num {
					continue
				}
				stem, ok := lex.Stems[e.Stem]
				if !ok {
					continue
				}
				// Round-trip guard: the rule must actually regenerate
				// this surface (accent-insensitively).
				if PhoneticKey(NormalizeForm(stem+e.Suffix)) != key {
					continue
				}
				c := Candidate{Lemma: lex.ID, Tags: candidateTags(lex, e)}
				if !seen[c] {
					seen[c] = true
					out = append(out, c)
				}
			}
		}
	}
	return out
}
