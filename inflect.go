package koine

// InflectedForm is one cell of an inflection table.
type InflectedForm struct {
	Tags TagSet
	Form string
}

// InflectionTable is the full set of forms a lemma's paradigm defines,
// in paradigm order.
type InflectionTable struct {
	Lemma LemmaID
	Forms []InflectedForm
}

// InflectionTable generates every form the lemma's paradigm defines.
// Cells whose stem is missing on this lemma are skipped.
func (s *Store) InflectionTable(id LemmaID) (*InflectionTable, error) {
	lex := s.Lexeme(id)
	if lex == nil {
		return nil, ErrUnknownLemma
	}
	p := s.Paradigm(lex.Paradigm)

	table := &InflectionTable{Lemma: id}
	seen := make(map[InflectedForm]bool)
	for _, e := range p.Endings {
		stem, ok := lex.Stems[e.Stem]
		if !ok {
			continue
		}
		cell := InflectedForm{
			Tags: candidateTags(lex, e),
			Form: NormalizeForm(stem + e.Suffix),
		}
		if !seen[cell] {
			seen[cell] = true
			table.Forms = append(table.Forms, cell)
		}
	}
	return table, nil
}
