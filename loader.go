package koine

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// paradigmsFile mirrors data/paradigms.yaml.
type paradigmsFile struct {
	Paradigms []paradigmYAML `yaml:"paradigms"`
}

type paradigmYAML struct {
	Name    string       `yaml:"name"`
	POS     string       `yaml:"pos"`
	Endings []endingYAML `yaml:"endings"`
}

type endingYAML struct {
	Tags   []string `yaml:"tags"`
	Suffix string   `yaml:"suffix"`
	Stem   int      `yaml:"stem"`
}

// lexiconFile mirrors data/lexicon.yaml.
type lexiconFile struct {
	Lemmas []lemmaYAML `yaml:"lemmas"`
}

type lemmaYAML struct {
	Text     string         `yaml:"text"`
	Paradigm string         `yaml:"paradigm"`
	POS      string         `yaml:"pos"`
	Gender   string         `yaml:"gender"`
	Stems    map[int]string `yaml:"stems"`
	Freq     int            `yaml:"freq"`
	Register string         `yaml:"register"`
	Valency  string         `yaml:"valency"`
	Deponent bool           `yaml:"deponent"`
	Tags     []string       `yaml:"tags"`
	Governs  string         `yaml:"governs"`
	Requires string         `yaml:"requires"`
	Clitic   bool           `yaml:"clitic"`
}

// LoadStore reads paradigms.yaml and lexicon.yaml from dataDir and builds
// the immutable Store. IDs are assigned in file order, so a given data set
// always produces the same ids.
func LoadStore(dataDir string) (*Store, error) {
	s := &Store{
		paradigmByName: make(map[string]ParadigmID),
		stems:          make(map[string][]stemRef),
		endings:        make(map[string][]endingRef),
		byCitation:     make(map[string][]LemmaID),
	}
	if err := s.loadParadigms(filepath.Join(dataDir, "paradigms.yaml")); err != nil {
		return nil, err
	}
	if err := s.loadLexicon(filepath.Join(dataDir, "lexicon.yaml")); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadParadigms(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read paradigms: %w", err)
	}
	var file paradigmsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for _, py := range file.Paradigms {
		if _, dup := s.paradigmByName[py.Name]; dup {
			return fmt.Errorf("%s: duplicate paradigm %q", path, py.Name)
		}
		pos, ok := posNames[py.POS]
		if !ok {
			return fmt.Errorf("%s: paradigm %q: unknown pos %q", path, py.Name, py.POS)
		}
		p := Paradigm{
			ID:   ParadigmID(len(s.paradigms)),
			Name: py.Name,
			POS:  pos,
		}
		for _, ey := range py.Endings {
			tags, err := parseTags(ey.Tags)
			if err != nil {
				return fmt.Errorf("%s: paradigm %q: %w", path, py.Name, err)
			}
			stem := ey.Stem
			if stem == 0 {
				stem = 1
			}
			p.Endings = append(p.Endings, Ending{
				Tags:   tags,
				Suffix: NormalizeForm(ey.Suffix),
				Stem:   stem,
			})
		}
		s.paradigms = append(s.paradigms, p)
		s.paradigmByName[py.Name] = p.ID
	}

	// Index all endings once the slice is fully built (pointers into
	// s.paradigms stay valid from here on).
	for pid := range s.paradigms {
		for idx := range s.paradigms[pid].Endings {
			s.addEnding(ParadigmID(pid), idx)
		}
	}
	return nil
}

func (s *Store) loadLexicon(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read lexicon: %w", err)
	}
	var file lexiconFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for _, ly := range file.Lemmas {
		pid, ok := s.paradigmByName[ly.Paradigm]
		if !ok {
			return fmt.Errorf("%s: lemma %q: unknown paradigm %q", path, ly.Text, ly.Paradigm)
		}
		lex := Lexeme{
			ID:       LemmaID(len(s.lemmas)),
			Text:     NormalizeForm(ly.Text),
			Paradigm: pid,
			POS:      s.paradigms[pid].POS,
			Freq:     ly.Freq,
			Deponent: ly.Deponent,
			Clitic:   ly.Clitic,
		}
		if ly.POS != "" {
			pos, ok := posNames[ly.POS]
			if !ok {
				return fmt.Errorf("%s: lemma %q: unknown pos %q", path, ly.Text, ly.POS)
			}
			lex.POS = pos
		}
		if ly.Gender != "" {
			g, ok := parseTag(ly.Gender)
			if !ok || g&MaskGender == 0 {
				return fmt.Errorf("%s: lemma %q: bad gender %q", path, ly.Text, ly.Gender)
			}
			lex.Gender = g
		}
		if ly.Register != "" {
			reg, ok := registerNames[ly.Register]
			if !ok {
				return fmt.Errorf("%s: lemma %q: bad register %q", path, ly.Text, ly.Register)
			}
			lex.Register = reg
		}
		if ly.Valency != "" {
			v, ok := valencyNames[ly.Valency]
			if !ok {
				return fmt.Errorf("%s: lemma %q: bad valency %q", path, ly.Text, ly.Valency)
			}
			lex.Valency = v
		}
		if len(ly.Tags) > 0 {
			tags, err := parseTags(ly.Tags)
			if err != nil {
				return fmt.Errorf("%s: lemma %q: %w", path, ly.Text, err)
			}
			lex.Inherent = tags
		}
		if ly.Requires != "" {
			m, ok := parseTag(ly.Requires)
			if !ok || m&MaskMood == 0 {
				return fmt.Errorf("%s: lemma %q: bad required mood %q", path, ly.Text, ly.Requires)
			}
			lex.RequiresMood = m
		}
		if ly.Governs != "" {
			c, ok := parseTag(ly.Governs)
			if !ok || c&MaskCase == 0 {
				return fmt.Errorf("%s: lemma %q: bad governed case %q", path, ly.Text, ly.Governs)
			}
			lex.Governs = c
		}

		lex.Stems = make(map[int]string, len(ly.Stems))
		for num, stem := range ly.Stems {
			lex.Stems[num] = NormalizeForm(stem)
		}
		if len(lex.Stems) == 0 {
			// Invariant words inflect with an empty suffix on the
			// citation form itself.
			lex.Stems[1] = lex.Text
		}

		s.lemmas = append(s.lemmas, lex)
		for num, stem := range lex.Stems {
			s.addStem(lex.ID, num, stem)
		}
		s.byCitation[PhoneticKey(lex.Text)] = append(s.byCitation[PhoneticKey(lex.Text)], lex.ID)
	}
	return nil
}

// parseTags folds a list of tag names into one TagSet.
func parseTags(names []string) (TagSet, error) {
	var tags TagSet
	for _, n := range names {
		bit, ok := parseTag(n)
		if !ok {
			return 0, fmt.Errorf("unknown tag %q", n)
		}
		tags |= bit
	}
	return tags, nil
}
