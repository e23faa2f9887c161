package koine

import (
	"errors"
	"testing"
)

const dataDir = "data"

// mustLemma resolves a citation form to its lemma, failing the test on a
// miss. Homographs are narrowed by part of speech.
func mustLemma(t *testing.T, s *Store, citation string, pos PartOfSpeech) *Lexeme {
	t.Helper()
	for _, id := range s.ByCitation(citation) {
		if lex := s.Lexeme(id); lex.POS == pos {
			return lex
		}
	}
	t.Fatalf("lemma %q (%s) not in store", citation, pos)
	return nil
}

func TestLoadStore(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatalf("LoadStore(%q): %v", dataDir, err)
	}
	t.Logf("loaded %d lemmas, %d paradigms", s.Lemmas(), s.Paradigms())
	if s.Lemmas() == 0 || s.Paradigms() == 0 {
		t.Fatal("store loaded empty")
	}
}

func TestLoadStoreMissingDir(t *testing.T) {
	if _, err := LoadStore("no-such-dir"); err == nil {
		t.Fatal("LoadStore on a missing directory did not fail")
	}
}

func TestGenerate(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		citation string
		pos      PartOfSpeech
		tags     TagSet
		want     string
	}{
		// Accent retreats to stem 2 in the oblique plural.
		{"άνθρωπος", POSNoun, Nominative | Masculine | Singular, "άνθρωπος"},
		{"άνθρωπος", POSNoun, Accusative | Masculine | Plural, "ανθρώπους"},
		{"άνθρωπος", POSNoun, Genitive | Masculine | Singular, "ανθρώπου"},
		{"γυναίκα", POSNoun, Accusative | Feminine | Singular, "γυναίκα"},
		{"γυναίκα", POSNoun, Genitive | Feminine | Plural, "γυναικών"},
		// Anisosyllabic neuter: the plural gains a syllable.
		{"παιδί", POSNoun, Nominative | Neuter | Plural, "παιδιά"},
		{"παιδί", POSNoun, Genitive | Neuter | Singular, "παιδιού"},
		{"βιβλίο", POSNoun, Accusative | Neuter | Singular, "βιβλίο"},
		// Suppletive article forms.
		{"ο", POSArticle, Nominative | Masculine | Singular, "ο"},
		{"ο", POSArticle, Accusative | Feminine | Plural, "τις"},
		{"ο", POSArticle, Genitive | Neuter | Plural, "των"},
		// Adjective gender series.
		{"καλός", POSAdjective, Nominative | Feminine | Singular, "καλή"},
		{"καλός", POSAdjective, Accusative | Neuter | Plural, "καλά"},
		// Verb: aspect stems and the past augment.
		{"γράφω", POSVerb, Imperfective | NonPast | Active | Indicative | First | Singular, "γράφω"},
		{"γράφω", POSVerb, Perfective | NonPast | Active | Subjunctive | First | Singular, "γράψω"},
		{"γράφω", POSVerb, Imperfective | Past | Active | Indicative | Third | Singular, "έγραφε"},
		{"γράφω", POSVerb, Perfective | Past | Active | Indicative | First | Singular, "έγραψα"},
		// Past 1pl drops the augment.
		{"γράφω", POSVerb, Perfective | Past | Active | Indicative | First | Plural, "γράψαμε"},
		// Deponent verb in the medio-passive.
		{"έρχομαι", POSVerb, Imperfective | NonPast | Passive | Indicative | First | Singular | Deponent, "έρχομαι"},
		{"έρχομαι", POSVerb, Imperfective | NonPast | Passive | Indicative | First | Plural | Deponent, "ερχόμαστε"},
	}
	for _, tt := range tests {
		lex := mustLemma(t, s, tt.citation, tt.pos)
		got, err := s.Generate(lex.ID, tt.tags)
		if err != nil {
			t.Errorf("Generate(%s, %s): %v", tt.citation, tt.tags, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Generate(%s, %s) = %q, want %q", tt.citation, tt.tags, got, tt.want)
		}
	}
}

func TestGenerateUnsupported(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	lex := mustLemma(t, s, "γράφω", POSVerb)
	_, err = s.Generate(lex.ID, Nominative|Masculine|Singular)
	var unsupported *ErrUnsupportedTagCombination
	if !errors.As(err, &unsupported) {
		t.Fatalf("Generate(γράφω, Nom.Masc.Sg) error = %v, want ErrUnsupportedTagCombination", err)
	}
}

func TestGenerateUnknownLemma(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Generate(LemmaID(1 << 20), Nominative); !errors.Is(err, ErrUnknownLemma) {
		t.Fatalf("error = %v, want ErrUnknownLemma", err)
	}
}

func TestAnalyzeAmbiguous(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	// γράφω is indicative/subjunctive homographic.
	cands := s.Analyze("γράφω")
	if len(cands) != 2 {
		t.Fatalf("Analyze(γράφω) returned %d candidates, want 2: %v", len(cands), cands)
	}
	moods := map[TagSet]bool{}
	for _, c := range cands {
		moods[c.Tags.Mood()] = true
	}
	if !moods[Indicative] || !moods[Subjunctive] {
		t.Errorf("Analyze(γράφω) moods = %v, want both Ind and Subj", moods)
	}

	// τον reads as article or weak pronoun.
	cands = s.Analyze("τον")
	lemmas := map[LemmaID]bool{}
	for _, c := range cands {
		lemmas[c.Lemma] = true
	}
	if len(lemmas) != 2 {
		t.Errorf("Analyze(τον) spans %d lemmas, want 2: %v", len(lemmas), cands)
	}
}

func TestAnalyzeAccentInsensitive(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	accented := s.Analyze("άνθρωπος")
	plain := s.Analyze("ανθρωπος")
	if len(accented) == 0 {
		t.Fatal("Analyze(άνθρωπος) returned no candidates")
	}
	if len(plain) != len(accented) {
		t.Errorf("unaccented spelling yielded %d candidates, accented %d", len(plain), len(accented))
	}
}

func TestAnalyzeOOV(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	if cands := s.Analyze("ξωτικό"); len(cands) != 0 {
		t.Errorf("Analyze of an out-of-vocabulary word returned %v", cands)
	}
	if cands := s.Analyze(""); cands != nil {
		t.Errorf("Analyze(\"\") returned %v", cands)
	}
}

// TestRoundTrip checks the generate/analyze contract: every form a paradigm
// produces must analyze back to its own (lemma, tags) pair.
func TestRoundTrip(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	for _, probe := range []struct {
		citation string
		pos      PartOfSpeech
	}{
		{"άνθρωπος", POSNoun}, // accent-shifting -ος
		{"γυναίκα", POSNoun},  // isosyllabic -α
		{"παιδί", POSNoun},    // anisosyllabic -ί
		{"καλός", POSAdjective},
		{"ο", POSArticle}, // suppletive forms
		{"γράφω", POSVerb},
		{"έρχομαι", POSVerb}, // deponent
	} {
		lex := mustLemma(t, s, probe.citation, probe.pos)
		table, err := s.InflectionTable(lex.ID)
		if err != nil {
			t.Fatalf("InflectionTable(%s): %v", probe.citation, err)
		}
		if len(table.Forms) == 0 {
			t.Fatalf("InflectionTable(%s) is empty", probe.citation)
		}
		for _, cell := range table.Forms {
			found := false
			for _, c := range s.Analyze(cell.Form) {
				if c.Lemma == lex.ID && c.Tags == cell.Tags {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: form %q (%s) does not analyze back to its lemma",
					probe.citation, cell.Form, cell.Tags)
			}
		}
	}
}

func TestInflectionTableArticle(t *testing.T) {
	s, err := LoadStore(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	lex := mustLemma(t, s, "ο", POSArticle)
	table, err := s.InflectionTable(lex.ID)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("article table has %d cells", len(table.Forms))
	// Three genders, two numbers, three cases, plus the τη variant.
	if len(table.Forms) != 19 {
		t.Errorf("article table has %d cells, want 19", len(table.Forms))
	}
}
