package koine

import "testing"

func TestTokenize(t *testing.T) {
	toks := Tokenize("Ο άνθρωπος γράφει.")
	want := []string{"Ο", "άνθρωπος", "γράφει"}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize returned %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Text != w {
			t.Errorf("token %d = %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestTokenizeSpans(t *testing.T) {
	text := "Ο άνθρωπος"
	toks := Tokenize(text)
	for _, tok := range toks {
		if text[tok.Start:tok.End] != tok.Text {
			t.Errorf("span [%d,%d) of %q = %q, want %q",
				tok.Start, tok.End, text, text[tok.Start:tok.End], tok.Text)
		}
	}
}

func TestTokenizeElision(t *testing.T) {
	// The apostrophe closes the elided clitic; the host word is separate.
	toks := Tokenize("σ' αγαπώ")
	if len(toks) != 2 {
		t.Fatalf("Tokenize(\"σ' αγαπώ\") returned %d tokens: %v", len(toks), toks)
	}
	if toks[0].Text != "σ'" {
		t.Errorf("token 0 = %q, want %q", toks[0].Text, "σ'")
	}
	if toks[1].Text != "αγαπώ" {
		t.Errorf("token 1 = %q, want %q", toks[1].Text, "αγαπώ")
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if toks := Tokenize("  ...  "); len(toks) != 0 {
		t.Errorf("expected no tokens, got %v", toks)
	}
}

func TestSplitSentences(t *testing.T) {
	text := "Γράφω. Διαβάζεις; Τρέχουμε!"
	got := SplitSentences(text)
	want := []string{"Γράφω.", "Διαβάζεις;", "Τρέχουμε!"}
	if len(got) != len(want) {
		t.Fatalf("SplitSentences returned %d sentences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitSentencesTrailing(t *testing.T) {
	got := SplitSentences("Γράφω. Διαβάζω")
	if len(got) != 2 || got[1] != "Διαβάζω" {
		t.Errorf("trailing fragment not preserved: %v", got)
	}
}
