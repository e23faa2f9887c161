package koine

import "testing"

func TestTagSetString(t *testing.T) {
	tests := []struct {
		tags TagSet
		want string
	}{
		{Nominative | Masculine | Singular, "Nom.Masc.Sg"},
		{Accusative | Feminine | Plural, "Acc.Fem.Pl"},
		{Imperfective | NonPast | Active | Indicative | First | Singular, "Sg.1.Ipfv.NonPast.Act.Ind"},
		{0, "-"},
	}
	for _, tt := range tests {
		if got := tt.tags.String(); got != tt.want {
			t.Errorf("TagSet(%#x).String() = %q, want %q", uint32(tt.tags), got, tt.want)
		}
	}
}

func TestParseTagSet(t *testing.T) {
	for _, s := range []string{"Nom.Masc.Sg", "Acc.Fem.Pl", "Sg.1.Ipfv.NonPast.Act.Ind", "-", ""} {
		tags, err := ParseTagSet(s)
		if err != nil {
			t.Fatalf("ParseTagSet(%q): %v", s, err)
		}
		want := s
		if s == "" {
			want = "-"
		}
		if got := tags.String(); got != want {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
	if _, err := ParseTagSet("Nom.Bogus"); err == nil {
		t.Error("ParseTagSet accepted an unknown tag")
	}
}

func TestResolved(t *testing.T) {
	if !(Nominative | Masculine | Singular).Resolved() {
		t.Error("single-valued set reported unresolved")
	}
	if (Nominative | Accusative).Resolved() {
		t.Error("two cases in one set reported resolved")
	}
	if !TagSet(0).Resolved() {
		t.Error("empty set reported unresolved")
	}
}

func TestAgreesOn(t *testing.T) {
	art := Accusative | Feminine | Singular
	noun := Accusative | Feminine | Singular
	if !art.AgreesOn(noun, MaskCase|MaskGender|MaskNumber) {
		t.Error("identical CGN features reported disagreeing")
	}

	plural := Nominative | Masculine | Plural
	sing := Nominative | Masculine | Singular
	if plural.AgreesOn(sing, MaskCase|MaskGender|MaskNumber) {
		t.Error("Pl vs Sg reported agreeing")
	}

	// An unset category never blocks agreement.
	bare := Accusative | Singular
	if !bare.AgreesOn(noun, MaskCase|MaskGender|MaskNumber) {
		t.Error("unset gender blocked agreement")
	}
	if !TagSet(0).AgreesOn(noun, MaskCase|MaskGender|MaskNumber) {
		t.Error("empty set blocked agreement")
	}
}

func TestSyntacticVoice(t *testing.T) {
	deponent := Passive | Indicative | First | Singular | Deponent
	if deponent.SyntacticVoice() != Active {
		t.Errorf("deponent SyntacticVoice = %s, want Act", deponent.SyntacticVoice())
	}
	if deponent.Voice() != Passive {
		t.Errorf("deponent surface Voice = %s, want Pass", deponent.Voice())
	}
	passive := Passive | Indicative | Third | Singular
	if passive.SyntacticVoice() != Passive {
		t.Errorf("plain passive SyntacticVoice = %s, want Pass", passive.SyntacticVoice())
	}
}

func TestFinite(t *testing.T) {
	if !(Indicative | Third | Singular).Finite() {
		t.Error("person+mood form reported non-finite")
	}
	if (Nominative | Masculine | Singular).Finite() {
		t.Error("nominal features reported finite")
	}
}
