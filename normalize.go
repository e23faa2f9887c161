package koine

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeForm puts a surface form into canonical orthography: Unicode NFC
// with a final lowercase sigma written ς. Every form produced by Generate
// and every form accepted by Analyze goes through this.
func NormalizeForm(s string) string {
	s = norm.NFC.String(s)
	return finalSigma(s)
}

// finalSigma rewrites a word-final σ as ς. Interior sigmas are untouched.
func finalSigma(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if runes[len(runes)-1] == 'σ' {
		runes[len(runes)-1] = 'ς'
		return string(runes)
	}
	return s
}

// PhoneticKey reduces a form to its accent-insensitive lookup key:
// NFD-decompose, drop combining marks (tonos, diaeresis, breathings),
// lowercase, and fold final ς back to σ so that position inside the word
// does not affect matching.
func PhoneticKey(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.ReplaceAll(b.String(), "ς", "σ")
}

// isGreekLetter reports whether r belongs to the Greek or Greek Extended
// blocks, or is otherwise alphabetic (resilience for mixed input).
func isGreekLetter(r rune) bool {
	switch {
	case r >= 0x0370 && r <= 0x03FF:
		return true
	case r >= 0x1F00 && r <= 0x1FFF:
		return true
	}
	return unicode.IsLetter(r)
}

// vowelInitial reports whether the word starts with a Greek vowel.
func vowelInitial(word string) bool {
	key := PhoneticKey(word)
	if key == "" {
		return false
	}
	return strings.ContainsRune("αεηιουω", []rune(key)[0])
}

// plosiveInitial reports whether the word starts with a plosive or one of
// the clusters that count as plosive for the final-N rule
// (κ, π, τ, ξ, ψ, γκ, μπ, ντ, τσ, τζ).
func plosiveInitial(word string) bool {
	key := PhoneticKey(word)
	if key == "" {
		return false
	}
	for _, cluster := range []string{"γκ", "μπ", "ντ", "τσ", "τζ"} {
		if strings.HasPrefix(key, cluster) {
			return true
		}
	}
	return strings.ContainsRune("κπτξψ", []rune(key)[0])
}
