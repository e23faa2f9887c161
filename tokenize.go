package koine

import "strings"

// Token is one word span of a sentence. Offsets are byte offsets into the
// original text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits one sentence into word tokens. Punctuation and whitespace
// separate tokens and are not tokens themselves; an apostrophe ends a token
// so that elided clitics (σ', τ') stay separate entities.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1

	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:end], Start: start, End: end})
			start = -1
		}
	}

	for i, r := range text {
		switch {
		case isGreekLetter(r):
			if start < 0 {
				start = i
			}
		case r == '\'' || r == '’' || r == '᾿':
			// Keep the apostrophe with the elided word.
			if start >= 0 {
				end := i + len(string(r))
				tokens = append(tokens, Token{Text: text[start:end], Start: start, End: end})
				start = -1
			}
		default:
			flush(i)
		}
	}
	flush(len(text))
	return tokens
}

// SplitSentences splits text on sentence-final punctuation: period,
// exclamation mark, ellipsis, and the Greek question mark (;).
func SplitSentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == ';' || r == '!' || r == '…' {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}
