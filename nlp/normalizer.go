// Package nlp turns an utterance into the normalized token sequence the
// classifier works on: tokenized on word boundaries, stop words removed,
// remaining tokens reduced to their dictionary base form. Pure functions
// over strings; identical input always yields identical output.
package nlp

import "strings"

// Normalize tokenizes text and returns the surviving tokens in input order.
// The caller is expected to lower-case text first; the tokenizer only
// recognizes lower-case letters.
func Normalize(text string) []string {
	tokens := tokenize(text)

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, skip := stopWords[tok]; skip {
			continue
		}
		out = append(out, lemma(tok))
	}

	return out
}

// tokenize splits on word boundaries. A token is a run of letters, digits,
// underscores, or apostrophes; bare punctuation is dropped. Underscores stay
// inside tokens so identifiers like "ice_cream" survive as one token.
func tokenize(s string) []string {
	var tokens []string
	start := -1

	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}

	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '\'':
		return true
	}
	return false
}

// lemma reduces a token to its base form. Only noun plurals are folded;
// verb inflections other than the irregular table pass through unchanged.
func lemma(tok string) string {
	if base, ok := irregular[tok]; ok {
		return base
	}

	switch {
	case len(tok) > 4 && strings.HasSuffix(tok, "ies"):
		return tok[:len(tok)-3] + "y"
	case len(tok) > 4 && (strings.HasSuffix(tok, "ses") ||
		strings.HasSuffix(tok, "xes") ||
		strings.HasSuffix(tok, "zes") ||
		strings.HasSuffix(tok, "ches") ||
		strings.HasSuffix(tok, "shes")):
		return tok[:len(tok)-2]
	case len(tok) > 3 && strings.HasSuffix(tok, "s") &&
		!strings.HasSuffix(tok, "ss") &&
		!strings.HasSuffix(tok, "us") &&
		!strings.HasSuffix(tok, "is"):
		return tok[:len(tok)-1]
	}

	return tok
}

var irregular = map[string]string{
	"children": "child",
	"feet":     "foot",
	"geese":    "goose",
	"men":      "man",
	"mice":     "mouse",
	"people":   "person",
	"teeth":    "tooth",
	"women":    "woman",
}
