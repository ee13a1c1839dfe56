package keys

import (
	"strings"
	"unicode"

	"nestmap/deep"
)

// Normalize rewrites the top-level string keys of c into normalized
// identifier form (see NormalizeIdent). Non-string keys pass through
// untouched. When two keys normalize to the same identifier, which
// entry survives is unspecified.
func Normalize(c deep.Container) deep.Container {
	out := make(deep.Container, len(c))

	for k, v := range c {
		if s, ok := k.(string); ok {
			out[NormalizeIdent(s)] = v
			continue
		}

		out[k] = v
	}

	return out
}

// NormalizeIdent folds an identifier to a canonical lowercase form so
// that spellings like "OrderID", "order_id", and "order-id" all meet at
// "orderid": CamelCase is tokenized first (so acronym boundaries
// survive the fold), then everything is lowercased and the separators
// `_`, `-`, and space are dropped.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, tok := range tokenize(s) {
		b.WriteString(strings.ToLower(tok))
	}

	return b.String()
}

// tokenize splits an identifier on separators and CamelCase humps.
// "getHTTPResponse" becomes ["get", "HTTP", "Response"].
func tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && humpStartsAt(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// humpStartsAt reports whether a new CamelCase token begins at i:
// either a lower-to-upper transition ("orderID" before 'I'), or the
// last capital of an acronym followed by lowercase ("XMLParser"
// before 'P').
func humpStartsAt(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	prev := runes[i-1]
	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
