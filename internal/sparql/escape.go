package sparql

import "strings"

// literalEscaper neutralizes the characters with special meaning inside
// a double-quoted SPARQL string literal (SPARQL 1.1 grammar, ECHAR).
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// EscapeLiteral escapes s for embedding inside a double-quoted SPARQL
// string literal.
func EscapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// EscapeIRI sanitizes s for embedding inside an IRIREF (<...>). The
// bracketed IRI production forbids angle brackets, quotes, whitespace
// and a few other characters outright, so they are stripped rather
// than escaped.
func EscapeIRI(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
			return -1
		}
		if r <= 0x20 {
			return -1
		}
		return r
	}, s)
}
