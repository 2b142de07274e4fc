// Package query compiles application requests into SPARQL query text.
package query

import (
	"fmt"
	"strings"

	"github.com/ayuwidi/gaung/internal/sparql"
)

// Builder assembles a SELECT query from fixed clause templates and
// escaped caller-supplied values. Templates never see raw input:
// literals and IRIs are embedded through Literal and IRIRef only.
type Builder struct {
	prefixes []string
	patterns []string
	distinct bool
	vars     string
	orderBy  string
	limit    int
	offset   int
	hasLimit bool
}

// NewBuilder creates a Builder selecting the given projection, e.g.
// "?entity ?label" or "(COUNT(DISTINCT ?entity) AS ?count)".
func NewBuilder(vars string) *Builder {
	return &Builder{vars: vars, limit: -1, offset: -1}
}

// Distinct marks the projection DISTINCT.
func (b *Builder) Distinct() *Builder {
	b.distinct = true
	return b
}

// Prefix declares a namespace prefix for the query.
func (b *Builder) Prefix(name, ns string) *Builder {
	b.prefixes = append(b.prefixes, fmt.Sprintf("PREFIX %s: <%s>", name, sparql.EscapeIRI(ns)))
	return b
}

// Pattern appends a graph pattern or filter line to the WHERE block.
// The template must contain only fixed clause text; caller values go
// through Literal or IRIRef first.
func (b *Builder) Pattern(line string) *Builder {
	b.patterns = append(b.patterns, line)
	return b
}

// Patternf appends a formatted pattern line. Arguments must already be
// safe for embedding (Literal, IRIRef, or integers).
func (b *Builder) Patternf(format string, args ...any) *Builder {
	return b.Pattern(fmt.Sprintf(format, args...))
}

// Union appends two pattern groups joined by UNION.
func (b *Builder) Union(left, right []string) *Builder {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, l := range left {
		sb.WriteString("    " + l + "\n")
	}
	sb.WriteString("  }\n  UNION\n  {\n")
	for _, l := range right {
		sb.WriteString("    " + l + "\n")
	}
	sb.WriteString("  }")
	return b.Pattern(sb.String())
}

// OrderBy sets the ORDER BY expression.
func (b *Builder) OrderBy(expr string) *Builder {
	b.orderBy = expr
	return b
}

// Limit sets LIMIT and marks it present.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	b.hasLimit = true
	return b
}

// Offset sets OFFSET.
func (b *Builder) Offset(n int) *Builder {
	b.offset = n
	return b
}

// String renders the complete query.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, p := range b.prefixes {
		sb.WriteString(p + "\n")
	}
	sb.WriteString("SELECT ")
	if b.distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(b.vars + " WHERE {\n")
	for _, p := range b.patterns {
		sb.WriteString("  " + p + "\n")
	}
	sb.WriteString("}")
	if b.orderBy != "" {
		sb.WriteString("\nORDER BY " + b.orderBy)
	}
	if b.hasLimit {
		fmt.Fprintf(&sb, "\nLIMIT %d", b.limit)
	}
	if b.offset >= 0 {
		fmt.Fprintf(&sb, "\nOFFSET %d", b.offset)
	}
	return sb.String()
}

// Literal renders s as an escaped double-quoted SPARQL string literal.
func Literal(s string) string {
	return `"` + sparql.EscapeLiteral(s) + `"`
}

// IRIRef renders s as a bracketed IRI reference.
func IRIRef(s string) string {
	return "<" + sparql.EscapeIRI(s) + ">"
}
