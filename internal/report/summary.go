package report

import (
	"fmt"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// Summary returns the one-line digest of records, e.g.
//
//	Created elements: 3 | project properties: 1 | store elements: 2 ( pagestore: 2 )
//
// Clauses with a zero count are left out.
func Summary(records []changeset.Record, description string) string {
	return Group(records).summary(description)
}

func (g *Grouped) summary(description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d", description, g.Total)

	if g.PropertyCount > 0 {
		fmt.Fprintf(&b, " | project properties: %d", g.PropertyCount)
	}

	if g.ElementCount > 0 {
		categories := g.Categories()
		parts := make([]string, 0, len(categories))
		for _, c := range categories {
			parts = append(parts, fmt.Sprintf("%s: %d", c.Lower(), len(g.Elements[c])))
		}
		fmt.Fprintf(&b, " | store elements: %d ( %s )", g.ElementCount, strings.Join(parts, ", "))
	}

	if g.EntityTypeCount > 0 {
		fmt.Fprintf(&b, " | %s", g.entityTypesLine())
	}

	return b.String()
}

func (g *Grouped) entityTypesLine() string {
	return fmt.Sprintf("entity types: %d ( schemas: %d, entities: %d )", g.EntityTypeCount, g.SchemaCount, g.EntityCount)
}
