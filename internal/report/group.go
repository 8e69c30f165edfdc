package report

import (
	"sort"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// Grouped is the classified, ordered view of one record collection. It is
// built fresh by Group; the input slice is never reordered.
type Grouped struct {
	// Properties in canonical property kind order, metadata excluded
	Properties []changeset.Record
	// Elements per store category, each list ordered by name
	Elements map[changeset.StoreCategory][]changeset.Record
	// EntityTypes per schema, each list ordered by entity type name
	EntityTypes map[string][]changeset.Record

	Total           int
	PropertyCount   int
	ElementCount    int
	EntityTypeCount int
	SchemaCount     int
	EntityCount     int
}

// Group classifies records into properties, store elements and entity
// types. The result does not depend on the order of records. Metadata and
// elements without a declared store category are skipped.
func Group(records []changeset.Record) *Grouped {
	g := &Grouped{
		Elements:    make(map[changeset.StoreCategory][]changeset.Record),
		EntityTypes: make(map[string][]changeset.Record),
	}

	for _, r := range records {
		if r.IsMetadata() {
			continue
		}
		switch r.Kind {
		case changeset.KindProperty:
			g.Properties = append(g.Properties, r)
		case changeset.KindElement:
			if !r.Store.Valid() {
				continue
			}
			g.Elements[r.Store] = append(g.Elements[r.Store], r)
			g.ElementCount++
		case changeset.KindEntityType:
			g.EntityTypes[r.Schema] = append(g.EntityTypes[r.Schema], r)
			g.EntityTypeCount++
			g.EntityCount += r.EntityCount
		default:
			continue
		}
		g.Total++
	}

	g.PropertyCount = len(g.Properties)
	g.SchemaCount = len(g.EntityTypes)

	sort.SliceStable(g.Properties, func(i, j int) bool {
		a, b := g.Properties[i], g.Properties[j]
		if a.Property != b.Property {
			return a.Property < b.Property
		}
		return filesLess(a.Files, b.Files)
	})
	for _, list := range g.Elements {
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i], list[j]
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			if a.ElementType != b.ElementType {
				return a.ElementType < b.ElementType
			}
			return filesLess(a.Files, b.Files)
		})
	}
	for _, list := range g.EntityTypes {
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i], list[j]
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			if a.EntityCount != b.EntityCount {
				return a.EntityCount < b.EntityCount
			}
			return filesLess(a.Files, b.Files)
		})
	}

	return g
}

// Categories returns the non-empty store categories in declared order
func (g *Grouped) Categories() []changeset.StoreCategory {
	var categories []changeset.StoreCategory
	for _, c := range changeset.StoreCategories() {
		if len(g.Elements[c]) > 0 {
			categories = append(categories, c)
		}
	}
	return categories
}

// Schemas returns the schema identifiers in alphabetical order
func (g *Grouped) Schemas() []string {
	schemas := make([]string, 0, len(g.EntityTypes))
	for schema := range g.EntityTypes {
		schemas = append(schemas, schema)
	}
	sort.Strings(schemas)
	return schemas
}

// SchemaEntities returns the sum of entity counts within one schema
func (g *Grouped) SchemaEntities(schema string) int {
	var n int
	for _, r := range g.EntityTypes[schema] {
		n += r.EntityCount
	}
	return n
}

// filesLess orders records that tie on every other key: first by the file
// count phrase, then by the touched paths themselves.
func filesLess(a, b changeset.FileSet) bool {
	if pa, pb := FileCountPhrase(a), FileCountPhrase(b); pa != pb {
		return pa < pb
	}
	return filesKey(a) < filesKey(b)
}

// filesKey flattens a file set into a string independent of the order in
// which its files were collected
func filesKey(files changeset.FileSet) string {
	var b strings.Builder
	for _, refs := range [][]changeset.FileRef{files.Created, files.Updated, files.Deleted} {
		paths := make([]string, 0, len(refs))
		for _, f := range refs {
			paths = append(paths, f.Path)
		}
		sort.Strings(paths)
		b.WriteString(strings.Join(paths, "\n"))
		b.WriteByte(0)
	}
	moves := make([]string, 0, len(files.Moved))
	for _, m := range files.Moved {
		moves = append(moves, m.From.Path+"\x01"+m.To.Path)
	}
	sort.Strings(moves)
	b.WriteString(strings.Join(moves, "\n"))
	return b.String()
}
