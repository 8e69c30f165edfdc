// Package report renders the change records of a synchronization operation
// as an indented detail tree and as one-line summaries.
//
// A detail tree for the created bucket of an import looks like
//
//	Created elements: 4
//	 - project properties: 1
//	  - Users ( created files: 1 )
//	 - store elements: 2
//	  - pagestore: 2
//	   - Page: 'home'       ( updated files: 2 )
//	   - PageFolder: 'root' ( created files: 1 )
//	 - entity types: 1 ( schemas: 1, entities: 7 )
//	  - Schema: 'products' ( entity types: 1, entities: 7 )
//	   - EntityType: 'product' ( entities: 7 )
//
// Nothing is written unless the sink has info enabled. At debug level the
// touched files of every leaf follow its line.
package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// labelSeparator splits property kind and element type tokens
const labelSeparator = "_"

// Renderer writes detail trees to a Sink
type Renderer struct {
	// AlignColumn is the minimal column at which the file count phrase of a
	// leaf line starts. Siblings are always aligned to the widest label.
	AlignColumn int
}

// Render writes the detail tree of records with the default Renderer
func Render(sink Sink, records []changeset.Record, description string) {
	Renderer{}.Render(sink, records, description)
}

// Render writes the detail tree of records. Nothing is written unless the
// sink has info enabled. It panics if sink is nil.
func (r Renderer) Render(sink Sink, records []changeset.Record, description string) {
	if sink == nil {
		panic("report: Render called with nil sink")
	}
	if !sink.InfoEnabled() {
		return
	}

	g := Group(records)
	sink.Info(fmt.Sprintf("%s: %d", description, g.Total))
	if g.Total == 0 {
		return
	}

	debug := sink.DebugEnabled()

	if g.PropertyCount > 0 {
		sink.Info(indent(1, fmt.Sprintf("project properties: %d", g.PropertyCount)))
		leaves := make([]leaf, 0, len(g.Properties))
		for _, p := range g.Properties {
			leaves = append(leaves, leaf{label: propertyLabel(p), files: p.Files})
		}
		r.writeLeaves(sink, 2, leaves, debug)
	}

	if g.ElementCount > 0 {
		sink.Info(indent(1, fmt.Sprintf("store elements: %d", g.ElementCount)))
		for _, c := range g.Categories() {
			elements := g.Elements[c]
			sink.Info(indent(2, fmt.Sprintf("%s: %d", c.Lower(), len(elements))))
			leaves := make([]leaf, 0, len(elements))
			for _, e := range elements {
				leaves = append(leaves, leaf{
					label: fmt.Sprintf("%s: '%s'", elementTypeLabel(e), e.Name),
					files: e.Files,
				})
			}
			r.writeLeaves(sink, 3, leaves, debug)
		}
	}

	if g.EntityTypeCount > 0 {
		sink.Info(indent(1, g.entityTypesLine()))
		for _, schema := range g.Schemas() {
			entityTypes := g.EntityTypes[schema]
			sink.Info(indent(2, fmt.Sprintf("Schema: '%s' ( entity types: %d, entities: %d )",
				schema, len(entityTypes), g.SchemaEntities(schema))))
			for _, et := range entityTypes {
				sink.Info(indent(3, fmt.Sprintf("EntityType: '%s' ( entities: %d )", et.Name, et.EntityCount)))
				if debug {
					writeFiles(sink, 4, et.Files)
				}
			}
		}
	}
}

type leaf struct {
	label string
	files changeset.FileSet
}

// writeLeaves writes sibling lines whose file count phrases start at the
// same column
func (r Renderer) writeLeaves(sink Sink, depth int, leaves []leaf, debug bool) {
	column := r.AlignColumn
	lines := make([]string, len(leaves))
	for i, l := range leaves {
		lines[i] = indent(depth, l.label)
		if w := utf8.RuneCountInString(lines[i]); w > column {
			column = w
		}
	}

	for i, l := range leaves {
		line := lines[i]
		if phrase := FileCountPhrase(l.files); phrase != "" {
			line += Spacer(column-utf8.RuneCountInString(line)) + phrase
		}
		sink.Info(line)
		if debug {
			writeFiles(sink, depth+1, l.files)
		}
	}
}

// indent prefixes text with the blanks and dash of a tree level
func indent(depth int, text string) string {
	return Spacer(depth) + "- " + text
}

func propertyLabel(r changeset.Record) string {
	return DisplayLabel(labelSeparator, r.Property.String())
}

func elementTypeLabel(r changeset.Record) string {
	if label := DisplayLabel(labelSeparator, r.ElementType); label != "" {
		return label
	}
	return "Element"
}
