package changeset

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a Result
type Document struct {
	Operation    string           `yaml:"operation"`
	Error        string           `yaml:"error"`
	Created      []DocumentRecord `yaml:"created"`
	Updated      []DocumentRecord `yaml:"updated"`
	Deleted      []DocumentRecord `yaml:"deleted"`
	Moved        []DocumentRecord `yaml:"moved"`
	LostAndFound []DocumentRecord `yaml:"lost_and_found"`
}

// DocumentRecord is the on-disk form of a Record
type DocumentRecord struct {
	Kind       string        `yaml:"kind"`
	Name       string        `yaml:"name"`
	Type       string        `yaml:"type"`
	Store      string        `yaml:"store"`
	Property   string        `yaml:"property"`
	Schema     string        `yaml:"schema"`
	EntityType string        `yaml:"entity_type"`
	Entities   int           `yaml:"entities"`
	Files      DocumentFiles `yaml:"files"`
}

// DocumentFiles is the on-disk form of a FileSet
type DocumentFiles struct {
	Created []string       `yaml:"created"`
	Updated []string       `yaml:"updated"`
	Deleted []string       `yaml:"deleted"`
	Moved   []DocumentMove `yaml:"moved"`
}

// DocumentMove is the on-disk form of a Move
type DocumentMove struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LoadDocument reads a YAML or JSON result document from path
func LoadDocument(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result document: %w", err)
	}
	return DecodeDocument(bytes.NewReader(data))
}

// DecodeDocument parses a result document. An empty input yields an empty
// Result.
func DecodeDocument(r io.Reader) (*Result, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse result document: %w", err)
	}
	return doc.Result()
}

// Result converts the document into a validated Result
func (d *Document) Result() (*Result, error) {
	result := &Result{
		Operation: d.Operation,
		Error:     d.Error,
		Buckets:   make(map[Status][]Record),
	}

	buckets := map[Status][]DocumentRecord{
		StatusCreated:      d.Created,
		StatusUpdated:      d.Updated,
		StatusDeleted:      d.Deleted,
		StatusMoved:        d.Moved,
		StatusLostAndFound: d.LostAndFound,
	}

	for _, status := range Statuses() {
		entries := buckets[status]
		if len(entries) == 0 {
			continue
		}
		records := make([]Record, 0, len(entries))
		for i, entry := range entries {
			record, err := entry.record(status)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", status, i, err)
			}
			records = append(records, record)
		}
		result.Buckets[status] = records
	}

	return result, nil
}

func (e DocumentRecord) record(status Status) (Record, error) {
	files := e.Files.fileSet()

	switch e.Kind {
	case "element":
		if e.Name == "" {
			return Record{}, fmt.Errorf("element name is required")
		}
		store, err := ParseStoreCategory(e.Store)
		if err != nil {
			return Record{}, err
		}
		return NewElement(status, store, e.Type, e.Name, files), nil

	case "property":
		kind, err := ParsePropertyKind(e.Property)
		if err != nil {
			return Record{}, err
		}
		return NewProperty(status, kind, files), nil

	case "metadata":
		return NewMetadata(status, files), nil

	case "entity_type":
		if e.Schema == "" {
			return Record{}, fmt.Errorf("entity type schema is required")
		}
		if e.EntityType == "" {
			return Record{}, fmt.Errorf("entity type name is required")
		}
		if e.Entities < 0 {
			return Record{}, fmt.Errorf("entity count must not be negative: %d", e.Entities)
		}
		return NewEntityType(status, e.Schema, e.EntityType, e.Entities, files), nil

	default:
		return Record{}, fmt.Errorf("unknown record kind: %q (must be element, property, metadata, or entity_type)", e.Kind)
	}
}

func (f DocumentFiles) fileSet() FileSet {
	b := NewFileSetBuilder().
		Created(f.Created...).
		Updated(f.Updated...).
		Deleted(f.Deleted...)
	for _, m := range f.Moved {
		b.Moved(m.From, m.To)
	}
	return b.Build()
}
