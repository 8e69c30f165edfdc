// Package changeset models the outcome of a content synchronization
// operation: the change records reported per status bucket and the files
// each record touched. Records are produced by the export/import operation
// and treated as read-only by everything downstream.
package changeset

// Record is one synchronized item. Kind selects which of the variant fields
// are meaningful:
//
//	KindElement     Name, ElementType, Store
//	KindProperty    Property
//	KindEntityType  Schema, Name (entity type), EntityCount
//	KindMetadata    none
type Record struct {
	Kind   Kind
	Status Status
	Files  FileSet

	Name        string
	ElementType string // separator-delimited token, e.g. PAGE_FOLDER
	Store       StoreCategory
	Property    PropertyKind
	Schema      string
	EntityCount int
}

// NewElement creates a content-store element record
func NewElement(status Status, store StoreCategory, elementType, name string, files FileSet) Record {
	return Record{
		Kind:        KindElement,
		Status:      status,
		Files:       files,
		Name:        name,
		ElementType: elementType,
		Store:       store,
	}
}

// NewProperty creates a project property record. PropertyNone yields the
// metadata pseudo-property.
func NewProperty(status Status, kind PropertyKind, files FileSet) Record {
	if kind == PropertyNone {
		return NewMetadata(status, files)
	}
	return Record{
		Kind:     KindProperty,
		Status:   status,
		Files:    files,
		Property: kind,
	}
}

// NewMetadata creates the metadata pseudo-property record
func NewMetadata(status Status, files FileSet) Record {
	return Record{
		Kind:   KindMetadata,
		Status: status,
		Files:  files,
	}
}

// NewEntityType creates a record for one entity type of a schema
func NewEntityType(status Status, schema, entityType string, entities int, files FileSet) Record {
	return Record{
		Kind:        KindEntityType,
		Status:      status,
		Files:       files,
		Name:        entityType,
		Schema:      schema,
		EntityCount: entities,
	}
}

// IsMetadata reports whether the record is the metadata pseudo-property
func (r Record) IsMetadata() bool {
	return r.Kind == KindMetadata || (r.Kind == KindProperty && r.Property == PropertyNone)
}

// Result is the outcome of one export/import operation
type Result struct {
	Operation string
	Error     string
	Buckets   map[Status][]Record
}

// Bucket returns the records reported with the given status
func (r *Result) Bucket(status Status) []Record {
	if r == nil {
		return nil
	}
	return r.Buckets[status]
}

// Failed reports whether the operation itself reported an error
func (r *Result) Failed() bool {
	return r != nil && r.Error != ""
}
