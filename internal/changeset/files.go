package changeset

import "strings"

// FileRef is a single file touched by an operation
type FileRef struct {
	Path string
	Name string // leaf segment of Path
}

// NewFileRef builds a FileRef whose Name is the segment after the last "/"
func NewFileRef(path string) FileRef {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return FileRef{Path: path, Name: name}
}

// Dir returns the part of Path before the last separator, or Path itself
// for root-level files
func (f FileRef) Dir() string {
	if i := strings.LastIndex(f.Path, "/"); i >= 0 {
		return f.Path[:i]
	}
	return f.Path
}

// Move is a file that changed location
type Move struct {
	From FileRef
	To   FileRef
}

// FileSet holds the four change buckets of one record. The zero value is
// the empty set.
type FileSet struct {
	Created []FileRef
	Updated []FileRef
	Deleted []FileRef
	Moved   []Move
}

// Len returns the number of entries across all buckets
func (s FileSet) Len() int {
	return len(s.Created) + len(s.Updated) + len(s.Deleted) + len(s.Moved)
}

// Empty reports whether no bucket holds an entry
func (s FileSet) Empty() bool {
	return s.Len() == 0
}

// FileSetBuilder accumulates files, keeping paths unique per bucket
type FileSetBuilder struct {
	set  FileSet
	seen map[string]map[string]bool
}

// NewFileSetBuilder returns an empty builder
func NewFileSetBuilder() *FileSetBuilder {
	return &FileSetBuilder{seen: make(map[string]map[string]bool)}
}

func (b *FileSetBuilder) first(bucket, key string) bool {
	keys, ok := b.seen[bucket]
	if !ok {
		keys = make(map[string]bool)
		b.seen[bucket] = keys
	}
	if keys[key] {
		return false
	}
	keys[key] = true
	return true
}

// Created adds created files
func (b *FileSetBuilder) Created(paths ...string) *FileSetBuilder {
	for _, p := range paths {
		if b.first("created", p) {
			b.set.Created = append(b.set.Created, NewFileRef(p))
		}
	}
	return b
}

// Updated adds updated files
func (b *FileSetBuilder) Updated(paths ...string) *FileSetBuilder {
	for _, p := range paths {
		if b.first("updated", p) {
			b.set.Updated = append(b.set.Updated, NewFileRef(p))
		}
	}
	return b
}

// Deleted adds deleted files
func (b *FileSetBuilder) Deleted(paths ...string) *FileSetBuilder {
	for _, p := range paths {
		if b.first("deleted", p) {
			b.set.Deleted = append(b.set.Deleted, NewFileRef(p))
		}
	}
	return b
}

// Moved adds a moved file pair
func (b *FileSetBuilder) Moved(from, to string) *FileSetBuilder {
	if b.first("moved", from+"\x00"+to) {
		b.set.Moved = append(b.set.Moved, Move{From: NewFileRef(from), To: NewFileRef(to)})
	}
	return b
}

// Build returns the accumulated set
func (b *FileSetBuilder) Build() FileSet {
	return b.set
}
