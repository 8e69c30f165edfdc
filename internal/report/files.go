package report

import (
	"fmt"
	"sort"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// writeFiles lists the touched files of one record at debug level. depth is
// the level below the record line.
func writeFiles(sink Sink, depth int, files changeset.FileSet) {
	prefix := Spacer(depth)

	writeRefs(sink, prefix, "Created files", files.Created)
	writeRefs(sink, prefix, "Updated files", files.Updated)
	writeRefs(sink, prefix, "Deleted files", files.Deleted)

	if len(files.Moved) == 0 {
		return
	}
	moved := append([]changeset.Move(nil), files.Moved...)
	sort.SliceStable(moved, func(i, j int) bool {
		if moved[i].From.Name != moved[j].From.Name {
			return moved[i].From.Name < moved[j].From.Name
		}
		if moved[i].From.Path != moved[j].From.Path {
			return moved[i].From.Path < moved[j].From.Path
		}
		return moved[i].To.Path < moved[j].To.Path
	})

	sink.Debug(fmt.Sprintf("%s- Moved files: %d", prefix, len(moved)))
	for _, m := range moved {
		sink.Debug(fmt.Sprintf("%s - %s ( from '%s' to '%s' )", prefix, m.From.Name, m.From.Dir(), m.To.Dir()))
	}
}

func writeRefs(sink Sink, prefix, description string, refs []changeset.FileRef) {
	if len(refs) == 0 {
		return
	}
	sorted := append([]changeset.FileRef(nil), refs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Path < sorted[j].Path
	})

	sink.Debug(fmt.Sprintf("%s- %s: %d", prefix, description, len(sorted)))
	for _, f := range sorted {
		sink.Debug(fmt.Sprintf("%s - %s", prefix, f.Path))
	}
}
