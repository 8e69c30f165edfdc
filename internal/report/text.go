package report

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// DirectoryOf returns path up to, excluding, the last "/". A path without
// separator is returned unchanged.
func DirectoryOf(path string) string {
	return changeset.NewFileRef(path).Dir()
}

// DisplayLabel turns a separator-delimited token into a camel-cased label,
// e.g. DisplayLabel("_", "SCHEDULE_ENTRIES") == "ScheduleEntries". Empty
// segments are dropped.
func DisplayLabel(separator, token string) string {
	var segments []string
	if separator == "" {
		segments = []string{token}
	} else {
		segments = strings.Split(token, separator)
	}

	var b strings.Builder
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(strings.ToLower(segment[size:]))
	}
	return b.String()
}

// Spacer returns n blanks, or "" for n <= 0
func Spacer(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// FileCountPhrase summarizes a file set as
// " ( created files: 1, updated files: 2, deleted files: 3, moved files: 4 )",
// leaving out zero counts. An empty set yields "".
func FileCountPhrase(files changeset.FileSet) string {
	var clauses []string
	add := func(label string, n int) {
		if n > 0 {
			clauses = append(clauses, fmt.Sprintf("%s files: %d", label, n))
		}
	}
	add("created", len(files.Created))
	add("updated", len(files.Updated))
	add("deleted", len(files.Deleted))
	add("moved", len(files.Moved))

	if len(clauses) == 0 {
		return ""
	}
	return " ( " + strings.Join(clauses, ", ") + " )"
}
