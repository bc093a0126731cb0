package scanner

import (
	"regexp"
	"sort"
	"strings"

	"github.com/CPADelaney/project-nyx/internal/mapping"
)

// The two recognized surface patterns. Member lists may contain letters,
// underscores, commas, and spaces; dotted paths are a single tracking.*
// segment, matching the deprecated module set.
var (
	fromImportPattern = regexp.MustCompile(`from\s+(tracking\.[a-zA-Z_]+)\s+import\s+([a-zA-Z_, ]+)`)
	importPattern     = regexp.MustCompile(`import\s+(tracking\.[a-zA-Z_]+)`)
)

// positioned pairs an occurrence with its match offset for ordering.
type positioned struct {
	occ   ImportOccurrence
	start int
}

// ScanContent returns every deprecated-import occurrence in content, in
// order of appearance. Module paths not present in the table's module
// namespace are silently ignored.
func ScanContent(content string, table *mapping.Table) []ImportOccurrence {
	var found []positioned

	for _, m := range fromImportPattern.FindAllStringSubmatchIndex(content, -1) {
		module := content[m[2]:m[3]]
		if _, ok := table.Module(module); !ok {
			continue
		}

		rawMembers := strings.Split(content[m[4]:m[5]], ",")
		members := make([]string, 0, len(rawMembers))
		for _, member := range rawMembers {
			members = append(members, strings.TrimSpace(member))
		}

		found = append(found, positioned{
			occ: ImportOccurrence{
				Type:    OccurrenceFromImport,
				Module:  module,
				Classes: members,
				Line:    lineAt(content, m[0]),
				Match:   content[m[0]:m[1]],
			},
			start: m[0],
		})
	}

	for _, m := range importPattern.FindAllStringSubmatchIndex(content, -1) {
		module := content[m[2]:m[3]]
		if _, ok := table.Module(module); !ok {
			continue
		}

		found = append(found, positioned{
			occ: ImportOccurrence{
				Type:   OccurrenceImport,
				Module: module,
				Line:   lineAt(content, m[0]),
				Match:  content[m[0]:m[1]],
			},
			start: m[0],
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].start < found[j].start
	})

	occurrences := make([]ImportOccurrence, len(found))
	for i, p := range found {
		occurrences[i] = p.occ
	}
	return occurrences
}

// lineAt computes the 1-based line number of a byte offset by counting the
// newlines preceding it.
func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
