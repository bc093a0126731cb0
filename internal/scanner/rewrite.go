package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// GenerateReplacement produces the substitution for one occurrence. Both
// syntactic forms collapse to the same canonical unified-accessor import;
// call sites are expected to be updated in a follow-up manual pass guided
// by the usage suggestions.
func GenerateReplacement(occ ImportOccurrence) Replacement {
	return Replacement{
		Old:  occ.Match,
		New:  UnifiedAccessorImport,
		Line: occ.Line,
	}
}

// UpdateFile applies the replacements for the given occurrences to path,
// writing the file back only when its content actually changed. Each
// replacement substitutes the first textual occurrence of its old span.
// Two occurrences sharing identical matched text therefore collapse to a
// single distinct substitution target while both remain in the replacement
// list; this is an accepted quirk of literal-text substitution.
func UpdateFile(path string, content string, occurrences []ImportOccurrence) (UpdateResult, error) {
	result := UpdateResult{
		File:         path,
		Replacements: make([]Replacement, 0, len(occurrences)),
	}

	updated := content
	for _, occ := range occurrences {
		r := GenerateReplacement(occ)
		updated = strings.Replace(updated, r.Old, r.New, 1)
		result.Replacements = append(result.Replacements, r)
	}

	if updated == content {
		return result, nil
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		// Updated stays false: a file whose write failed was not updated.
		return result, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}

	result.Updated = true
	return result, nil
}
