package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CPADelaney/project-nyx/internal/mapping"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateReplacementCanonical(t *testing.T) {
	table := mapping.Default()

	// Both forms, any module: the replacement text is always identical.
	selective := ScanContent("from tracking.goal_generator import GoalGenerator\n", table)[0]
	direct := ScanContent("import tracking.self_preservation\n", table)[0]

	for _, occ := range []ImportOccurrence{selective, direct} {
		r := GenerateReplacement(occ)
		if r.New != UnifiedAccessorImport {
			t.Errorf("replacement for %q = %q, want canonical accessor import", occ.Match, r.New)
		}
		if r.Old != occ.Match {
			t.Errorf("Old = %q, want exact matched span %q", r.Old, occ.Match)
		}
		if r.Line != occ.Line {
			t.Errorf("Line = %d, want %d", r.Line, occ.Line)
		}
	}
}

func TestUpdateFileRewritesOnlyImportLine(t *testing.T) {
	content := "import os\n" +
		"from tracking.goal_generator import GoalGenerator\n" +
		"x = 1\n"
	path := writeFixture(t, t.TempDir(), "target.py", content)

	occurrences := ScanContent(content, mapping.Default())
	result, err := UpdateFile(path, content, occurrences)
	if err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	if !result.Updated {
		t.Error("Updated = false, want true")
	}
	if len(result.Replacements) != 1 {
		t.Errorf("got %d replacements, want 1", len(result.Replacements))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "import os\n" + UnifiedAccessorImport + "\nx = 1\n"
	if string(got) != want {
		t.Errorf("rewritten content:\n%q\nwant:\n%q", got, want)
	}
}

func TestUpdateFileIdempotent(t *testing.T) {
	content := "from tracking.redundancy_manager import RedundancyManager\n"
	path := writeFixture(t, t.TempDir(), "target.py", content)
	table := mapping.Default()

	occurrences := ScanContent(content, table)
	if _, err := UpdateFile(path, content, occurrences); err != nil {
		t.Fatal(err)
	}

	afterFirst, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Second pass: the canonical replacement does not match the deprecated
	// patterns, so nothing is found and nothing changes.
	secondOccs := ScanContent(string(afterFirst), table)
	if len(secondOccs) != 0 {
		t.Fatalf("second scan found %d occurrences, want 0", len(secondOccs))
	}
	result, err := UpdateFile(path, string(afterFirst), secondOccs)
	if err != nil {
		t.Fatal(err)
	}
	if result.Updated {
		t.Error("second pass reported Updated = true")
	}

	afterSecond, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(afterSecond) != string(afterFirst) {
		t.Error("second pass changed file content")
	}
}

func TestUpdateFileNoChangeNoWrite(t *testing.T) {
	content := "import os\n"
	path := writeFixture(t, t.TempDir(), "clean.py", content)

	result, err := UpdateFile(path, content, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Updated {
		t.Error("Updated = true for file with no occurrences")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Error("file content changed without occurrences")
	}
}

// Two occurrences with byte-identical matched text: each replacement
// consumes the first remaining textual occurrence, so both lines end up
// rewritten and both replacements are listed. Pinned as documented
// behavior.
func TestUpdateFileIdenticalMatchedText(t *testing.T) {
	content := "import tracking.ai_scaling\n" +
		"import tracking.ai_scaling\n"
	path := writeFixture(t, t.TempDir(), "dup.py", content)

	occurrences := ScanContent(content, mapping.Default())
	if len(occurrences) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(occurrences))
	}

	result, err := UpdateFile(path, content, occurrences)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Replacements) != 2 {
		t.Errorf("got %d replacements, want 2", len(result.Replacements))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := UnifiedAccessorImport + "\n" + UnifiedAccessorImport + "\n"
	if string(got) != want {
		t.Errorf("rewritten content:\n%q\nwant:\n%q", got, want)
	}
}
