package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	if table.ModuleCount() != 17 {
		t.Errorf("ModuleCount = %d, want 17", table.ModuleCount())
	}
	if table.ClassCount() != 14 {
		t.Errorf("ClassCount = %d, want 14", table.ClassCount())
	}
	if table.FunctionCount() != 3 {
		t.Errorf("FunctionCount = %d, want 3", table.FunctionCount())
	}
}

func TestModuleLookup(t *testing.T) {
	table := Default()

	testCases := []struct {
		path      string
		component string
		found     bool
	}{
		{"tracking.goal_generator", "improvement", true},
		{"tracking.self_preservation", "resilience", true},
		{"tracking.performance_tracker", "monitoring", true},
		{"tracking.ai_scaling", "scaling", true},
		{"tracking.tracking_system", "", false},
		{"os.path", "", false},
	}

	for _, tc := range testCases {
		component, found := table.Module(tc.path)
		if found != tc.found || component != tc.component {
			t.Errorf("Module(%q) = (%q, %v), want (%q, %v)",
				tc.path, component, found, tc.component, tc.found)
		}
	}
}

func TestNamespacesAreIndependent(t *testing.T) {
	table := Default()

	// A class name must not resolve in the module or function namespaces.
	if _, found := table.Module("RedundancyManager"); found {
		t.Error("class name resolved in module namespace")
	}
	if _, found := table.Function("RedundancyManager"); found {
		t.Error("class name resolved in function namespace")
	}
	if component, found := table.Class("RedundancyManager"); !found || component != "resilience" {
		t.Errorf("Class(RedundancyManager) = (%q, %v), want (resilience, true)", component, found)
	}
}

func TestFunctionLookupIsQualified(t *testing.T) {
	table := Default()

	qualified, found := table.Function("measure_execution_time")
	if !found || qualified != "monitoring.measure_execution_time" {
		t.Errorf("Function(measure_execution_time) = (%q, %v)", qualified, found)
	}
}

func TestLoadMissingOverlay(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load with missing overlay: %v", err)
	}
	if table.ModuleCount() != 17 {
		t.Errorf("missing overlay should yield default table, got %d modules", table.ModuleCount())
	}
}

func TestLoadOverlayMerges(t *testing.T) {
	dir := t.TempDir()
	overlayPath := filepath.Join(dir, "mappings.toml")
	overlay := `
[modules]
"tracking.legacy_probe" = "monitoring"

[classes]
LegacyProbe = "monitoring"

[functions]
probe_latency = "monitoring.probe_latency"
`
	if err := os.WriteFile(overlayPath, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(overlayPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if component, found := table.Module("tracking.legacy_probe"); !found || component != "monitoring" {
		t.Errorf("overlay module not merged: (%q, %v)", component, found)
	}
	if component, found := table.Class("LegacyProbe"); !found || component != "monitoring" {
		t.Errorf("overlay class not merged: (%q, %v)", component, found)
	}
	if qualified, found := table.Function("probe_latency"); !found || qualified != "monitoring.probe_latency" {
		t.Errorf("overlay function not merged: (%q, %v)", qualified, found)
	}
	// Defaults survive the merge.
	if _, found := table.Module("tracking.goal_generator"); !found {
		t.Error("default module entry lost after overlay merge")
	}
}

func TestLoadMalformedOverlay(t *testing.T) {
	dir := t.TempDir()
	overlayPath := filepath.Join(dir, "mappings.toml")
	if err := os.WriteFile(overlayPath, []byte("[modules\nbroken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(overlayPath); err == nil {
		t.Error("Load should fail on malformed overlay")
	}
}
