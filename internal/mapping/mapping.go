// Package mapping holds the lookup tables that drive the import migration:
// which deprecated tracking modules, classes, and functions map to which
// component of the consolidated tracking system. The three namespaces are
// independent and are never merged; a name is looked up only in its own
// namespace. Tables are built once at startup and read-only afterwards.
package mapping

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Table maps deprecated identifiers to consolidated components.
type Table struct {
	modules   map[string]string
	classes   map[string]string
	functions map[string]string
}

// Default returns the fixed production table.
func Default() *Table {
	return &Table{
		modules: map[string]string{
			// AI modules
			"tracking.ai_autonomous_expansion": "scaling",
			"tracking.ai_scaling":              "scaling",
			"tracking.ai_network_coordinator":  "scaling",

			// Performance modules
			"tracking.performance_tracker": "monitoring",
			"tracking.bottleneck_detector": "monitoring",

			// Redundancy and healing modules
			"tracking.redundancy_manager":               "resilience",
			"tracking.self_healing":                     "resilience",
			"tracking.self_infrastructure_optimization": "scaling",
			"tracking.self_preservation":                "resilience",
			"tracking.self_execution":                   "resilience",
			"tracking.self_propagation":                 "resilience",
			"tracking.self_sustainability":              "scaling",

			// Improvement modules
			"tracking.goal_generator":         "improvement",
			"tracking.feature_expansion":      "improvement",
			"tracking.meta_learning":          "improvement",
			"tracking.intelligence_expansion": "improvement",
			"tracking.final_recursive_lock":   "improvement",
		},
		classes: map[string]string{
			"AIAutonomousExpansion":        "scaling",
			"AIScalingManager":             "scaling",
			"AINetworkCoordinator":         "scaling",
			"AIEvolution":                  "improvement",
			"AISelfHealing":                "resilience",
			"AIInfrastructureOptimization": "scaling",
			"AIFinalRecursiveLock":         "improvement",
			"FeatureExpansion":             "improvement",
			"GoalGenerator":                "improvement",
			"MetaLearning":                 "improvement",
			"RedundancyManager":            "resilience",
			"SelfPreservation":             "resilience",
			"SelfExecutionManager":         "resilience",
			"SelfPropagation":              "resilience",
		},
		// Function values are already component-qualified.
		functions: map[string]string{
			"measure_execution_time": "monitoring.measure_execution_time",
			"profile_execution":      "monitoring.profile_execution",
			"detect_bottlenecks":     "monitoring.detect_bottlenecks",
		},
	}
}

// overlayFile is the on-disk shape of a mapping overlay.
type overlayFile struct {
	Modules   map[string]string `toml:"modules"`
	Classes   map[string]string `toml:"classes"`
	Functions map[string]string `toml:"functions"`
}

// Load returns the default table, merged with an optional TOML overlay.
// A missing overlay file is not an error; the default table is returned.
// The returned table is fully constructed before use and never mutated
// afterwards.
func Load(overlayPath string) (*Table, error) {
	table := Default()
	if overlayPath == "" {
		return table, nil
	}

	if _, err := os.Stat(overlayPath); os.IsNotExist(err) {
		return table, nil
	}

	var overlay overlayFile
	if _, err := toml.DecodeFile(overlayPath, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse mapping overlay %s: %w", overlayPath, err)
	}

	for path, component := range overlay.Modules {
		table.modules[path] = component
	}
	for name, component := range overlay.Classes {
		table.classes[name] = component
	}
	for name, qualified := range overlay.Functions {
		table.functions[name] = qualified
	}

	return table, nil
}

// Module looks up a dotted module path in the module namespace.
func (t *Table) Module(path string) (string, bool) {
	component, ok := t.modules[path]
	return component, ok
}

// Class looks up a class name in the class namespace.
func (t *Table) Class(name string) (string, bool) {
	component, ok := t.classes[name]
	return component, ok
}

// Function looks up a bare function name in the function namespace.
// The returned value is already component-qualified.
func (t *Table) Function(name string) (string, bool) {
	qualified, ok := t.functions[name]
	return qualified, ok
}

// ModuleCount reports the number of module-namespace entries.
func (t *Table) ModuleCount() int { return len(t.modules) }

// ClassCount reports the number of class-namespace entries.
func (t *Table) ClassCount() int { return len(t.classes) }

// FunctionCount reports the number of function-namespace entries.
func (t *Table) FunctionCount() int { return len(t.functions) }
