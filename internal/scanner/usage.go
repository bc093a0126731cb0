package scanner

import (
	"regexp"
	"strings"

	"github.com/CPADelaney/project-nyx/internal/mapping"
)

// componentBinding maps one imported name to its unified accessor path.
type componentBinding struct {
	name string
	path string
}

// UsageUpdates inspects content for call sites of the deprecated names
// referenced by the given occurrences and emits advisory rewrite hints.
//
// For each name bound to a component, a `var = Name()` assignment yields an
// initialization suggestion, and every later `var.method(` call yields a
// method-call suggestion. The captured call text runs from the call start
// through the first closing parenthesis, so calls with nested parenthesized
// arguments are truncated; this is a known precision limit of the
// heuristic, kept deliberately.
func UsageUpdates(content string, occurrences []ImportOccurrence, table *mapping.Table) []UsageUpdate {
	bindings := collectBindings(occurrences, table)
	updates := make([]UsageUpdate, 0)

	for _, b := range bindings {
		initPattern := regexp.MustCompile(`(\w+)\s*=\s*` + regexp.QuoteMeta(b.name) + `\(\)`)

		for _, m := range initPattern.FindAllStringSubmatchIndex(content, -1) {
			varName := content[m[2]:m[3]]

			updates = append(updates, UsageUpdate{
				Type: UsageInitialization,
				Old:  varName + " = " + b.name + "()",
				New:  UnifiedAccessorInit,
				Line: lineAt(content, m[0]),
			})

			callPattern := regexp.MustCompile(regexp.QuoteMeta(varName) + `\.(\w+)\(`)
			for _, cm := range callPattern.FindAllStringSubmatchIndex(content, -1) {
				if cm[0] <= m[0] {
					continue // only calls after the initialization
				}
				method := content[cm[2]:cm[3]]

				updates = append(updates, UsageUpdate{
					Type: UsageMethodCall,
					Old:  captureCall(content, cm[0]),
					New:  b.path + "." + method + "(",
					Line: lineAt(content, cm[0]),
				})
			}
		}
	}

	return updates
}

// collectBindings derives the name-to-unified-path bindings implied by the
// occurrences: selective-import members resolved through the class and
// function namespaces, and module basenames resolved through the module
// namespace. First-seen order is preserved; a later lookup for the same
// name replaces its path, matching re-imports shadowing earlier ones.
func collectBindings(occurrences []ImportOccurrence, table *mapping.Table) []componentBinding {
	var order []string
	paths := make(map[string]string)

	bind := func(name, path string) {
		if _, seen := paths[name]; !seen {
			order = append(order, name)
		}
		paths[name] = path
	}

	for _, occ := range occurrences {
		if occ.Type == OccurrenceFromImport {
			for _, member := range occ.Classes {
				member = strings.TrimSpace(member)
				if component, ok := table.Class(member); ok {
					bind(member, "tracking_system."+component)
				} else if qualified, ok := table.Function(member); ok {
					bind(member, "tracking_system."+qualified)
				}
			}
		}

		if component, ok := table.Module(occ.Module); ok {
			parts := strings.Split(occ.Module, ".")
			moduleName := parts[len(parts)-1]
			bind(moduleName, "tracking_system."+component)
		}
	}

	bindings := make([]componentBinding, 0, len(order))
	for _, name := range order {
		bindings = append(bindings, componentBinding{name: name, path: paths[name]})
	}
	return bindings
}

// captureCall returns the call expression starting at offset, up to and
// including the first closing parenthesis. Not a balanced-delimiter scan.
func captureCall(content string, offset int) string {
	rest := content[offset:]
	if i := strings.Index(rest, ")"); i >= 0 {
		return rest[:i+1]
	}
	return rest + ")"
}
