// Package ignore handles //immutablecheck:ignore directives.
package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"

	"github.com/mpyw/immutablecheck/internal/directives"
)

// Name is the directive name.
const Name = "ignore"

// CheckerName identifies a class of diagnostics that can be ignored.
type CheckerName string

// Valid checker names.
const (
	// Mutable covers types proven mutable.
	Mutable CheckerName = "mutable"
	// Unknown covers types that cannot be proven immutable.
	Unknown CheckerName = "unknown"
)

// AllCheckerNames returns all valid checker names.
func AllCheckerNames() []CheckerName {
	return []CheckerName{Mutable, Unknown}
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos      token.Pos
	checkers []CheckerName // empty = all
	used     map[CheckerName]bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledCheckers tracks which checkers can produce diagnostics.
type EnabledCheckers map[CheckerName]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if checkers, ok := parseIgnoreComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:      c.Pos(),
					checkers: checkers,
					used:     make(map[CheckerName]bool),
				}
			}
		}
	}

	return m
}

// parseIgnoreComment parses an ignore directive and returns the checker names.
// Returns nil slice if no specific checkers are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //immutablecheck:ignore                  -> ignore all checkers
//   - //immutablecheck:ignore mutable          -> ignore specific checker
//   - //immutablecheck:ignore mutable,unknown  -> ignore multiple checkers
//   - //immutablecheck:ignore - reason         -> ignore all with comment
//   - //immutablecheck:ignore unknown - reason -> ignore specific with comment
func parseIgnoreComment(text string) ([]CheckerName, bool) {
	name, rest, ok := directives.Parse(text)
	if !ok || name != Name {
		return nil, false
	}

	// Stop at comment markers: " - " or " //".
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	var checkers []CheckerName

	for part := range strings.SplitSeq(rest, ",") {
		name := CheckerName(strings.TrimSpace(part))
		if name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore reports whether the given line should be ignored for the
// checker. The same line and the previous line are consulted, and a
// matching entry is marked as used.
func (m Map) ShouldIgnore(line int, checker CheckerName) bool {
	if m.shouldIgnoreEntry(m[line], checker) {
		return true
	}
	if m.shouldIgnoreEntry(m[line-1], checker) {
		return true
	}

	return false
}

func (m Map) shouldIgnoreEntry(entry *Entry, checker CheckerName) bool {
	if entry == nil {
		return false
	}

	if len(entry.checkers) == 0 || slices.Contains(entry.checkers, checker) {
		entry.used[checker] = true
		return true
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos      token.Pos
	Checkers []CheckerName // empty if the entire directive is unused
}

// GetUnusedIgnores returns ignore directives that were not used, ordered
// by position. Checker names that are not enabled are always reported.
func (m Map) GetUnusedIgnores(enabled EnabledCheckers) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.checkers) == 0 {
			anyUsed := false
			for checker := range enabled {
				if entry.used[checker] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var unusedCheckers []CheckerName
		for _, checker := range entry.checkers {
			if !enabled[checker] || !entry.used[checker] {
				unusedCheckers = append(unusedCheckers, checker)
			}
		}
		if len(unusedCheckers) > 0 {
			unused = append(unused, UnusedIgnore{Pos: entry.pos, Checkers: unusedCheckers})
		}
	}

	slices.SortFunc(unused, func(a, b UnusedIgnore) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return unused
}
