// Package immutablecheck provides a go/analysis based analyzer that proves
// types marked with //immutablecheck:immutable are deeply immutable.
package immutablecheck

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/immutablecheck/internal"
	"github.com/mpyw/immutablecheck/internal/directives"
	"github.com/mpyw/immutablecheck/internal/directives/exempt"
	"github.com/mpyw/immutablecheck/internal/directives/ignore"
	"github.com/mpyw/immutablecheck/internal/directives/immutable"
	"github.com/mpyw/immutablecheck/internal/exemption"
	"github.com/mpyw/immutablecheck/internal/mutability"
	"github.com/mpyw/immutablecheck/internal/typeutil"
)

// Flags for the analyzer.
var (
	exemptionsFile string
	exemptTypes    string
	exemptMembers  string
	exemptPackages string
	unknownPolicy  string
	trace          bool
	debug          bool
)

func init() {
	Analyzer.Flags.StringVar(&exemptionsFile, "exemptions", "",
		"path to a YAML exemption registry")
	Analyzer.Flags.StringVar(&exemptTypes, "exempt-types", "",
		"comma-separated list of types to accept as immutable (e.g., *time.Location)")
	Analyzer.Flags.StringVar(&exemptMembers, "exempt-members", "",
		"comma-separated list of fields to accept as immutable (e.g., example.com/app.Config.cache)")
	Analyzer.Flags.StringVar(&exemptPackages, "exempt-packages", "",
		"comma-separated list of package globs whose types are accepted as immutable (e.g., golang.org/x/**)")
	Analyzer.Flags.StringVar(&unknownPolicy, "unknown", string(internal.UnknownReport),
		"what to do with types from other packages that cannot be proven immutable: report or allow")
	Analyzer.Flags.BoolVar(&trace, "trace", false, "append the resolution path to diagnostics")
	Analyzer.Flags.BoolVar(&debug, "debug", false, "log resolution steps to stderr")
}

// Analyzer is the main analyzer for immutablecheck.
var Analyzer = &analysis.Analyzer{
	Name:      "immutablecheck",
	Doc:       "checks that types marked //immutablecheck:immutable are deeply immutable",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{new(internal.ImmutableFact)},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	policy, err := internal.ParseUnknownPolicy(unknownPolicy)
	if err != nil {
		return nil, err
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	decls := directives.TypeDecls(pass, insp, skipFiles)

	store, err := buildStore(pass, decls)
	if err != nil {
		return nil, err
	}

	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	resolver := mutability.New(typeutil.NewOracle(pass.Pkg), store, mutability.WithLogger(buildLogger(pass)))
	runner := internal.NewRunner(resolver, policy, trace, ignoreMaps)

	if err := runner.Run(pass, immutable.Collect(decls)); err != nil {
		return nil, err
	}

	reportUnusedIgnores(pass, ignoreMaps, runner.Enabled())

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return skipFiles
}

// buildStore collects exemptions from flags, the registry file,
// //immutablecheck:exempt directives and facts of dependencies.
func buildStore(pass *analysis.Pass, decls []directives.TypeDecl) (*exemption.Store, error) {
	var all []exemption.Exemption

	all = append(all, exemption.Parse(exemption.KindType, exemptTypes)...)
	all = append(all, exemption.Parse(exemption.KindMember, exemptMembers)...)
	all = append(all, exemption.Parse(exemption.KindPackage, exemptPackages)...)

	if exemptionsFile != "" {
		loaded, err := exemption.LoadFile(exemptionsFile)
		if err != nil {
			return nil, err
		}
		all = append(all, loaded...)
	}

	all = append(all, exempt.Collect(decls)...)

	for _, f := range pass.AllObjectFacts() {
		fact, ok := f.Fact.(*internal.ImmutableFact)
		if !ok {
			continue
		}
		if _, ok := f.Object.(*types.TypeName); ok {
			all = append(all, exemption.New(exemption.KindType, fact.Identifier))
		}
	}

	store, err := exemption.NewStore(all...)
	if err != nil {
		return nil, fmt.Errorf("build exemptions: %w", err)
	}

	return store, nil
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

func buildLogger(pass *analysis.Pass) *slog.Logger {
	if !debug {
		return nil
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(handler).With(slog.String("package", pass.Pkg.Path()))
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledCheckers) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Checkers) == 0 {
				pass.Reportf(unused.Pos, "unused immutablecheck:ignore directive")
				continue
			}

			names := make([]string, len(unused.Checkers))
			for i, c := range unused.Checkers {
				names[i] = string(c)
			}
			pass.Reportf(unused.Pos, "unused immutablecheck:ignore directive for checker(s): %s", strings.Join(names, ", "))
		}
	}
}
