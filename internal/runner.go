package internal

import (
	"fmt"
	"go/token"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/immutablecheck/internal/directives/ignore"
	"github.com/mpyw/immutablecheck/internal/directives/immutable"
	"github.com/mpyw/immutablecheck/internal/mutability"
	"github.com/mpyw/immutablecheck/internal/typeutil"
)

// UnknownPolicy decides what happens to types that cannot be proven
// immutable because they depend on another package.
type UnknownPolicy string

const (
	// UnknownReport reports unknown types like mutable ones.
	UnknownReport UnknownPolicy = "report"
	// UnknownAllow accepts unknown types silently.
	UnknownAllow UnknownPolicy = "allow"
)

// ParseUnknownPolicy parses the -unknown flag value.
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch p := UnknownPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case UnknownReport, UnknownAllow:
		return p, nil
	default:
		return "", fmt.Errorf("%w: -unknown=%q (want %q or %q)", ErrInvalidFlag, s, UnknownReport, UnknownAllow)
	}
}

// Runner resolves every marked type of a pass and reports the ones that
// cannot be proven immutable.
type Runner struct {
	resolver   *mutability.Resolver
	unknown    UnknownPolicy
	trace      bool
	ignoreMaps map[string]ignore.Map
}

// NewRunner creates a runner.
func NewRunner(
	resolver *mutability.Resolver,
	unknown UnknownPolicy,
	trace bool,
	ignoreMaps map[string]ignore.Map,
) *Runner {
	return &Runner{
		resolver:   resolver,
		unknown:    unknown,
		trace:      trace,
		ignoreMaps: ignoreMaps,
	}
}

// Enabled returns the checkers that can produce diagnostics.
func (r *Runner) Enabled() ignore.EnabledCheckers {
	enabled := ignore.EnabledCheckers{ignore.Mutable: true}
	if r.unknown == UnknownReport {
		enabled[ignore.Unknown] = true
	}

	return enabled
}

type outcome struct {
	target immutable.Target
	result *mutability.Result
}

// Run resolves targets concurrently, then reports diagnostics and exports
// facts in the order of targets. The first invariant failure aborts the run.
func (r *Runner) Run(pass *analysis.Pass, targets []immutable.Target) error {
	outcomes := make([]outcome, len(targets))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, target := range targets {
		g.Go(func() error {
			res, err := r.resolver.Resolve(target.Obj.Type())
			if err != nil {
				return fmt.Errorf("resolve %s: %w", target.Obj.Name(), err)
			}
			outcomes[i] = outcome{target: target, result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range outcomes {
		r.report(pass, o)
	}

	return nil
}

func (r *Runner) report(pass *analysis.Pass, o outcome) {
	switch o.result.Verdict {
	case mutability.Immutable:
		// An alias names a type of another package; a fact on it would
		// leak local exemptions of that type to importers.
		if !o.target.Obj.IsAlias() {
			pass.ExportObjectFact(o.target.Obj, &ImmutableFact{Identifier: typeutil.TypeIdentifier(o.target.Obj.Type())})
		}
		return
	case mutability.Unknown:
		if r.unknown == UnknownAllow {
			return
		}
	}

	reason, ok := o.result.Primary()
	if !ok {
		return
	}

	if r.shouldIgnore(pass, o.target.Name.Pos(), checkerName(reason.Verdict)) {
		return
	}

	msg := Message(pass.Pkg, o.target.Obj, reason)
	if r.trace {
		msg += " (path: " + Path(pass.Pkg, reason.Path) + ")"
	}

	pass.Reportf(o.target.Name.Pos(), "%s", msg)
}

func (r *Runner) shouldIgnore(pass *analysis.Pass, pos token.Pos, checker ignore.CheckerName) bool {
	position := pass.Fset.Position(pos)
	ignoreMap, ok := r.ignoreMaps[position.Filename]
	if !ok {
		return false
	}

	return ignoreMap.ShouldIgnore(position.Line, checker)
}

func checkerName(v mutability.Verdict) ignore.CheckerName {
	if v == mutability.Unknown {
		return ignore.Unknown
	}

	return ignore.Mutable
}
