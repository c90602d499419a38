// Package internal drives mutability resolution for an analysis pass.
//
// # Architecture Overview
//
//	                     +------------------+
//	                     |   analyzer.go    |  Entry point, flags
//	                     +--------+---------+
//	                              |
//	        +---------------------+---------------------+
//	        |                     |                     |
//	+-------v--------+   +--------v--------+   +--------v--------+
//	|   directives   |   |    exemption    |   |     Runner      |
//	| immutable,     |   | flags, YAML,    |   | errgroup fan-out|
//	| exempt, ignore |   | directives,facts|   | report, facts   |
//	+----------------+   +--------+--------+   +--------+--------+
//	                              |                     |
//	                              +----------+----------+
//	                                         |
//	                               +---------v---------+
//	                               |    mutability     |  Resolver
//	                               +---------+---------+
//	                                         |
//	                               +---------v---------+
//	                               |     typeutil      |  go/types Oracle
//	                               +-------------------+
//
// # Runner
//
// [Runner.Run] resolves each type marked //immutablecheck:immutable in its
// own query. Queries share the oracle and the exemption store and run
// concurrently, bounded by GOMAXPROCS. Once all queries finish, results
// are handled in source order:
//
//   - Immutable: an [ImmutableFact] is exported for the type.
//   - Mutable: reported with the first offending member.
//   - Unknown: reported, or accepted when the policy is [UnknownAllow].
//
// Diagnostics can be suppressed with //immutablecheck:ignore on the type's
// line or the line above it.
package internal
