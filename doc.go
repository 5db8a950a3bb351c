// Package schemax is the rule-based validation engine for dataset schema
// definition files.
//
// It provides:
//
//   - A stable outcome model (Outcome, ValidationError) with JSONPath-like
//     locations and synthesized, deterministic messages.
//   - Pluggable rules: structural validation against a run-scoped schema
//     model, batch-wide fqn uniqueness, and per-direction dependency graph
//     checks with eager cycle detection.
//   - A pipeline orchestrator with short-circuit-on-first-failure semantics
//     and per-batch stateful rule ownership.
//
// Design policy:
//   - Keep the public engine API in the root package; the schema model and
//     walker live under schema/, graph bookkeeping under internal/.
//   - File loading, configuration, rendering and caching are collaborators
//     under source/, config/, output/ and cache/; the CLI under cmd/schemax.
//   - Processing is strictly sequential within a batch: the fqn registry and
//     the dependency graphs are order-sensitive and must yield reproducible
//     diagnostics.
package schemax
