// Package feature groups the per-screen state machines. Each sub-package
// exposes a State, closed Msg and Eff variants, the screen's initial state
// and effects, and a pure Reduce function. Sub-packages never depend on the
// root application state; the root reducer lifts their results.
package feature
