// Package convert implements the converter registry and dispatcher: a
// process-wide, once-sorted list of [Converter] backends, each declaring a
// capability matrix, an availability check, and a total-order [Info] tuple.
// [Select] returns the highest-ranked available converter supporting a
// given (from, to) format pair; [Convert] selects and invokes it.
//
// Five backends are registered: an in-process streaming backend built on
// github.com/knakk/rdf, and four external-CLI wrappers (rdfx, rdf-convert,
// pyLODE, robot) that shell out to their namesake tools.
package convert
