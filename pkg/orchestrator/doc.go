// Package orchestrator implements the request state machine: given a
// source URI and a requested format, serve from cache if present,
// otherwise try converting from an already-cached machine-readable
// variant (when the caller prefers conversion), otherwise download and
// either serve directly or convert the downloaded body.
package orchestrator
