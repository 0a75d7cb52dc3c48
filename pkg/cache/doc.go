// Package cache implements the format-indexed on-disk cache layout: the
// deterministic mapping from a source URI to a per-URI directory, and from
// that directory plus a [format.Format] to a single cache file.
//
// Directories are never mutated in place; [WriteFile] writes to a temporary
// sibling and renames it into place so a failed write or conversion never
// leaves a partially-written ontology file visible to a later request.
package cache
