// Package format implements the MIME registry: a closed enumeration of RDF
// serialization formats and the bidirectional mappings between a [Format],
// its MIME types, and its file extensions.
//
// [ParseMIME] accepts a single MIME string or a comma-separated Accept-header
// list with optional ";q=" parameters. [ParseExtension] and [ParseContent]
// cover the other two content-type inference signals; [ParsePath] chains
// extension lookup and content sniffing for a file on disk.
//
// Several formats share a single MIME type (notably text/html, claimed by
// [Html], [RdfA], and [Microdata]); the registry resolves the ambiguity to a
// single deterministic default per MIME rather than guessing.
package format
