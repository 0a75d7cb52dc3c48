// Package fetch implements the downloader: a single outbound HTTP GET
// against a source URI, followed by four-signal format classification
// (response Content-Type, URI file extension, content sniffing, caller
// fallback) and a write into the cache.
package fetch
