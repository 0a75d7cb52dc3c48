package format

import (
	"bytes"
	"fmt"
)

// sniffSig is a single content-sniffing rule: if match reports true for a
// prefix of the sampled bytes, the body is f. Modeled on the exact-signature
// / text-signature split used by Go's own stdlib HTTP content sniffer.
type sniffSig struct {
	f     Format
	match func([]byte) bool
}

// firstN bounds how much of the body is scanned by prefix-based signatures.
const firstN = 512

var sniffSigs = []sniffSig{
	{RdfXml, hasPrefixFold("<?xml")},
	{TriX, containsFold("<trix")},
	{RdfXml, containsFold("<rdf:rdf")},
	{JsonLd, hasPrefixByte('{')},
	{NQuads, looksLikeNQuad},
	{NTriples, looksLikeNTriple},
	{Turtle, containsFold("@prefix")},
	{N3, containsFold("@keywords")},
}

// sniff classifies a byte buffer using the table above. When no signature
// matches, a buffer that looks like text is reported as SniffedButUnknown and
// anything else as UnsniffableContent.
func sniff(data []byte) (Format, error) {
	if len(data) == 0 {
		return Unknown, newParseError(UnsniffableContent, "empty content")
	}

	sample := data
	if len(sample) > firstN {
		sample = sample[:firstN]
	}

	// Prefix/substring signatures, in declaration order; the first rule
	// whose predicate matches wins. Turtle and TriG share the "@prefix"
	// signature deliberately: a bare @prefix block cannot distinguish
	// them without deeper parsing, and Turtle is the more common case.
	for _, sig := range sniffSigs {
		if sig.match(sample) {
			return sig.f, nil
		}
	}

	if looksLikeText(sample) {
		return Unknown, newParseError(SniffedButUnknown, "content looks like text but matches no known RDF signature")
	}

	return Unknown, newParseError(UnsniffableContent, fmt.Sprintf("no signature matched the first %d bytes", len(sample)))
}

func hasPrefixFold(prefix string) func([]byte) bool {
	p := []byte(lowerASCII(prefix))
	return func(b []byte) bool {
		return bytes.HasPrefix(bytes.ToLower(trimLeadingSpace(b)), p)
	}
}

func containsFold(needle string) func([]byte) bool {
	n := []byte(lowerASCII(needle))
	return func(b []byte) bool {
		return bytes.Contains(bytes.ToLower(b), n)
	}
}

func hasPrefixByte(c byte) func([]byte) bool {
	return func(b []byte) bool {
		b = trimLeadingSpace(b)
		return len(b) > 0 && b[0] == c
	}
}

func trimLeadingSpace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	return b[i:]
}

// looksLikeNQuad checks for the "<subject> <predicate> <object> <graph> ."
// shape that distinguishes N-Quads from N-Triples: four whitespace-
// separated terms before the line-ending period.
func looksLikeNQuad(b []byte) bool {
	line := firstLine(b)
	return countTopLevelTerms(line) >= 4 && bytes.HasPrefix(trimLeadingSpace(line), []byte("<"))
}

func looksLikeNTriple(b []byte) bool {
	line := firstLine(b)
	return countTopLevelTerms(line) == 3 && bytes.HasPrefix(trimLeadingSpace(line), []byte("<"))
}

func firstLine(b []byte) []byte {
	if idx := bytes.IndexByte(b, '\n'); idx >= 0 {
		return b[:idx]
	}
	return b
}

// countTopLevelTerms makes a rough whitespace-split count of terms on a
// line, ignoring a trailing lone ".". This is a heuristic, not a parser —
// it exists only to pick between sibling line-based formats (N-Triples vs.
// N-Quads) during sniffing, and can be fooled by literals containing
// spaces.
func countTopLevelTerms(line []byte) int {
	fields := bytes.Fields(line)
	if n := len(fields); n > 0 && bytes.Equal(fields[n-1], []byte(".")) {
		return n - 1
	}
	return len(fields)
}

// looksLikeText is the fallback used by stdlib's own content sniffer: a
// buffer containing no NUL or other disallowed control bytes in its first
// few hundred bytes is treated as plausible text, per the WHATWG MIME
// sniffing algorithm's text/plain signature.
func looksLikeText(b []byte) bool {
	for _, c := range b {
		switch {
		case c <= 0x08, c == 0x0B, c >= 0x0E && c <= 0x1A, c >= 0x1C && c <= 0x1F:
			return false
		}
	}
	return true
}
