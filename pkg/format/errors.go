package format

import (
	"github.com/ontoproxy/ontoproxy/pkg/crex"
)

// ParseErrorKind classifies why a MIME string, extension, or content sample
// failed to resolve to a [Format].
type ParseErrorKind string

const (
	InvalidFormat      ParseErrorKind = "invalid_format"
	Ambiguous          ParseErrorKind = "ambiguous"
	Unrecognized       ParseErrorKind = "unrecognized"
	UnknownExtension   ParseErrorKind = "unknown_extension"
	NoExtension        ParseErrorKind = "no_extension"
	UnsniffableContent ParseErrorKind = "unsniffable_content"
	SniffedButUnknown  ParseErrorKind = "sniffed_but_unknown"
)

// detailKind is the crex.Error detail key carrying a [ParseErrorKind].
const detailKind = "kind"

func newParseError(kind ParseErrorKind, reason string) error {
	return crex.UserError("could not determine RDF format", reason).
		Detail(detailKind, kind).
		Err()
}

// KindOf extracts the [ParseErrorKind] from an error returned by this
// package's parse functions. Returns false for any other error, including
// nil.
func KindOf(err error) (ParseErrorKind, bool) {
	ce, ok := err.(*crex.Error)
	if !ok {
		return "", false
	}
	v, ok := ce.Detail(detailKind)
	if !ok {
		return "", false
	}
	kind, ok := v.(ParseErrorKind)
	return kind, ok
}
