package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// plainTextEssence is the one MIME essence that must never resolve to a
// Format: it carries no information about which RDF serialization (if any)
// the body actually is.
const plainTextEssence = "text/plain"

// ParseMIME parses a single MIME type or a comma-separated Accept-header
// list with optional ";q=" and other parameters. For a list, the first
// element that resolves to a known format wins; if none do, the whole
// string is retried as a single MIME type. Parameters are stripped before
// lookup.
func ParseMIME(s string) (Format, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown, newParseError(InvalidFormat, "empty MIME string")
	}

	parts := strings.Split(s, ",")
	var lastErr error
	for _, part := range parts {
		f, err := parseOneMIME(part)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}

	if len(parts) > 1 {
		// Retry the whole, unsplit string once: a comma might be part of a
		// single parameter value rather than a list separator.
		if f, err := parseOneMIME(s); err == nil {
			return f, nil
		}
	}

	return Unknown, lastErr
}

func parseOneMIME(part string) (Format, error) {
	essence, ok := stripParams(part)
	if !ok {
		return Unknown, newParseError(InvalidFormat, fmt.Sprintf("malformed MIME type %q", part))
	}

	if essence == plainTextEssence {
		return Unknown, newParseError(Ambiguous, "text/plain could be any format")
	}

	f, ok := mimeByHash[hashEssence(essence)]
	if !ok {
		return Unknown, newParseError(Unrecognized, fmt.Sprintf("unrecognized MIME type %q", essence))
	}
	return f, nil
}

// stripParams lowercases and trims a single MIME type, discarding any
// ";key=value" parameters (such as ";q=0.9" or ";charset=utf-8"). Returns
// false if the remaining essence is not of the form "type/subtype".
func stripParams(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, ';'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, "/") {
		return "", false
	}
	return lowerASCII(s), true
}

// ParseExtension resolves a case-insensitive file extension (with or
// without a leading dot) to a [Format].
func ParseExtension(ext string) (Format, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return Unknown, newParseError(NoExtension, "empty extension")
	}
	f, ok := extByLower[lowerASCII(ext)]
	if !ok {
		return Unknown, newParseError(UnknownExtension, fmt.Sprintf("unrecognized extension %q", ext))
	}
	return f, nil
}

// ParseContent sniffs the format of a byte buffer using magic-byte
// signatures (see sniff.go).
func ParseContent(data []byte) (Format, error) {
	return sniff(data)
}

// ParsePath determines the format of a file on disk: extension first, then
// content sniffing if the extension is absent or unrecognized and the file
// can be read.
func ParsePath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext != "" {
		if f, err := ParseExtension(ext); err == nil {
			return f, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Unknown, newParseError(NoExtension, fmt.Sprintf("no usable extension on %q and could not read file: %v", path, err))
	}
	return ParseContent(data)
}
