package fetch

import "github.com/ontoproxy/ontoproxy/pkg/crex"

// DownloadErrorKind classifies why [Download] failed to produce a
// classified cache file.
type DownloadErrorKind string

const (
	Network                DownloadErrorKind = "network"
	BadResponseHeader      DownloadErrorKind = "bad_response_header"
	UnidentifiableDownload DownloadErrorKind = "unidentifiable_download"

	// NonMachineReadableDownload is raised by pkg/orchestrator, not by
	// Download itself: the downloader always completes once a format is
	// classified, and only the orchestrator knows whether conversion of
	// the result is required.
	NonMachineReadableDownload DownloadErrorKind = "non_machine_readable_download"
)

const detailKind = "kind"

func errNetwork(uri string, cause error) error {
	return crex.SystemError("failed to download from the supplied URI", cause.Error()).
		Detail(detailKind, Network).
		Detail("uri", uri).
		Cause(cause).
		Err()
}

func errBadResponseHeader(reason string, cause error) error {
	b := crex.SystemError("could not use the response's Content-Type header", reason).
		Detail(detailKind, BadResponseHeader)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Err()
}

func errUnidentifiable(uri string) error {
	return crex.SystemError(
		"could not identify the downloaded ontology's format",
		"Content-Type, URI extension, content sniffing, and the requested fallback format all failed",
	).
		Detail(detailKind, UnidentifiableDownload).
		Detail("uri", uri).
		Err()
}

// ErrNonMachineReadableDownload builds the error pkg/orchestrator returns
// when a downloaded format mismatches the request and cannot be converted
// because it is not machine-readable.
func ErrNonMachineReadableDownload(got string) error {
	return crex.UserError(
		"downloaded ontology is not machine-readable and cannot be converted",
		"downloaded format: "+got,
	).
		Detail(detailKind, NonMachineReadableDownload).
		Detail("format", got).
		Err()
}

// KindOf extracts the [DownloadErrorKind] from an error returned by
// [Download]. Returns false for any other error, including nil.
func KindOf(err error) (DownloadErrorKind, bool) {
	ce, ok := err.(*crex.Error)
	if !ok {
		return "", false
	}
	v, ok := ce.Detail(detailKind)
	if !ok {
		return "", false
	}
	kind, ok := v.(DownloadErrorKind)
	return kind, ok
}
