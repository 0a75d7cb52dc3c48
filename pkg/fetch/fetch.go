package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// Request describes one outbound download.
type Request struct {
	// SourceURI is the absolute URL to fetch.
	SourceURI string
	// UpstreamFormatHint, if valid, is sent as the Accept header and used
	// as the final fallback signal if every other classification step
	// fails.
	UpstreamFormatHint format.Format
}

// DownloadedFile is a cache file resolved to a path and format, plus the
// in-memory bytes that produced it.
type DownloadedFile struct {
	cache.OntologyFile
	Data []byte
}

// Download issues one GET against req.SourceURI, classifies the response
// body's format, writes it to dir under its canonical cache path, and
// returns the result. The response status code does not affect
// classification: even a non-2xx body is classified and cached.
func Download(ctx context.Context, client *http.Client, req Request, dir string) (DownloadedFile, error) {
	if client == nil {
		client = http.DefaultClient
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.SourceURI, nil)
	if err != nil {
		return DownloadedFile{}, errNetwork(req.SourceURI, err)
	}
	if req.UpstreamFormatHint.IsValid() {
		httpReq.Header.Set("Accept", req.UpstreamFormatHint.CanonicalMIME())
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return DownloadedFile{}, errNetwork(req.SourceURI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DownloadedFile{}, errNetwork(req.SourceURI, err)
	}

	detected, err := classify(resp.Header.Get("Content-Type"), req.SourceURI, body, req.UpstreamFormatHint)
	if err != nil {
		return DownloadedFile{}, err
	}

	path := cache.FileFor(dir, detected)
	if err := cache.WriteFile(path, body); err != nil {
		return DownloadedFile{}, err
	}

	return DownloadedFile{
		OntologyFile: cache.OntologyFile{Path: path, Format: detected},
		Data:         body,
	}, nil
}

// classify resolves a downloaded body's format using, in order: the
// Content-Type header, the URI's file extension, content sniffing, and
// finally the caller-supplied fallback hint.
func classify(contentType, sourceURI string, body []byte, hint format.Format) (format.Format, error) {
	if contentType != "" {
		f, err := format.ParseMIME(contentType)
		switch {
		case err == nil:
			return f, nil
		case isAmbiguous(err):
			// Ambiguous Content-Type carries no information; fall through
			// to the next signal rather than failing.
		default:
			return format.Unknown, errBadResponseHeader(
				"Content-Type header did not parse to a known RDF MIME type", err)
		}
	}

	if u, err := url.Parse(sourceURI); err == nil {
		if ext := filepath.Ext(u.Path); ext != "" {
			if f, err := format.ParseExtension(ext); err == nil {
				return f, nil
			}
		}
	}

	if f, err := format.ParseContent(body); err == nil {
		return f, nil
	}

	if hint.IsValid() {
		return hint, nil
	}

	return format.Unknown, errUnidentifiable(sourceURI)
}

func isAmbiguous(err error) bool {
	kind, ok := format.KindOf(err)
	return ok && kind == format.Ambiguous
}
