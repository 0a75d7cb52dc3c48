package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ontoproxy/ontoproxy/pkg/crex"
	"github.com/ontoproxy/ontoproxy/pkg/format"
	"github.com/ontoproxy/ontoproxy/pkg/orchestrator"
)

// ontologyHandler serves the single "GET /" route: fetch (and, if needed,
// convert) the ontology at the "uri" query parameter into the format the
// client's Accept header requests.
type ontologyHandler struct {
	orch       *orchestrator.Orchestrator
	preference orchestrator.Preference
	logger     *slog.Logger
}

func newOntologyHandler(orch *orchestrator.Orchestrator, preference orchestrator.Preference, logger *slog.Logger) *ontologyHandler {
	return &ontologyHandler{orch: orch, preference: preference, logger: logger}
}

func (h *ontologyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("uri")
	if raw == "" {
		h.fail(w, http.StatusNotFound, crex.UserError("missing \"uri\" query parameter", "the source ontology's URL is required").Err())
		return
	}

	sourceURI, err := url.Parse(raw)
	if err != nil || !sourceURI.IsAbs() {
		h.fail(w, http.StatusUnsupportedMediaType,
			crex.UserError("\"uri\" is not a valid absolute URL", raw).Err())
		return
	}

	hint := format.Unknown
	if qa := r.URL.Query().Get("query-accept"); qa != "" {
		hint, err = format.ParseMIME(qa)
		if err != nil {
			h.fail(w, http.StatusUnsupportedMediaType, err)
			return
		}
	}

	requested := format.Default
	if accept := r.Header.Get("Accept"); accept != "" {
		requested, err = format.ParseMIME(accept)
		if err != nil {
			h.fail(w, http.StatusUnsupportedMediaType, err)
			return
		}
	}

	res, err := h.orch.Handle(r.Context(), orchestrator.RequestDescriptor{
		SourceURI:          sourceURI.String(),
		Requested:          requested,
		UpstreamFormatHint: hint,
		Preference:         h.preference,
	})
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}

	data := res.Data
	if data == nil {
		data, err = readCacheFile(res.Path)
		if err != nil {
			h.fail(w, http.StatusInternalServerError, err)
			return
		}
	}

	w.Header().Set("Content-Type", res.Format.CanonicalMIME())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(res.Path)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// readCacheFile loads a response body the orchestrator already wrote to
// disk but did not hand back in memory (a cache hit, or a conversion
// result).
func readCacheFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, crex.SystemError("failed to read cached ontology file", err.Error()).
			Detail("path", path).
			Cause(err).
			Err()
	}
	return data, nil
}

func (h *ontologyHandler) fail(w http.ResponseWriter, status int, err error) {
	var ce *crex.Error
	if errors.As(err, &ce) {
		h.logger.Error("request failed", "err", ce, "status", status)
	} else {
		h.logger.Error("request failed", "err", err.Error(), "status", status)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, err.Error())
}
