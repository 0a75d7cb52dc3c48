package orchestrator

import (
	"context"
	"net/http"
	"os"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/convert"
	"github.com/ontoproxy/ontoproxy/pkg/fetch"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// Preference selects which action the orchestrator tries first when the
// requested format is not already cached: downloading from the source, or
// converting from a format already on disk.
type Preference int

const (
	PreferDownload Preference = iota
	PreferConvert
)

// RequestDescriptor is one client request, fully resolved: the source URI,
// the format the client wants, an optional upstream Accept hint, and which
// action (download or convert) to try first.
type RequestDescriptor struct {
	SourceURI          string
	Requested          format.Format
	UpstreamFormatHint format.Format
	Preference         Preference
}

// Result is what Handle serves: the cache path and format of the response,
// plus the in-memory bytes when Handle already has them (avoids a
// redundant read-back right after a download or conversion write).
type Result struct {
	Path   string
	Format format.Format
	Data   []byte
}

// Orchestrator ties the cache, downloader, and converter dispatcher
// together per request. It holds no per-request state and is safe to
// reuse and share across concurrent requests.
type Orchestrator struct {
	CacheRoot  string
	HTTPClient *http.Client
}

// New returns an Orchestrator rooted at cacheRoot, using client for
// downloads (http.DefaultClient if nil).
func New(cacheRoot string, client *http.Client) *Orchestrator {
	if client == nil {
		client = http.DefaultClient
	}
	return &Orchestrator{CacheRoot: cacheRoot, HTTPClient: client}
}

// Handle resolves req to a cached or freshly produced file: a cache hit
// serves immediately; otherwise, depending on Preference, it either tries
// converting from an already-cached variant before downloading, or
// downloads first and converts only if the source format doesn't already
// match what was requested.
func (o *Orchestrator) Handle(ctx context.Context, req RequestDescriptor) (Result, error) {
	dir := cache.DirectoryFor(o.CacheRoot, req.SourceURI)

	// Ensure the per-URI cache directory exists.
	if _, err := cache.EnsureDir(dir); err != nil {
		return Result{}, err
	}

	wantFile := cache.FileFor(dir, req.Requested)

	// Direct cache hit.
	if fileExists(wantFile) {
		return Result{Path: wantFile, Format: req.Requested}, nil
	}

	// Convert from cache first, only under the prefer-convert policy.
	if req.Preference == PreferConvert {
		if result, ok, err := o.tryConvertFromCache(ctx, dir, wantFile, req.Requested); err != nil {
			return Result{}, err
		} else if ok {
			return result, nil
		}
	}

	// Download from the source.
	dl, err := fetch.Download(ctx, o.HTTPClient, fetch.Request{
		SourceURI:          req.SourceURI,
		UpstreamFormatHint: req.UpstreamFormatHint,
	}, dir)
	if err != nil {
		return Result{}, err
	}

	// The upstream server already returned what was requested.
	if dl.Format == req.Requested {
		return Result{Path: dl.Path, Format: dl.Format, Data: dl.Data}, nil
	}

	// The download itself cannot be a conversion source.
	if !dl.Format.IsMachineReadable() {
		return Result{}, fetch.ErrNonMachineReadableDownload(dl.Format.String())
	}

	// Convert the downloaded body to the requested format.
	if _, err := convert.Convert(ctx, dl.OntologyFile, cache.OntologyFile{Path: wantFile, Format: req.Requested}); err != nil {
		return Result{}, err
	}
	return Result{Path: wantFile, Format: req.Requested}, nil
}

// tryConvertFromCache tries every cached machine-readable variant, in the
// order [cache.ListCacheFiles] returns them, until one converts
// successfully. A converter failure on one source does not stop the loop;
// the first successful conversion wins.
func (o *Orchestrator) tryConvertFromCache(ctx context.Context, dir, wantFile string, want format.Format) (Result, bool, error) {
	paths, err := cache.ListCacheFiles(dir, true)
	if err != nil {
		return Result{}, false, err
	}
	if len(paths) == 0 {
		return Result{}, false, nil
	}

	cached, err := cache.Annotate(paths)
	if err != nil {
		return Result{}, false, err
	}

	target := cache.OntologyFile{Path: wantFile, Format: want}
	for _, c := range cached {
		if !c.Format.IsMachineReadable() {
			continue
		}
		if _, err := convert.Convert(ctx, c, target); err == nil {
			return Result{Path: wantFile, Format: want}, true, nil
		}
		// This cached source didn't work out; move on to the next one.
	}
	return Result{}, false, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
