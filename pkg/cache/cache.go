package cache

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// DirMode and FileMode are the permissions used for every cache directory
// and file this package creates.
const (
	DirMode  = 0o755
	FileMode = 0o644
)

// stemPrefix is the fixed file stem every cache file uses; only the
// extension varies by format.
const stemPrefix = "ontology"

// nonAlnum matches every rune that must be replaced by '_' when turning a
// URI into a directory slug.
var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// DirectoryFor returns the per-URI cache directory for uri, rooted at root:
// "<root>/ontologies/<slug>-<hash>". It is a pure function of its inputs.
func DirectoryFor(root, uri string) string {
	slug := nonAlnum.ReplaceAllString(uri, "_")
	h := fnv.New64a()
	_, _ = h.Write([]byte(uri))
	return filepath.Join(root, "ontologies", fmt.Sprintf("%s-%d", slug, h.Sum64()))
}

// FileFor returns the cache file path for f inside dir, using f's canonical
// extension. It is injective in f: distinct formats never collide.
func FileFor(dir string, f format.Format) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s", stemPrefix, f.CanonicalExt()))
}

// EnsureDir creates dir (and its parents) if it does not exist. The bool
// return reports whether the directory was created by this call. An
// existing non-directory at the path is reported as a crex system error.
func EnsureDir(dir string) (created bool, err error) {
	info, statErr := os.Stat(dir)
	switch {
	case statErr == nil:
		if !info.IsDir() {
			return false, errNotDirectory(dir)
		}
		return false, nil
	case os.IsNotExist(statErr):
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return false, errIO("failed to create cache directory", dir, err)
		}
		return true, nil
	default:
		return false, errIO("failed to stat cache directory", dir, statErr)
	}
}

// ListCacheFiles scans dir for regular files whose stem is exactly
// "ontology", returning their paths. If all is false, at most one path is
// returned. A missing directory yields an empty, non-error result.
func ListCacheFiles(dir string, all bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errIO("failed to list cache directory", dir, err)
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stem := name[:len(name)-len(filepath.Ext(name))]
		if stem != stemPrefix {
			continue
		}
		out = append(out, filepath.Join(dir, name))
		if !all {
			break
		}
	}
	return out, nil
}

// Annotate resolves the [format.Format] of every path in paths, running the
// lookups concurrently, and returns one [OntologyFile] per input path in the
// same order. Any single lookup failure aborts the whole call.
func Annotate(paths []string) ([]OntologyFile, error) {
	out := make([]OntologyFile, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			f, err := format.ParsePath(p)
			if err != nil {
				errs[i] = err
				return
			}
			out[i] = OntologyFile{Path: p, Format: f}
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WriteFile atomically writes data to path: it writes to a ".tmp"-suffixed
// sibling in the same directory, then renames it into place. A failure at
// any step removes the temporary file, so a caller never observes a
// partially-written cache file at path.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errIO("failed to create temporary cache file", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errIO("failed to write cache file", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errIO("failed to sync cache file", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errIO("failed to close cache file", path, err)
	}
	if err := os.Chmod(tmpPath, FileMode); err != nil {
		os.Remove(tmpPath)
		return errIO("failed to set cache file permissions", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errIO("failed to publish cache file", path, err)
	}
	return nil
}

// OntologyFile is a cache file resolved to an absolute path and its format.
type OntologyFile struct {
	Path   string
	Format format.Format
}
