package cache

import "github.com/ontoproxy/ontoproxy/pkg/crex"

// detailPath is the crex.Error detail key carrying the offending path.
const detailPath = "path"

func errNotDirectory(path string) error {
	return crex.SystemError("cache path is not a directory", path).
		Fallback("delete the conflicting path and retry").
		Detail(detailPath, path).
		Err()
}

func errNotFile(path string) error {
	return crex.SystemError("cache path is not a regular file", path).
		Fallback("delete the conflicting path and retry").
		Detail(detailPath, path).
		Err()
}

func errIO(description string, path string, cause error) error {
	return crex.SystemError(description, cause.Error()).
		Detail(detailPath, path).
		Cause(cause).
		Err()
}
