package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is used for the default cache directory and the User-Agent.
	AppName = "markcheck"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "markcheck.yaml"

	// ResultsSuffix is appended to a slot's base path to name its results record.
	ResultsSuffix = ".results.json"

	// CLISuite is the cache suite used for documents checked from the command line.
	CLISuite = "markcheck"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the cache directory used when none is configured.
// It joins the system temp directory and markcheck.
func DefaultCachePath() string {
	return filepath.Join(os.TempDir(), AppName)
}
