// Package version exposes build metadata, set through -ldflags -X at build time.
package version

//nolint:gochecknoglobals // set by the linker
var (
	name    = "grammarify"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version.
func Version() string {
	return version
}

// Commit returns the source revision.
func Commit() string {
	return commit
}
