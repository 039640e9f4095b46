// Package workspace resolves the configured search roots a workspace
// feeds into the indexing pipeline and reads source files through
// `github.com/viant/afs`.
package workspace

import "os"

// Config is supplied by the embedding host at initialization.
type Config struct {
	RootURI string

	// StdlibPathEnv names the environment variable carrying a
	// colon-separated list of standard-library search roots, analogous to
	// `STDLIB_PATH`. Defaults to "STDLIB_PATH" when empty.
	StdlibPathEnv string

	// SourceExt is the file suffix the workspace walk collects. Defaults
	// to ".cr" when empty.
	SourceExt string

	// DebugDumpEnv names a boolean environment variable that, when set to
	// a truthy value, requests a debug dump of the resolved roots.
	// Defaults to "SEMINDEX_DEBUG_DUMP_ROOTS" when empty.
	DebugDumpEnv string
}

func (c Config) stdlibEnvName() string {
	if c.StdlibPathEnv != "" {
		return c.StdlibPathEnv
	}
	return "STDLIB_PATH"
}

func (c Config) sourceExt() string {
	if c.SourceExt != "" {
		return c.SourceExt
	}
	return ".cr"
}

func (c Config) debugDumpEnvName() string {
	if c.DebugDumpEnv != "" {
		return c.DebugDumpEnv
	}
	return "SEMINDEX_DEBUG_DUMP_ROOTS"
}

// DebugDumpRequested reports whether the configured debug-dump env flag is
// set to a truthy value.
func (c Config) DebugDumpRequested() bool {
	v := os.Getenv(c.debugDumpEnvName())
	return v != "" && v != "0" && v != "false"
}
