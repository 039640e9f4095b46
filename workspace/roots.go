package workspace

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Workspace owns the resolved search roots for one root_uri and walks them
// for source files.
type Workspace struct {
	Config Config
	fs     afs.Service
}

// New builds a Workspace backed by a fresh afs service.
func New(cfg Config) *Workspace {
	return &Workspace{Config: cfg, fs: afs.New()}
}

// NewWithService builds a Workspace over a caller-supplied afs.Service
// (e.g. a mem:// service in tests).
func NewWithService(cfg Config, fs afs.Service) *Workspace {
	return &Workspace{Config: cfg, fs: fs}
}

// Roots resolves the ordered search roots: STDLIB_PATH entries
// first, then `<root>/lib` if it exists, then `<root>` itself.
func (w *Workspace) Roots(ctx context.Context) ([]string, error) {
	var roots []string
	if raw := os.Getenv(w.Config.stdlibEnvName()); raw != "" {
		for _, p := range strings.Split(raw, ":") {
			if p = strings.TrimSpace(p); p != "" {
				roots = append(roots, p)
			}
		}
	}

	libRoot := url.Join(w.Config.RootURI, "lib")
	if ok, err := w.fs.Exists(ctx, libRoot); err == nil && ok {
		roots = append(roots, libRoot)
	}

	if w.Config.RootURI != "" {
		roots = append(roots, w.Config.RootURI)
	}
	return roots, nil
}

// WalkSourceFiles walks every resolved root once, collecting files whose
// name ends with the configured SourceExt. Grounded on `analyzer/package.go`'s
// `fs.Walk(ctx, root, visitor)` pattern.
func (w *Workspace) WalkSourceFiles(ctx context.Context) ([]string, error) {
	roots, err := w.Roots(ctx)
	if err != nil {
		return nil, err
	}
	ext := w.Config.sourceExt()
	var files []string
	seen := map[string]bool{}
	for _, root := range roots {
		visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
			if info.IsDir() {
				return true, nil
			}
			if !strings.HasSuffix(info.Name(), ext) {
				return true, nil
			}
			full := url.Join(baseURL, parent, info.Name())
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
			return true, nil
		}
		if err := w.fs.Walk(ctx, root, storage.OnVisit(visitor)); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// ReadFile reads a source file's content through the workspace's afs
// service.
func (w *Workspace) ReadFile(ctx context.Context, uri string) ([]byte, error) {
	return w.fs.DownloadWithURL(ctx, uri)
}
