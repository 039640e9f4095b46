package complete

import (
	"context"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// RequireProvider completes the string literal following `require` by
// enumerating directories. File access goes through
// `github.com/viant/afs`, the same service the workspace scanner uses.
type RequireProvider struct {
	FS   afs.Service
	Root string // workspace root URI

	// SourceExt is the completable source suffix; defaults to ".cr".
	SourceExt string
}

// NewRequireProvider builds a provider over a fresh afs service.
func NewRequireProvider(root string) *RequireProvider {
	return &RequireProvider{FS: afs.New(), Root: root}
}

func (p *RequireProvider) ext() string {
	if p.SourceExt != "" {
		return p.SourceExt
	}
	return ".cr"
}

// Complete enumerates the directory the partial path points into: for a
// prefix starting with `./` or `../` relative to the requiring document's
// directory, otherwise relative to `<root>/src` if it exists, else
// `<root>`. Folder items for subdirectories; File items for
// source files whose basename begins with the partial's last segment.
func (p *RequireProvider) Complete(docURI, partial string) []Item {
	ctx := context.Background()

	var base string
	if strings.HasPrefix(partial, "./") || strings.HasPrefix(partial, "../") {
		docDir, _ := url.Split(docURI, "file")
		base = docDir
		if dir := path.Dir(partial); dir != "." && dir != "/" {
			base = url.Join(docDir, dir)
		}
	} else {
		src := url.Join(p.Root, "src")
		if ok, err := p.FS.Exists(ctx, src); err == nil && ok {
			base = src
		} else {
			base = p.Root
		}
		if dir := path.Dir(partial); dir != "." && dir != "/" {
			base = url.Join(base, dir)
		}
	}

	prefix := path.Base(partial)
	if prefix == "." || prefix == "/" || strings.HasSuffix(partial, "/") {
		prefix = ""
	}

	objects, err := p.FS.List(ctx, base)
	if err != nil {
		return nil
	}
	var out []Item
	for _, obj := range objects {
		name := obj.Name()
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		if obj.IsDir() {
			// afs lists the base directory itself first; skip it.
			if strings.TrimSuffix(obj.URL(), "/") == strings.TrimSuffix(base, "/") {
				continue
			}
			if prefix == "" || strings.HasPrefix(name, prefix) {
				out = append(out, Item{Label: name, Kind: ItemFolder, InsertText: name + "/"})
			}
			continue
		}
		if !strings.HasSuffix(name, p.ext()) {
			continue
		}
		stem := strings.TrimSuffix(name, p.ext())
		if prefix == "" || strings.HasPrefix(stem, prefix) {
			out = append(out, Item{Label: stem, Kind: ItemFile, InsertText: stem})
		}
	}
	return out
}
