package complete_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/semindex/complete"
)

func uploadAll(t *testing.T, fs afs.Service, uris ...string) {
	t.Helper()
	ctx := context.Background()
	for _, uri := range uris {
		err := fs.Upload(ctx, uri, file.DefaultFileOsMode, strings.NewReader("# source"))
		require.NoError(t, err)
	}
}

func TestRequireProvider_RootSrc(t *testing.T) {
	fs := afs.New()
	uploadAll(t, fs,
		"mem://localhost/proj/src/models/user.cr",
		"mem://localhost/proj/src/models/post.cr",
		"mem://localhost/proj/src/app.cr",
		"mem://localhost/proj/src/readme.md",
	)

	p := &complete.RequireProvider{FS: fs, Root: "mem://localhost/proj"}

	items := p.Complete("mem://localhost/proj/src/main.cr", "")
	byLabel := map[string]complete.ItemKind{}
	for _, it := range items {
		byLabel[it.Label] = it.Kind
	}
	assert.Equal(t, complete.ItemFolder, byLabel["models"])
	assert.Equal(t, complete.ItemFile, byLabel["app"])
	_, hasReadme := byLabel["readme"]
	assert.False(t, hasReadme, "only source files complete")

	items = p.Complete("mem://localhost/proj/src/main.cr", "models/")
	labels := map[string]bool{}
	for _, it := range items {
		labels[it.Label] = true
	}
	assert.True(t, labels["user"])
	assert.True(t, labels["post"])

	items = p.Complete("mem://localhost/proj/src/main.cr", "models/us")
	require.Len(t, items, 1)
	assert.Equal(t, "user", items[0].Label)
}

func TestRequireProvider_RelativePath(t *testing.T) {
	fs := afs.New()
	uploadAll(t, fs,
		"mem://localhost/proj/src/helpers/text.cr",
		"mem://localhost/proj/src/main.cr",
	)

	p := &complete.RequireProvider{FS: fs, Root: "mem://localhost/proj"}

	items := p.Complete("mem://localhost/proj/src/main.cr", "./helpers/")
	require.Len(t, items, 1)
	assert.Equal(t, "text", items[0].Label)
	assert.Equal(t, complete.ItemFile, items[0].Kind)
}

func TestRequireProvider_FallsBackToRootWithoutSrc(t *testing.T) {
	fs := afs.New()
	uploadAll(t, fs, "mem://localhost/bare/util.cr")

	p := &complete.RequireProvider{FS: fs, Root: "mem://localhost/bare"}
	items := p.Complete("mem://localhost/bare/main.cr", "ut")
	require.Len(t, items, 1)
	assert.Equal(t, "util", items[0].Label)
}
