package workspace

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"
)

// rootsDump is the YAML shape written by DumpRoots.
type rootsDump struct {
	RootURI string   `yaml:"rootUri"`
	Roots   []string `yaml:"roots"`
}

// DumpRoots writes the resolved search roots as YAML to w, the debug
// dump requested via the env flag.
func (w *Workspace) DumpRoots(ctx context.Context, out io.Writer) error {
	roots, err := w.Roots(ctx)
	if err != nil {
		return err
	}
	dump := rootsDump{RootURI: w.Config.RootURI, Roots: roots}
	enc := yaml.NewEncoder(out)
	defer enc.Close()
	return enc.Encode(dump)
}
