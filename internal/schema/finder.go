package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/option"
)

// Finder discovers schema files under a config location.
type Finder struct {
	fs afs.Service
}

// NewFinder creates a finder on the default abstract file service.
func NewFinder() *Finder {
	return &Finder{fs: afs.New()}
}

// NewFinderWith creates a finder on a caller-supplied file service.
func NewFinderWith(fs afs.Service) *Finder {
	return &Finder{fs: fs}
}

// FS returns the underlying file service, for reuse by loaders.
func (f *Finder) FS() afs.Service {
	return f.fs
}

// Collect returns all file URLs under configURL whose name ends with
// extension, recursively, in ascending order. The order makes multi-file
// merging deterministic.
func (f *Finder) Collect(ctx context.Context, configURL, extension string) ([]string, error) {
	objects, err := f.fs.List(ctx, configURL, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("listing schema files under %s: %w", configURL, err)
	}

	var urls []string

	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), extension) {
			continue
		}

		urls = append(urls, object.URL())
	}

	sort.Strings(urls)

	return urls, nil
}
