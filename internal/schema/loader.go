package schema

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Source holds all DTO declarations parsed from one schema file.
type Source struct {
	// Path is the originating file URL.
	Path string
	// Dtos maps DTO name to its raw declaration.
	Dtos map[string]*RawDto
}

// Parse parses YAML (or JSON, which yaml.v3 accepts) schema data.
func Parse(path string, data []byte) (*Source, error) {
	src := &Source{Path: path, Dtos: map[string]*RawDto{}}

	if err := yaml.Unmarshal(data, &src.Dtos); err != nil {
		return nil, fmt.Errorf("parsing schema file %s: %w", path, err)
	}

	return src, nil
}

// LoadFile reads and parses one schema file through the given file service.
func LoadFile(ctx context.Context, fs afs.Service, URL string) (*Source, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading schema file %s: %w", URL, err)
	}

	return Parse(URL, data)
}

// LoadAll loads every URL in order.
func LoadAll(ctx context.Context, fs afs.Service, URLs []string) ([]*Source, error) {
	sources := make([]*Source, 0, len(URLs))

	for _, u := range URLs {
		src, err := LoadFile(ctx, fs, u)
		if err != nil {
			return nil, err
		}

		sources = append(sources, src)
	}

	return sources, nil
}
