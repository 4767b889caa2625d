// Package loader discovers raw documents on a filesystem. Discovery order
// is sorted path order, which makes it the ingestion order downstream.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pressroom-io/pressroom/internal/document"
)

// Config controls how documents are discovered under a content root.
type Config struct {
	// Pattern limits discovered files by base-name glob. Defaults to "*.md".
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem paths into RawDocuments.
type Loader struct {
	fsys      fs.FS
	pattern   string
	recursive bool
}

// New constructs a Loader over the provided filesystem.
func New(fsys fs.FS, cfg Config) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	return &Loader{fsys: fsys, pattern: pattern, recursive: cfg.Recursive}
}

// Discover walks the filesystem and reads every matching file into a
// RawDocument, origin set to the slash-separated relative path. Results
// are sorted by origin so repeated runs see the same ingestion order.
func (l *Loader) Discover(ctx context.Context) ([]document.RawDocument, error) {
	var paths []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if !l.recursive && p != "." {
				return fs.SkipDir
			}
			return nil
		}
		ok, err := path.Match(l.pattern, path.Base(p))
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", l.pattern, err)
		}
		if ok {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}
	sort.Strings(paths)

	raws := make([]document.RawDocument, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		raws = append(raws, document.RawDocument{Origin: p, Data: data})
	}
	return raws, nil
}
