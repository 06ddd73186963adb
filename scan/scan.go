// SPDX-License-Identifier: EPL-2.0

package scan

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Files walks root recursively and yields the path of every regular file
// whose name ends with ext (case-sensitive). Paths are root joined with the
// file's location below it, so an absolute root yields absolute paths.
//
// Directories listed in skip are not descended into. They may be absolute
// or relative to root.
//
// Nothing is read until the sequence is ranged over. If root is missing or a
// directory cannot be read, the error is yielded once with an empty path and
// the walk ends.
func Files(root, ext string, skip ...string) iter.Seq2[string, error] {
	return FilesFS(os.DirFS(root), root, ext, skip...)
}

// FilesFS is Files over fsys, whose "." is root. root is only used to build
// the yielded paths and to resolve absolute skip entries.
func FilesFS(fsys fs.FS, root, ext string, skip ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		excluded, err := relSkips(root, skip)
		if err != nil {
			yield("", err)
			return
		}

		err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if d.IsDir() {
				if p != "." && excluded[p] {
					return fs.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(d.Name(), ext) {
				return nil
			}
			// Devices, sockets and pipes are never captures; symlinks are followed on open.
			if t := d.Type(); !t.IsRegular() && t&fs.ModeSymlink == 0 {
				return nil
			}

			if !yield(filepath.Join(root, filepath.FromSlash(p)), nil) {
				return fs.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// relSkips converts skip entries to slash-separated paths relative to root.
// Entries outside root are dropped since the walk never reaches them.
func relSkips(root string, skip []string) (map[string]bool, error) {
	excluded := make(map[string]bool, len(skip))

	for _, s := range skip {
		if s == "" {
			continue
		}

		rel := s
		if filepath.IsAbs(s) {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return nil, err
			}
			rel, err = filepath.Rel(absRoot, s)
			if err != nil {
				continue
			}
		}

		rel = path.Clean(filepath.ToSlash(rel))
		if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
			continue
		}
		excluded[rel] = true
	}

	return excluded, nil
}
