// SPDX-License-Identifier: EPL-2.0

// Package fsx holds filesystem helpers shared by the converter.
package fsx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes path through a temporary file in the same directory
// and renames it into place, replacing any existing file. write receives the
// temporary file; if it or any later step fails, the temporary file is
// removed and path is left untouched.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w", err)
	}
	committed = true

	return nil
}
