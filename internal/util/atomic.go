// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// =============================================================================
// FILE WRITES
// =============================================================================

// dirMode gives a created parent directory the read bits of perm plus the
// matching search bits: 0600 -> 0700, 0644 -> 0755.
func dirMode(perm os.FileMode) os.FileMode {
	mode := perm | 0700
	if perm&0040 != 0 {
		mode |= 0010
	}
	if perm&0004 != 0 {
		mode |= 0001
	}
	return mode
}

// WriteFileAtomic replaces path with data. The bytes go to a temp file next
// to path which is synced and renamed into place, so readers never see a
// partial file. Missing parent directories are created (see dirMode).
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode(perm)); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	// Windows will not rename an open file.
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// SaveUnique writes data to path, or to the first free "name (N).ext"
// beside it, and returns the path used. Existing files are never replaced.
func SaveUnique(path string, data []byte, perm os.FileMode) (string, error) {
	target := UniquePath(path)
	if err := WriteFileAtomic(target, data, perm); err != nil {
		return "", err
	}
	return target, nil
}

// UniquePath returns path, or path with " (N)" before the extension when a
// file already exists there. Gives up after 999 and returns path.
func UniquePath(path string) string {
	if !exists(path) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; i < 1000; i++ {
		candidate := base + " (" + strconv.Itoa(i) + ")" + ext
		if !exists(candidate) {
			return candidate
		}
	}
	return path
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
