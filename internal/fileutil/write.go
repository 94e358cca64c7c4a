// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const ownerReadWrite = 0o600

// WriteOptions controls how WriteAtomic writes the output.
type WriteOptions struct {
	// PreserveTimestamps copies the source modification time to the output
	PreserveTimestamps bool
}

// WriteAtomic writes data next to outPath in a temporary file and renames it into place.
// The source file's executable bits carry over. It returns the size of the written file.
func WriteAtomic(src, outPath string, data []byte, opts WriteOptions) (size int64, err error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:gosec // best-effort cleanup
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	const executableBits = 0o111

	perm := os.FileMode(ownerReadWrite) | info.Mode()&executableBits

	if err = os.Chmod(tmpName, perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if opts.PreserveTimestamps {
		if err = os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	if err = os.Rename(tmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return int64(len(data)), nil
}
