// Package fsutil provides atomic filesystem helpers shared across packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devmake/devmake/internal/messages"
)

// WriteFileAtomic writes data to filename via a temp file in the same
// directory, then renames it into place so readers never observe a partial
// write. The destination directory is synced after the rename.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, filename, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	tmpName = ""

	// Sync the directory so the rename survives a crash.
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenDirFmt, dir, err)
	}
	defer func() { _ = d.Close() }()
	if err := d.Sync(); err != nil {
		return fmt.Errorf(messages.FsutilSyncDirFmt, dir, err)
	}
	return nil
}
