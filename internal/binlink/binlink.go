// Package binlink maintains executable symlinks in the devmake bin
// directory and keeps that directory on PATH.
package binlink

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/profile"
)

// System is the minimal interface needed for symlink maintenance.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	Remove(name string) error
	Symlink(oldname string, newname string) error
	MkdirAll(path string, perm os.FileMode) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Lstat returns a FileInfo describing the named file without following symlinks.
func (RealSystem) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }

// Remove removes the named file.
func (RealSystem) Remove(name string) error { return os.Remove(name) }

// Symlink creates newname as a symbolic link to oldname.
func (RealSystem) Symlink(oldname string, newname string) error {
	return os.Symlink(oldname, newname)
}

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Profile installs the PATH block that exposes the bin directory.
type Profile interface {
	Add(tag string, vars []profile.Var) error
}

// Linker maintains symlinks under the bin directory.
type Linker struct {
	sys     System
	binDir  string
	profile Profile
	log     *zap.Logger
}

// NewLinker returns a Linker writing symlinks to binDir and registering
// the directory on PATH through prof.
func NewLinker(sys System, binDir string, prof Profile, log *zap.Logger) *Linker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Linker{sys: sys, binDir: binDir, profile: prof, log: log}
}

// Path returns the symlink location for name.
func (l *Linker) Path(name string) string { return filepath.Join(l.binDir, name) }

// Ensure links execPath as <bindir>/<name>, replacing any previous link,
// and keeps the bin directory on PATH through the shell profile.
func (l *Linker) Ensure(execPath, name string) error {
	if err := l.sys.MkdirAll(l.binDir, 0o755); err != nil {
		return fmt.Errorf(messages.BinlinkMkdirFmt, l.binDir, err)
	}
	if err := l.profile.Add(messages.BinlinkTag, []profile.Var{{Name: "PATH", Values: []string{l.binDir}}}); err != nil {
		return err
	}
	link := l.Path(name)
	// Lstat so a dangling link from a removed install is still replaced.
	if _, err := l.sys.Lstat(link); err == nil {
		if err := l.sys.Remove(link); err != nil {
			return fmt.Errorf(messages.BinlinkRemoveFmt, link, err)
		}
	}
	if err := l.sys.Symlink(execPath, link); err != nil {
		return fmt.Errorf(messages.BinlinkSymlinkFmt, link, execPath, err)
	}
	l.log.Debug("linked executable", zap.String("link", link), zap.String("target", execPath))
	return nil
}

// Remove drops the named link. A missing link is a no-op.
func (l *Linker) Remove(name string) error {
	link := l.Path(name)
	if _, err := l.sys.Lstat(link); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf(messages.BinlinkRemoveFmt, link, err)
	}
	if err := l.sys.Remove(link); err != nil {
		return fmt.Errorf(messages.BinlinkRemoveFmt, link, err)
	}
	l.log.Debug("removed executable link", zap.String("link", link))
	return nil
}
