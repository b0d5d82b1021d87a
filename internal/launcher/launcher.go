// Package launcher writes freedesktop application launchers and manages
// their pin state on the desktop app bar.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/devmake/devmake/internal/fsutil"
	"github.com/devmake/devmake/internal/messages"
)

// System is the minimal interface needed for launcher operations.
type System interface {
	Getenv(key string) string
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Glob(pattern string) ([]string, error)
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Getenv returns the value of the environment variable.
func (RealSystem) Getenv(key string) string { return os.Getenv(key) }

// Stat returns file info for the given path.
func (RealSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadFile reads the file at the given path.
func (RealSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFileAtomic writes data to path atomically.
func (RealSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(path, data, perm)
}

// Glob returns the names matching the shell file name pattern.
func (RealSystem) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

const (
	desktopEnvVar = "XDG_CURRENT_DESKTOP"
	unityDesktop  = "Unity"

	// runningAppsMarker separates pinned entries from the running section
	// of the app bar. New pins go in front of it.
	runningAppsMarker = "unity://running-apps"
	launcherTagPrefix = "application://"
)

// ErrPinUnavailable reports that no usable favorites store was found.
var ErrPinUnavailable = errors.New(messages.LauncherPinUnavailable)

// Manager writes launchers and icons under the XDG data directories.
type Manager struct {
	sys   System
	apps  string
	icons string
	fav   Favorites
	log   *zap.Logger
}

// NewManager returns a Manager writing desktop entries to appsDir and icons
// to iconsDir. fav may be nil when no favorites store exists on the host.
func NewManager(sys System, appsDir, iconsDir string, fav Favorites, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{sys: sys, apps: appsDir, icons: iconsDir, fav: fav, log: log}
}

// Path returns the location of filename inside the applications directory.
func (m *Manager) Path(filename string) string { return filepath.Join(m.apps, filename) }

// Create renders the entry and writes it into the applications directory.
func (m *Manager) Create(e Entry) error {
	if strings.TrimSpace(e.Filename) == "" {
		return errors.New(messages.LauncherFilenameRequired)
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New(messages.LauncherNameRequired)
	}
	if strings.TrimSpace(e.Exec) == "" {
		return errors.New(messages.LauncherExecRequired)
	}
	content, err := e.Render()
	if err != nil {
		return err
	}
	if err := m.sys.MkdirAll(m.apps, 0o755); err != nil {
		return fmt.Errorf(messages.LauncherMkdirFmt, m.apps, err)
	}
	path := m.Path(e.Filename)
	if err := m.sys.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.LauncherWriteFmt, path, err)
	}
	m.log.Debug("wrote desktop entry", zap.String("path", path))
	return nil
}

// Exists reports whether the desktop entry file is present.
func (m *Manager) Exists(filename string) bool {
	_, err := m.sys.Stat(m.Path(filename))
	return err == nil
}

// Pin adds the launcher to the app bar favorites. Already pinned entries
// are left alone. Returns ErrPinUnavailable when the host has no usable
// favorites store.
func (m *Manager) Pin(filename string) error {
	if m.fav == nil || !m.fav.Available() {
		return ErrPinUnavailable
	}
	favorites, err := m.fav.List()
	if err != nil {
		return err
	}
	tag := launcherTagPrefix + filename
	if slices.Contains(favorites, tag) {
		return nil
	}
	index := slices.Index(favorites, runningAppsMarker)
	if index < 0 {
		index = len(favorites)
	}
	favorites = slices.Insert(favorites, index, tag)
	if err := m.fav.Set(favorites); err != nil {
		return err
	}
	m.log.Debug("pinned launcher", zap.String("filename", filename))
	return nil
}

// Pinned reports whether the launcher shows up on the app bar. Outside
// Unity there is no favorites list to consult, so a present desktop entry
// counts as pinned.
func (m *Manager) Pinned(filename string) (bool, error) {
	if !m.Exists(filename) {
		return false, nil
	}
	if m.sys.Getenv(desktopEnvVar) != unityDesktop {
		return true, nil
	}
	if m.fav == nil || !m.fav.Available() {
		return false, nil
	}
	favorites, err := m.fav.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(favorites, launcherTagPrefix+filename), nil
}

// CopyIcon installs the first file matching pattern into the icons
// directory as filename and returns the destination path. An empty
// filename keeps the source file's base name. A pattern with no matches
// is not an error; the launcher simply ships without an icon and the
// returned path is empty.
func (m *Manager) CopyIcon(pattern, filename string) (string, error) {
	matches, err := m.sys.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf(messages.LauncherIconGlobFmt, pattern, err)
	}
	if len(matches) == 0 {
		m.log.Warn("no icon matched pattern", zap.String("pattern", pattern))
		return "", nil
	}
	if filename == "" {
		filename = filepath.Base(matches[0])
	}
	data, err := m.sys.ReadFile(matches[0])
	if err != nil {
		return "", fmt.Errorf(messages.LauncherIconReadFmt, matches[0], err)
	}
	if err := m.sys.MkdirAll(m.icons, 0o755); err != nil {
		return "", fmt.Errorf(messages.LauncherMkdirFmt, m.icons, err)
	}
	dest := filepath.Join(m.icons, filename)
	if err := m.sys.WriteFileAtomic(dest, data, 0o644); err != nil {
		return "", fmt.Errorf(messages.LauncherIconWriteFmt, dest, err)
	}
	m.log.Debug("copied icon", zap.String("source", matches[0]), zap.String("dest", dest))
	return dest, nil
}
