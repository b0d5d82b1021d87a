// Package config loads and edits the per-user devmake settings file.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/devmake/devmake/internal/messages"
)

// Settings selects where devmake writes profiles, installs, and launchers.
// The zero value means "use the computed defaults" for every entry.
type Settings struct {
	Profile  ProfileSettings  `toml:"profile,omitempty"`
	Install  InstallSettings  `toml:"install,omitempty"`
	Launcher LauncherSettings `toml:"launcher,omitempty"`
}

// ProfileSettings configures the shell profile integration.
type ProfileSettings struct {
	// File overrides the shell profile that receives environment blocks.
	File string `toml:"file,omitempty"`
}

// InstallSettings configures installation directories.
type InstallSettings struct {
	FrameworksDir string `toml:"frameworks_dir,omitempty"`
	BinDir        string `toml:"bin_dir,omitempty"`
}

// LauncherSettings configures desktop launcher behavior.
type LauncherSettings struct {
	// Pin controls pinning fresh launchers to the app bar. Unset means on.
	Pin *bool `toml:"pin,omitempty"`
}

// PinLaunchers reports whether new launchers should be pinned.
func (s *Settings) PinLaunchers() bool {
	return s.Launcher.Pin == nil || *s.Launcher.Pin
}

// Validate checks the path fields. source names the file in errors.
func (s *Settings) Validate(source string) error {
	if s.Profile.File != "" && !filepath.IsAbs(s.Profile.File) {
		return fmt.Errorf(messages.ConfigProfileFileNotAbsoluteFmt, source, s.Profile.File)
	}
	if s.Install.FrameworksDir != "" && !filepath.IsAbs(s.Install.FrameworksDir) {
		return fmt.Errorf(messages.ConfigFrameworksDirNotAbsoluteFmt, source, s.Install.FrameworksDir)
	}
	if s.Install.BinDir != "" && !filepath.IsAbs(s.Install.BinDir) {
		return fmt.Errorf(messages.ConfigBinDirNotAbsoluteFmt, source, s.Install.BinDir)
	}
	return nil
}

// KeyType classifies the kind of value a settings key accepts.
type KeyType string

const (
	// KeyBool accepts true or false.
	KeyBool KeyType = "bool"
	// KeyPath accepts an absolute filesystem path.
	KeyPath KeyType = "path"
)

// KeyDef describes a single entry devmake config set accepts.
type KeyDef struct {
	Name string // dotted section.key form
	Type KeyType
}

// keys is the canonical ordered registry of settable entries.
// Order matches the settings template.
var keys = []KeyDef{
	{Name: "profile.file", Type: KeyPath},
	{Name: "install.frameworks_dir", Type: KeyPath},
	{Name: "install.bin_dir", Type: KeyPath},
	{Name: "launcher.pin", Type: KeyBool},
}

// Keys returns the settable entries in template order.
func Keys() []KeyDef {
	out := make([]KeyDef, len(keys))
	copy(out, keys)
	return out
}

// LookupKey resolves a dotted section.key name against the registry.
func LookupKey(name string) (KeyDef, bool) {
	for _, k := range keys {
		if k.Name == name {
			return k, true
		}
	}
	return KeyDef{}, false
}

// Get returns the current value of a registered key as a display string.
// Unset entries come back empty.
func (s *Settings) Get(name string) (string, bool) {
	switch name {
	case "profile.file":
		return s.Profile.File, true
	case "install.frameworks_dir":
		return s.Install.FrameworksDir, true
	case "install.bin_dir":
		return s.Install.BinDir, true
	case "launcher.pin":
		if s.Launcher.Pin == nil {
			return "", true
		}
		return fmt.Sprintf("%t", *s.Launcher.Pin), true
	}
	return "", false
}
