package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/devmake/devmake/internal/messages"
)

// homeDir resolves the invoking user's home directory. Swappable in tests.
var homeDir = homedir.Dir

// Paths holds the resolved per-user locations devmake reads and writes.
type Paths struct {
	// ConfigFile is the settings file, <config home>/devmake/config.toml.
	ConfigFile string
	// LegacyFile is the pre-1.0 settings location, <config home>/devmake.toml.
	LegacyFile string
	// DataHome is $XDG_DATA_HOME or ~/.local/share.
	DataHome string
	// FrameworksDir receives installed framework trees.
	FrameworksDir string
	// BinDir receives executable symlinks and is kept on PATH.
	BinDir string
	// ApplicationsDir receives desktop entries.
	ApplicationsDir string
	// IconsDir receives launcher icons.
	IconsDir string
}

// ResolvePaths computes the default locations from the environment and
// applies directory overrides from s. s may be nil.
func ResolvePaths(getenv func(string) string, s *Settings) (Paths, error) {
	home, err := homeDir()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigHomeDirFmt, err)
	}
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	p := Paths{
		ConfigFile:      filepath.Join(configHome, "devmake", "config.toml"),
		LegacyFile:      filepath.Join(configHome, "devmake.toml"),
		DataHome:        dataHome,
		FrameworksDir:   filepath.Join(home, ".devmake", "frameworks"),
		BinDir:          filepath.Join(dataHome, "devmake", "bin"),
		ApplicationsDir: filepath.Join(dataHome, "applications"),
		IconsDir:        filepath.Join(dataHome, "icons"),
	}
	if s != nil {
		if s.Install.FrameworksDir != "" {
			p.FrameworksDir = s.Install.FrameworksDir
		}
		if s.Install.BinDir != "" {
			p.BinDir = s.Install.BinDir
		}
	}
	return p, nil
}
