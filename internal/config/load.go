package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/devmake/devmake/internal/fsutil"
	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/templates"
)

const templateName = "config.toml"

// Load reads the settings file named by p, migrating a legacy location on
// the way. A missing file yields zero-value settings, not an error.
func Load(p Paths) (*Settings, error) {
	if err := migrateLegacy(p); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, p.ConfigFile, err)
	}
	return Parse(data, p.ConfigFile)
}

// LoadLenient reads the settings file without strict key checking or
// validation. Repair paths use it to look at partially valid files.
func LoadLenient(p Paths) (*Settings, error) {
	if err := migrateLegacy(p); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, p.ConfigFile, err)
	}
	return ParseLenient(data, p.ConfigFile)
}

// Parse parses and validates settings TOML data. source names the origin
// in error messages.
func Parse(data []byte, source string) (*Settings, error) {
	s, err := ParseLenient(data, source)
	if err != nil {
		return nil, err
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnknownEntriesFmt, source, err)
	}
	if err := s.Validate(source); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseLenient parses settings TOML data, failing only on syntax errors.
func ParseLenient(data []byte, source string) (*Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFmt, source, err)
	}
	return &s, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var s Settings
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&s)
}

// DefaultContent returns the embedded settings template. It seeds the
// settings file when devmake config set runs before one exists.
func DefaultContent() ([]byte, error) {
	return templates.Read(templateName)
}

// Save writes the settings to the configured location, creating parent
// directories as needed.
func Save(p Paths, s *Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf(messages.ConfigEncodeFmt, err)
	}
	dir := filepath.Dir(p.ConfigFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.ConfigMkdirFmt, dir, err)
	}
	if err := fsutil.WriteFileAtomic(p.ConfigFile, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFmt, p.ConfigFile, err)
	}
	return nil
}

// migrateLegacy renames the pre-1.0 settings file into the current
// location. When both files exist the current one wins and the legacy
// file stays where it is.
func migrateLegacy(p Paths) error {
	if p.LegacyFile == "" {
		return nil
	}
	if _, err := os.Stat(p.LegacyFile); err != nil {
		return nil
	}
	if _, err := os.Stat(p.ConfigFile); err == nil {
		return nil
	}
	dir := filepath.Dir(p.ConfigFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.ConfigMkdirFmt, dir, err)
	}
	if err := os.Rename(p.LegacyFile, p.ConfigFile); err != nil {
		return fmt.Errorf(messages.ConfigMigrateFmt, p.LegacyFile, p.ConfigFile, err)
	}
	return nil
}
