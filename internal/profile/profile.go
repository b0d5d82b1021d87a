// Package profile maintains tagged environment blocks in the user's shell
// profile. Each block belongs to one framework tag, starts with a comment
// header, sets one or more variables, and ends with a blank line. Blocks are
// mutually exclusive per tag: adding a block replaces any previous block with
// the same tag.
package profile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/devmake/devmake/internal/fsutil"
	"github.com/devmake/devmake/internal/messages"
)

const (
	// pathVarName is the one variable written without an export prefix, since
	// login shells already export it.
	pathVarName   = "PATH"
	listSeparator = string(os.PathListSeparator)
	defaultPerm   = os.FileMode(0o644)
)

// ErrInvalidSpec marks block validation failures detected before any file or
// process mutation.
var ErrInvalidSpec = errors.New(messages.ProfileSpecInvalid)

// Var is one environment variable inside a block. Values are joined with the
// platform list separator. A nil Keep means true: the current process value,
// when non-empty, is preserved behind the new one.
type Var struct {
	Name   string
	Values []string
	Keep   *bool
}

func (v Var) keep() bool {
	return v.Keep == nil || *v.Keep
}

// System abstracts the process environment and filesystem state the manager
// touches, to enable dependency injection in tests.
type System interface {
	Getenv(key string) string
	Setenv(key, value string) error
	ReadFile(name string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	AppendFile(name string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the real process and filesystem.
type RealSystem struct{}

// Getenv returns the value of the environment variable key.
func (RealSystem) Getenv(key string) string { return os.Getenv(key) }

// Setenv sets the environment variable key for the current process.
func (RealSystem) Setenv(key, value string) error { return os.Setenv(key, value) }

// ReadFile reads the named file.
func (RealSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// WriteFileAtomic writes data to filename atomically.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// AppendFile appends data to the named file, creating it when missing.
func (RealSystem) AppendFile(name string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Manager reads and writes the managed blocks of one shell profile file.
type Manager struct {
	sys  System
	path string
	log  *zap.Logger
}

// NewManager returns a manager for the profile at path. A nil logger is
// replaced with a nop logger.
func NewManager(sys System, path string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{sys: sys, path: path, log: log}
}

// Path returns the profile file the manager operates on.
func (m *Manager) Path() string { return m.path }

// Header renders the comment line that opens the block for tag.
func Header(tag string) string {
	return fmt.Sprintf(messages.ProfileBlockHeaderFmt, tag)
}

// headerPrefix is the header rendering up to the tag.
var headerPrefix = strings.TrimSuffix(fmt.Sprintf(messages.ProfileBlockHeaderFmt, ""), "\n")

// Add writes the block for tag to the profile and applies the same values to
// the current process environment. Any previous block with the same tag is
// removed first, so reapplying a spec leaves a single block.
func (m *Manager) Add(tag string, vars []Var) error {
	if err := validateSpec(tag, vars); err != nil {
		return err
	}
	if err := m.Remove(tag); err != nil {
		return err
	}

	block, updates := renderBlock(tag, vars, m.sys.Getenv)
	for _, u := range updates {
		if err := m.sys.Setenv(u.name, u.value); err != nil {
			return fmt.Errorf(messages.ProfileSetEnvFmt, u.name, err)
		}
		m.log.Debug("updated process environment",
			zap.String("tag", tag),
			zap.String("name", u.name),
			zap.String("value", u.value))
	}
	if err := m.sys.AppendFile(m.path, []byte(block), defaultPerm); err != nil {
		return fmt.Errorf(messages.ProfileAppendFmt, m.path, err)
	}
	m.log.Debug("added environment block", zap.String("tag", tag), zap.String("profile", m.path))
	return nil
}

// Remove deletes every block tagged tag from the profile. A missing profile
// or a missing block is not an error.
func (m *Manager) Remove(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return specErrorf(messages.ProfileTagRequired)
	}
	current, found, err := m.read()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	updated := removeBlocks(current, Header(tag))
	if updated == current {
		return nil
	}
	if err := m.write(updated); err != nil {
		return err
	}
	m.log.Debug("removed environment block", zap.String("tag", tag), zap.String("profile", m.path))
	return nil
}

// Tags lists the framework tags that currently have a block in the profile,
// in file order. Duplicate headers report once.
func (m *Manager) Tags() ([]string, error) {
	current, found, err := m.read()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var tags []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(current))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, headerPrefix) {
			continue
		}
		tag := line[len(headerPrefix):]
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.ProfileReadFmt, m.path, err)
	}
	return tags, nil
}

func (m *Manager) read() (string, bool, error) {
	data, err := m.sys.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.ProfileReadFmt, m.path, err)
	}
	return string(data), true, nil
}

// write replaces the profile atomically, preserving its current permissions.
func (m *Manager) write(content string) error {
	perm := defaultPerm
	if info, err := m.sys.Stat(m.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := m.sys.WriteFileAtomic(m.path, []byte(content), perm); err != nil {
		return fmt.Errorf(messages.ProfileWriteFmt, m.path, err)
	}
	return nil
}

// removeBlocks drops every block opened by header from content. A block ends
// at the first blank line after its header; a block whose blank line was lost
// to hand editing owns the rest of the file.
func removeBlocks(content, header string) string {
	for {
		start := strings.Index(content, header)
		if start < 0 {
			return content
		}
		rest := content[start:]
		end := strings.Index(rest, "\n\n")
		if end < 0 {
			return content[:start]
		}
		content = content[:start] + rest[end+2:]
	}
}

type envUpdate struct {
	name  string
	value string
}

// renderBlock builds the profile block for tag and the process environment
// updates that accompany it. getenv supplies the pre-update environment.
func renderBlock(tag string, vars []Var, getenv func(string) string) (string, []envUpdate) {
	var b strings.Builder
	b.WriteString(Header(tag))
	updates := make([]envUpdate, 0, len(vars))
	for _, v := range vars {
		value := strings.Join(v.Values, listSeparator)
		fileValue := value
		envValue := value
		if current := getenv(v.Name); v.keep() && current != "" {
			envValue = value + listSeparator + current
			fileValue = value + listSeparator + "$" + v.Name
		}
		updates = append(updates, envUpdate{name: v.Name, value: envValue})

		if v.Name != pathVarName {
			b.WriteString("export ")
		}
		b.WriteString(v.Name)
		b.WriteString("=")
		b.WriteString(fileValue)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String(), updates
}

func validateSpec(tag string, vars []Var) error {
	if strings.TrimSpace(tag) == "" {
		return specErrorf(messages.ProfileTagRequired)
	}
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if strings.TrimSpace(v.Name) == "" {
			return specErrorf(messages.ProfileVarNameRequiredFmt, tag)
		}
		if len(v.Values) == 0 {
			return specErrorf(messages.ProfileVarValuesRequiredFmt, tag, v.Name)
		}
		if _, dup := seen[v.Name]; dup {
			return specErrorf(messages.ProfileVarDuplicateFmt, tag, v.Name)
		}
		seen[v.Name] = struct{}{}
	}
	return nil
}

func specErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}
