// Package hostinfo probes and caches facts about the host: its dpkg
// architectures and the distro identity from os-release. Facts are probed
// lazily and cached only on success, so a transient failure is retried on the
// next call.
package hostinfo

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/devmake/devmake/internal/messages"
)

// DefaultOSReleasePath is where distro identity lives on the host.
const DefaultOSReleasePath = "/etc/os-release"

// System abstracts command execution and file reads to enable dependency
// injection in tests.
type System interface {
	Output(name string, args ...string) (string, error)
	Run(name string, args ...string) error
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using os/exec and the real filesystem.
type RealSystem struct{}

// Output runs the command and returns its standard output.
func (RealSystem) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Run runs the command, discarding its standard output.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ReadFile reads the named file.
func (RealSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Elevator runs a function with effective root privileges.
type Elevator interface {
	AsRoot(fn func() error) error
}

// Host is a lazily-initialized store of facts about the machine. All methods
// are safe for concurrent use.
type Host struct {
	mu       sync.Mutex
	sys      System
	elevator Elevator
	log      *zap.Logger

	osRelease string

	arch          string
	foreign       []string
	foreignLoaded bool
	entries       []osEntry
	entriesLoaded bool
}

// New returns a fact store backed by sys. elevator may be nil when the caller
// already runs with the privileges dpkg needs; an empty osRelease selects
// DefaultOSReleasePath and a nil logger is replaced with a nop logger.
func New(sys System, elevator Elevator, osRelease string, log *zap.Logger) *Host {
	if osRelease == "" {
		osRelease = DefaultOSReleasePath
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{sys: sys, elevator: elevator, log: log, osRelease: osRelease}
}

// Arch returns the dpkg architecture of the host, for example amd64 or i386.
func (h *Host) Arch() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.archLocked()
}

func (h *Host) archLocked() (string, error) {
	if h.arch != "" {
		return h.arch, nil
	}
	out, err := h.sys.Output("dpkg", "--print-architecture")
	if err != nil {
		return "", fmt.Errorf(messages.HostArchFmt, err)
	}
	h.arch = strings.TrimRight(out, "\n")
	h.log.Debug("probed host architecture", zap.String("arch", h.arch))
	return h.arch, nil
}

// ForeignArchs returns the foreign dpkg architectures enabled on the host.
func (h *Host) ForeignArchs() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.foreignLocked()
}

func (h *Host) foreignLocked() ([]string, error) {
	if h.foreignLoaded {
		return h.foreign, nil
	}
	out, err := h.sys.Output("dpkg", "--print-foreign-architectures")
	if err != nil {
		return nil, fmt.Errorf(messages.HostForeignArchesFmt, err)
	}
	h.foreign = strings.Fields(out)
	h.foreignLoaded = true
	h.log.Debug("probed foreign architectures", zap.Strings("archs", h.foreign))
	return h.foreign, nil
}

// AddForeignArch registers arch with dpkg unless it is already the host
// architecture or an enabled foreign one. It reports whether the dpkg
// configuration changed. The foreign cache is invalidated after a
// successful registration so the next read observes it.
func (h *Host) AddForeignArch(arch string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.archLocked()
	if err != nil {
		return false, err
	}
	if arch == current {
		return false, nil
	}
	foreign, err := h.foreignLocked()
	if err != nil {
		return false, err
	}
	if slices.Contains(foreign, arch) {
		return false, nil
	}

	h.log.Info("adding foreign architecture", zap.String("arch", arch))
	run := func() error { return h.sys.Run("dpkg", "--add-architecture", arch) }
	if h.elevator != nil {
		err = h.elevator.AsRoot(run)
	} else {
		err = run()
	}
	if err != nil {
		return false, fmt.Errorf(messages.HostAddForeignArchFmt, arch, err)
	}
	h.foreign, h.foreignLoaded = nil, false
	return true, nil
}

// DistroIDs returns the values of the ID and ID_LIKE entries from os-release,
// in file order. Multi-value ID_LIKE entries stay a single string.
func (h *Host) DistroIDs() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries, err := h.entriesLocked()
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.Key == "ID" || e.Key == "ID_LIKE" {
			ids = append(ids, e.Value)
		}
	}
	return ids, nil
}

// DistroVersion returns the version entry for the distro called name: the
// VERSION_ID value when ID matches, or the <NAME>_ID value when ID_LIKE
// matches.
func (h *Host) DistroVersion(name string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries, err := h.entriesLocked()
	if err != nil {
		return "", err
	}
	version, ok := distroVersion(entries, name)
	if !ok {
		return "", fmt.Errorf(messages.HostDistroVersionNotFoundFmt, name, h.osRelease)
	}
	return version, nil
}

func (h *Host) entriesLocked() ([]osEntry, error) {
	if h.entriesLoaded {
		return h.entries, nil
	}
	data, err := h.sys.ReadFile(h.osRelease)
	if err != nil {
		return nil, fmt.Errorf(messages.HostOSReleaseReadFmt, h.osRelease, err)
	}
	h.entries = parseOSRelease(string(data))
	h.entriesLoaded = true
	return h.entries, nil
}
