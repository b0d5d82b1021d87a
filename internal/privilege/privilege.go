// Package privilege switches the effective identity of the process between
// root and the invoking user. devmake is started under sudo and drops its
// effective uid/gid early; the few operations that genuinely need root raise
// it back just for their duration.
package privilege

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/devmake/devmake/internal/messages"
)

// Identity abstracts the uid/gid syscalls to enable dependency injection.
type Identity interface {
	Geteuid() int
	Seteuid(uid int) error
	Setegid(gid int) error
}

// RealIdentity implements Identity with the real process identity.
type RealIdentity struct{}

// Geteuid returns the effective user id of the process.
func (RealIdentity) Geteuid() int { return unix.Geteuid() }

// Seteuid sets the effective user id of the process. The stdlib syscall
// variant is used because golang.org/x/sys/unix does not provide Seteuid on
// linux; syscall.Seteuid applies to all threads of the process.
func (RealIdentity) Seteuid(uid int) error { return syscall.Seteuid(uid) }

// Setegid sets the effective group id of the process. See Seteuid for why
// this is the stdlib syscall variant.
func (RealIdentity) Setegid(gid int) error { return syscall.Setegid(gid) }

// Switcher serializes effective-identity changes across goroutines. The
// identity is process-wide state, so exactly one raise/drop cycle runs at a
// time.
type Switcher struct {
	mu     sync.Mutex
	id     Identity
	getenv func(string) string
	log    *zap.Logger
}

// NewSwitcher returns a switcher using id and getenv, either of which may be
// nil for the real implementations. A nil logger is replaced with a nop
// logger.
func NewSwitcher(id Identity, getenv func(string) string, log *zap.Logger) *Switcher {
	if id == nil {
		id = RealIdentity{}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Switcher{id: id, getenv: getenv, log: log}
}

// AsRoot runs fn with effective uid and gid 0 and drops back to the invoking
// user afterwards, even when fn fails.
func (s *Switcher) AsRoot(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.raiseLocked(); err != nil {
		return err
	}
	fnErr := fn()
	if err := s.dropLocked(); err != nil {
		if fnErr != nil {
			s.log.Error("failed to drop privileges", zap.Error(err))
			return fnErr
		}
		return err
	}
	return fnErr
}

// DropToInvoker lowers the effective identity to the sudo invoker when the
// process is effectively root. Without SUDO_UID/SUDO_GID in the environment
// (a plain root login) the identity stays root.
func (s *Switcher) DropToInvoker() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropLocked()
}

func (s *Switcher) raiseLocked() error {
	if err := s.id.Seteuid(0); err != nil {
		return fmt.Errorf(messages.PrivilegeRaiseUIDFmt, err)
	}
	if err := s.id.Setegid(0); err != nil {
		return fmt.Errorf(messages.PrivilegeRaiseGIDFmt, err)
	}
	return nil
}

// dropLocked changes gid before uid: once the effective uid leaves root the
// process may no longer change its gid.
func (s *Switcher) dropLocked() error {
	if s.id.Geteuid() != 0 {
		return nil
	}
	uid, gid, err := s.invoker()
	if err != nil {
		return err
	}
	if err := s.id.Setegid(gid); err != nil {
		return fmt.Errorf(messages.PrivilegeDropGIDFmt, gid, err)
	}
	if err := s.id.Seteuid(uid); err != nil {
		return fmt.Errorf(messages.PrivilegeDropUIDFmt, uid, err)
	}
	s.log.Debug("dropped privileges", zap.Int("uid", uid), zap.Int("gid", gid))
	return nil
}

func (s *Switcher) invoker() (uid int, gid int, err error) {
	uid, err = s.invokerVar("SUDO_UID")
	if err != nil {
		return 0, 0, err
	}
	gid, err = s.invokerVar("SUDO_GID")
	if err != nil {
		return 0, 0, err
	}
	return uid, gid, nil
}

func (s *Switcher) invokerVar(key string) (int, error) {
	value := s.getenv(key)
	if value == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(messages.PrivilegeInvokerVarFmt, key, value, err)
	}
	return id, nil
}
