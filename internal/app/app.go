// Package app builds the execution context shared by devmake commands. The
// context is constructed once at process start and passed by reference;
// nothing in it hides behind package-level state.
package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/devmake/devmake/internal/binlink"
	"github.com/devmake/devmake/internal/config"
	"github.com/devmake/devmake/internal/hostinfo"
	"github.com/devmake/devmake/internal/launcher"
	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/privilege"
	"github.com/devmake/devmake/internal/profile"
)

// Context carries the loaded settings and the managers commands operate on.
type Context struct {
	Log      *zap.Logger
	Settings *config.Settings
	Paths    config.Paths

	Profile   *profile.Manager
	Host      *hostinfo.Host
	Launchers *launcher.Manager
	Links     *binlink.Linker
	Privilege *privilege.Switcher
}

// Options configure context construction.
type Options struct {
	// Verbose installs a zap development logger on the context; the default
	// is a nop logger.
	Verbose bool
	// Getenv supplies environment lookups. nil means os.Getenv.
	Getenv func(string) string
	// Identity supplies the uid/gid syscalls. nil means the real process
	// identity.
	Identity privilege.Identity
}

// New loads the settings file, resolves the per-user paths, and wires the
// managers together.
func New(opts Options) (*Context, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	log := zap.NewNop()
	if opts.Verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf(messages.AppLoggerFmt, err)
		}
	}

	// The settings file location never depends on the settings themselves,
	// so resolve once to find it, load, then resolve again for the
	// directory overrides it may carry.
	base, err := config.ResolvePaths(getenv, nil)
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(base)
	if err != nil {
		return nil, err
	}
	paths, err := config.ResolvePaths(getenv, settings)
	if err != nil {
		return nil, err
	}

	profilePath := settings.Profile.File
	if profilePath == "" {
		profilePath, err = profile.DefaultPath(getenv)
		if err != nil {
			return nil, err
		}
	}

	// Under sudo the process starts effectively root; drop to the invoker
	// before any manager touches a user-owned file.
	switcher := privilege.NewSwitcher(opts.Identity, getenv, log)
	if err := switcher.DropToInvoker(); err != nil {
		return nil, err
	}

	prof := profile.NewManager(profile.RealSystem{}, profilePath, log)

	return &Context{
		Log:       log,
		Settings:  settings,
		Paths:     paths,
		Profile:   prof,
		Host:      hostinfo.New(hostinfo.RealSystem{}, switcher, "", log),
		Launchers: launcher.NewManager(launcher.RealSystem{}, paths.ApplicationsDir, paths.IconsDir, launcher.NewGSettings(log), log),
		Links:     binlink.NewLinker(binlink.RealSystem{}, paths.BinDir, prof, log),
		Privilege: switcher,
	}, nil
}
