package profile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/devmake/devmake/internal/messages"
)

const defaultShell = "/bin/bash"

var homeDir = homedir.Dir

// DefaultPath resolves the shell profile file devmake manages for the current
// user. zsh logins source ~/.zprofile instead of ~/.profile, and SHELL is the
// only portable hint for which applies.
func DefaultPath(getenv func(string) string) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ProfileHomeDirFmt, err)
	}
	shell := strings.ToLower(getenv("SHELL"))
	if shell == "" {
		shell = defaultShell
	}
	name := ".profile"
	if strings.Contains(shell, "zsh") {
		name = ".zprofile"
	}
	return filepath.Join(home, name), nil
}
