package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"devmake", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"devmake", "unknown"}, &out, &out); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"devmake", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"devmake", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	}
	t.Cleanup(func() { executeFunc = orig })

	var out bytes.Buffer
	code := 0
	runMain([]string{"devmake"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if out.String() != "" {
		t.Fatalf("expected silent exit, got %q", out.String())
	}
}

func TestRunMainExecExitError(t *testing.T) {
	execErr := exec.Command("false").Run()
	var exitErr *exec.ExitError
	if !errors.As(execErr, &exitErr) {
		t.Fatalf("expected exec.ExitError, got %v", execErr)
	}

	orig := executeFunc
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return execErr
	}
	t.Cleanup(func() { executeFunc = orig })

	var out bytes.Buffer
	code := 0
	runMain([]string{"devmake"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != exitErr.ExitCode() {
		t.Fatalf("expected exit code %d, got %d", exitErr.ExitCode(), code)
	}
	if out.Len() == 0 {
		t.Fatalf("expected error output")
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"devmake", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origDate
	})

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "dev defaults", version: "dev", commit: "unknown", date: "unknown", want: "dev"},
		{name: "commit only", version: "1.2.0", commit: "abc1234", date: "unknown", want: "1.2.0 (commit abc1234)"},
		{name: "date only", version: "1.2.0", commit: "unknown", date: "2026-01-02", want: "1.2.0 (built 2026-01-02)"},
		{name: "commit and date", version: "1.2.0", commit: "abc1234", date: "2026-01-02", want: "1.2.0 (commit abc1234, built 2026-01-02)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, BuildDate = tt.version, tt.commit, tt.date
			if got := versionString(); got != tt.want {
				t.Fatalf("versionString() = %q, want %q", got, tt.want)
			}
		})
	}
}
