package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteStubCreatesExecutableThatSucceeds(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "ok-stub")
	WriteStub(t, dir, "ok-stub")

	info, err := os.Stat(stubPath)
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}

	cmd := exec.Command(stubPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected success exit, got %v", err)
	}
}

func TestWriteStubWithExitCreatesExecutableWithRequestedExitCode(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "exit-stub")
	WriteStubWithExit(t, dir, "exit-stub", 7)

	cmd := exec.Command(stubPath)
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected non-zero exit status")
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("expected exit code 7, got %d", exitErr.ExitCode())
	}
}

func TestWriteStubEchoPrintsOutput(t *testing.T) {
	dir := t.TempDir()
	WriteStubEcho(t, dir, "echo-stub", "amd64")

	out, err := exec.Command(filepath.Join(dir, "echo-stub")).Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if string(out) != "amd64\n" {
		t.Fatalf("expected %q, got %q", "amd64\n", string(out))
	}
}

func TestWriteStubEchoPrintsMultipleLines(t *testing.T) {
	dir := t.TempDir()
	WriteStubEcho(t, dir, "echo-stub", "i386\narmhf")

	out, err := exec.Command(filepath.Join(dir, "echo-stub")).Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if string(out) != "i386\narmhf\n" {
		t.Fatalf("expected %q, got %q", "i386\narmhf\n", string(out))
	}
}

func TestWriteStubRecordArgsCapturesArguments(t *testing.T) {
	dir := t.TempDir()
	capture := filepath.Join(dir, "args.txt")
	WriteStubRecordArgs(t, dir, "record-stub", capture)

	if err := exec.Command(filepath.Join(dir, "record-stub"), "--add-architecture", "i386").Run(); err != nil {
		t.Fatalf("run stub: %v", err)
	}

	data, err := os.ReadFile(capture)
	if err != nil {
		t.Fatalf("read capture: %v", err)
	}
	if string(data) != "--add-architecture\ni386\n" {
		t.Fatalf("unexpected capture %q", string(data))
	}
}

func TestPrependPathPutsDirFirst(t *testing.T) {
	dir := t.TempDir()
	PrependPath(t, dir)

	path := os.Getenv("PATH")
	if !strings.HasPrefix(path, dir+string(os.PathListSeparator)) {
		t.Fatalf("expected PATH to start with %q, got %q", dir, path)
	}

	WriteStub(t, dir, "shadow-stub")
	resolved, err := exec.LookPath("shadow-stub")
	if err != nil {
		t.Fatalf("lookpath: %v", err)
	}
	if filepath.Dir(resolved) != dir {
		t.Fatalf("expected lookup in %q, got %q", dir, resolved)
	}
}

func TestBoolPtr(t *testing.T) {
	ptr := BoolPtr(true)
	if ptr == nil {
		t.Fatal("expected non-nil pointer")
	}
	if !*ptr {
		t.Fatal("expected pointer value true")
	}
}
