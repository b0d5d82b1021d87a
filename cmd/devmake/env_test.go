package main

import (
	"os"
	"strings"
	"testing"

	"github.com/devmake/devmake/internal/app"
	"github.com/devmake/devmake/internal/picker"
	"github.com/devmake/devmake/internal/profile"
)

type fakePicker struct {
	title   string
	options []string
	choose  []string
	err     error
}

func (f *fakePicker) MultiSelect(title string, options []string, selected *[]string) error {
	f.title = title
	f.options = append([]string(nil), options...)
	if f.err != nil {
		return f.err
	}
	*selected = f.choose
	return nil
}

func stubPicker(t *testing.T, f *fakePicker) {
	t.Helper()
	orig := newPickerUI
	newPickerUI = func() picker.UI { return f }
	t.Cleanup(func() { newPickerUI = orig })
}

// seedBlock writes one managed block through the profile manager. The
// variable is parked at an empty value first so the test leaves no trace in
// the process environment.
func seedBlock(t *testing.T, ctx *app.Context, tag, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := ctx.Profile.Add(tag, []profile.Var{{Name: name, Values: []string{"/opt/" + tag}}}); err != nil {
		t.Fatalf("seed block %s: %v", tag, err)
	}
}

func TestEnvAddWritesBlockAndProcessEnv(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	t.Setenv("DEVMAKE_GOROOT", "")

	out, _, err := executeRoot(t, "env", "add", "go", "DEVMAKE_GOROOT=/opt/go")
	if err != nil {
		t.Fatalf("env add error: %v", err)
	}
	if !strings.Contains(out, `Added environment block "go"`) {
		t.Fatalf("unexpected output: %q", out)
	}
	want := "# devmake installation of go\nexport DEVMAKE_GOROOT=/opt/go\n\n"
	if content := readProfileFile(t, ctx); content != want {
		t.Fatalf("profile content = %q, want %q", content, want)
	}
	if got := os.Getenv("DEVMAKE_GOROOT"); got != "/opt/go" {
		t.Fatalf("process env = %q, want /opt/go", got)
	}
}

func TestEnvAddSplitsCommaValues(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	t.Setenv("DEVMAKE_IDE_PATH", "")

	_, _, err := executeRoot(t, "env", "add", "ide", "DEVMAKE_IDE_PATH=/opt/ide/bin,/opt/ide/tools")
	if err != nil {
		t.Fatalf("env add error: %v", err)
	}
	content := readProfileFile(t, ctx)
	if !strings.Contains(content, "export DEVMAKE_IDE_PATH=/opt/ide/bin:/opt/ide/tools\n") {
		t.Fatalf("expected joined values, got %q", content)
	}
}

func TestEnvAddAccumulatesRepeatedNames(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	t.Setenv("DEVMAKE_TOOLS", "")

	_, _, err := executeRoot(t, "env", "add", "sdk", "DEVMAKE_TOOLS=/a", "DEVMAKE_TOOLS=/b")
	if err != nil {
		t.Fatalf("env add error: %v", err)
	}
	content := readProfileFile(t, ctx)
	if !strings.Contains(content, "export DEVMAKE_TOOLS=/a:/b\n") {
		t.Fatalf("expected accumulated values, got %q", content)
	}
}

func TestEnvAddKeepMergesCurrentValue(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	t.Setenv("DEVMAKE_KEEP_DIR", "/old")

	_, _, err := executeRoot(t, "env", "add", "sdk", "DEVMAKE_KEEP_DIR=/new")
	if err != nil {
		t.Fatalf("env add error: %v", err)
	}
	content := readProfileFile(t, ctx)
	if !strings.Contains(content, "export DEVMAKE_KEEP_DIR=/new:$DEVMAKE_KEEP_DIR\n") {
		t.Fatalf("expected keep merge in file, got %q", content)
	}
	if got := os.Getenv("DEVMAKE_KEEP_DIR"); got != "/new:/old" {
		t.Fatalf("process env = %q, want /new:/old", got)
	}
}

func TestEnvAddNoKeepOverwrites(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	t.Setenv("DEVMAKE_HOME_DIR", "/old")

	_, _, err := executeRoot(t, "env", "add", "sdk", "--no-keep", "DEVMAKE_HOME_DIR=/new")
	if err != nil {
		t.Fatalf("env add error: %v", err)
	}
	content := readProfileFile(t, ctx)
	if !strings.Contains(content, "export DEVMAKE_HOME_DIR=/new\n") {
		t.Fatalf("expected overwrite in file, got %q", content)
	}
	if strings.Contains(content, "$DEVMAKE_HOME_DIR") {
		t.Fatalf("expected no keep merge, got %q", content)
	}
	if got := os.Getenv("DEVMAKE_HOME_DIR"); got != "/new" {
		t.Fatalf("process env = %q, want /new", got)
	}
}

func TestEnvAddInvalidPair(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)

	_, _, err := executeRoot(t, "env", "add", "go", "NOEQUALS")
	if err == nil || !strings.Contains(err.Error(), "NAME=VALUE") {
		t.Fatalf("expected invalid pair error, got %v", err)
	}
}

func TestEnvAddDryRunWritesNothing(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	t.Setenv("DEVMAKE_DRY", "")

	out, _, err := executeRoot(t, "env", "add", "go", "--dry-run", "DEVMAKE_DRY=/x")
	if err != nil {
		t.Fatalf("env add error: %v", err)
	}
	if !strings.Contains(out, "+# devmake installation of go") {
		t.Fatalf("expected diff output, got %q", out)
	}
	if !strings.Contains(out, "+export DEVMAKE_DRY=/x") {
		t.Fatalf("expected added export line in diff, got %q", out)
	}
	if _, statErr := os.Stat(ctx.Profile.Path()); !os.IsNotExist(statErr) {
		t.Fatalf("expected profile to stay absent, stat err: %v", statErr)
	}
	if got := os.Getenv("DEVMAKE_DRY"); got != "" {
		t.Fatalf("expected process env untouched, got %q", got)
	}
}

func TestEnvRemoveNamedTag(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	seedBlock(t, ctx, "go", "DEVMAKE_RM_GO")
	seedBlock(t, ctx, "rust", "DEVMAKE_RM_RS")

	out, _, err := executeRoot(t, "env", "remove", "go")
	if err != nil {
		t.Fatalf("env remove error: %v", err)
	}
	if !strings.Contains(out, `Removed environment block "go"`) {
		t.Fatalf("unexpected output: %q", out)
	}
	content := readProfileFile(t, ctx)
	if strings.Contains(content, "installation of go") {
		t.Fatalf("expected go block to be gone, got %q", content)
	}
	if !strings.Contains(content, "installation of rust") {
		t.Fatalf("expected rust block to survive, got %q", content)
	}
}

func TestEnvRemoveAll(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	seedBlock(t, ctx, "go", "DEVMAKE_ALL_GO")
	seedBlock(t, ctx, "rust", "DEVMAKE_ALL_RS")

	_, _, err := executeRoot(t, "env", "remove", "--all")
	if err != nil {
		t.Fatalf("env remove error: %v", err)
	}
	if content := readProfileFile(t, ctx); content != "" {
		t.Fatalf("expected empty profile, got %q", content)
	}
}

func TestEnvRemoveArgsWithAllRejected(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)

	_, _, err := executeRoot(t, "env", "remove", "go", "--all")
	if err == nil || !strings.Contains(err.Error(), "--all") {
		t.Fatalf("expected tags-with-all error, got %v", err)
	}
}

func TestEnvRemoveNoBlocks(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)

	out, _, err := executeRoot(t, "env", "remove", "--all")
	if err != nil {
		t.Fatalf("env remove error: %v", err)
	}
	if !strings.Contains(out, "no managed blocks") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEnvRemoveNonInteractiveWithoutArgs(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	stubTerminal(t, false)
	seedBlock(t, ctx, "go", "DEVMAKE_NI_GO")

	_, _, err := executeRoot(t, "env", "remove")
	if err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestEnvRemoveInteractivePick(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	stubTerminal(t, true)
	seedBlock(t, ctx, "go", "DEVMAKE_PICK_GO")
	seedBlock(t, ctx, "rust", "DEVMAKE_PICK_RS")
	fake := &fakePicker{choose: []string{"rust"}}
	stubPicker(t, fake)

	out, _, err := executeRoot(t, "env", "remove")
	if err != nil {
		t.Fatalf("env remove error: %v", err)
	}
	if !strings.Contains(out, `Removed environment block "rust"`) {
		t.Fatalf("unexpected output: %q", out)
	}
	if len(fake.options) != 2 || fake.options[0] != "go" || fake.options[1] != "rust" {
		t.Fatalf("unexpected picker options: %v", fake.options)
	}
	content := readProfileFile(t, ctx)
	if !strings.Contains(content, "installation of go") {
		t.Fatalf("expected go block to survive, got %q", content)
	}
	if strings.Contains(content, "installation of rust") {
		t.Fatalf("expected rust block to be gone, got %q", content)
	}
}

func TestEnvRemovePickCancelled(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	stubTerminal(t, true)
	seedBlock(t, ctx, "go", "DEVMAKE_CANCEL_GO")
	stubPicker(t, &fakePicker{err: picker.ErrCancelled})

	out, _, err := executeRoot(t, "env", "remove")
	if err != nil {
		t.Fatalf("expected cancel to be swallowed, got %v", err)
	}
	if !strings.Contains(out, "removal cancelled") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(readProfileFile(t, ctx), "installation of go") {
		t.Fatalf("expected profile untouched after cancel")
	}
}

func TestEnvRemoveDryRun(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	seedBlock(t, ctx, "go", "DEVMAKE_DRYRM_GO")

	out, _, err := executeRoot(t, "env", "remove", "--dry-run", "go")
	if err != nil {
		t.Fatalf("env remove error: %v", err)
	}
	if !strings.Contains(out, "-# devmake installation of go") {
		t.Fatalf("expected deletion diff, got %q", out)
	}
	if !strings.Contains(readProfileFile(t, ctx), "installation of go") {
		t.Fatalf("expected profile untouched by dry run")
	}
}

func TestEnvRemoveDryRunNoChange(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	seedBlock(t, ctx, "go", "DEVMAKE_DRYRM_NOOP")

	out, _, err := executeRoot(t, "env", "remove", "--dry-run", "rust")
	if err != nil {
		t.Fatalf("env remove error: %v", err)
	}
	if !strings.Contains(out, "no profile changes") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEnvListPrintsTags(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)
	seedBlock(t, ctx, "go", "DEVMAKE_LIST_GO")
	seedBlock(t, ctx, "rust", "DEVMAKE_LIST_RS")

	out, _, err := executeRoot(t, "env", "list")
	if err != nil {
		t.Fatalf("env list error: %v", err)
	}
	if out != "go\nrust\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEnvListEmpty(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)

	out, _, err := executeRoot(t, "env", "list")
	if err != nil {
		t.Fatalf("env list error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestEnvPathPrintsProfile(t *testing.T) {
	ctx, _ := testContext(t)
	stubContext(t, ctx)

	out, _, err := executeRoot(t, "env", "path")
	if err != nil {
		t.Fatalf("env path error: %v", err)
	}
	if out != ctx.Profile.Path()+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParseVars(t *testing.T) {
	t.Run("splits and accumulates", func(t *testing.T) {
		vars, err := parseVars([]string{"A=/x,/y", "B=1", "A=/z"}, false)
		if err != nil {
			t.Fatalf("parseVars error: %v", err)
		}
		if len(vars) != 2 {
			t.Fatalf("expected 2 vars, got %d", len(vars))
		}
		if vars[0].Name != "A" || strings.Join(vars[0].Values, "|") != "/x|/y|/z" {
			t.Fatalf("unexpected first var: %+v", vars[0])
		}
		if vars[1].Name != "B" || strings.Join(vars[1].Values, "|") != "1" {
			t.Fatalf("unexpected second var: %+v", vars[1])
		}
		if vars[0].Keep != nil {
			t.Fatalf("expected nil keep by default")
		}
	})

	t.Run("no-keep sets keep false", func(t *testing.T) {
		vars, err := parseVars([]string{"A=1"}, true)
		if err != nil {
			t.Fatalf("parseVars error: %v", err)
		}
		if vars[0].Keep == nil || *vars[0].Keep {
			t.Fatalf("expected keep false, got %+v", vars[0].Keep)
		}
	})

	t.Run("rejects malformed pairs", func(t *testing.T) {
		for _, arg := range []string{"NOEQUALS", "=value", " =value"} {
			if _, err := parseVars([]string{arg}, false); err == nil {
				t.Fatalf("expected error for %q", arg)
			}
		}
	})
}
