package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/rolecall/internal/role"
)

// runCLI executes the root command with a fresh flag state and
// captured output. Config loading is pinned to an absent file so the
// host's ~/.rolecall is never touched.
func runCLI(t *testing.T, rolesDir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ROLECALL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	flagConfig = ""
	flagRolesDir = ""
	createDescription = ""
	createPersona = false
	showShell = false
	showDescribeShell = false
	showCode = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--roles-dir", rolesDir))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCreateAndShow(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "create", "reviewer", "--description", "Review the given diff.")
	if err != nil {
		t.Fatalf("create failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `Created role "reviewer"`) {
		t.Errorf("expected creation message, got %q", out)
	}

	out, err = runCLI(t, dir, "", "show", "reviewer")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "Review the given diff.") {
		t.Errorf("expected role body, got %q", out)
	}
}

func TestCreatePersonaFlag(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "", "create", "Tester", "--description", "Test everything.", "--persona"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	out, err := runCLI(t, dir, "", "show", "Tester")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.HasPrefix(out, "You are Tester\n") {
		t.Errorf("expected persona header, got %q", out)
	}
}

func TestCreateOverwriteDeclined(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "", "create", "reviewer", "--description", "First version."); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Decline the overwrite prompt.
	out, err := runCLI(t, dir, "n\n", "create", "reviewer", "--description", "Second version.")
	if err != nil {
		t.Fatalf("create returned error on declined overwrite: %v", err)
	}
	if !strings.Contains(out, "Cancelled.") {
		t.Errorf("expected cancellation message, got %q", out)
	}

	show, _ := runCLI(t, dir, "", "show", "reviewer")
	if !strings.Contains(show, "First version.") {
		t.Errorf("expected original body untouched, got %q", show)
	}
}

func TestDeleteDeclinedLeavesRole(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "", "create", "reviewer", "--description", "Review the diff."); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	out, err := runCLI(t, dir, "n\n", "delete", "reviewer")
	if err != nil {
		t.Fatalf("delete returned error on declined confirmation: %v", err)
	}
	if !strings.Contains(out, "Cancelled.") {
		t.Errorf("expected cancellation message, got %q", out)
	}

	store := role.NewStore(dir)
	if !store.Exists("reviewer") {
		t.Error("expected role to survive a declined delete")
	}
}

func TestDeleteConfirmed(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "", "create", "reviewer", "--description", "Review the diff."); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	out, err := runCLI(t, dir, "y\n", "delete", "reviewer")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, `Deleted role "reviewer"`) {
		t.Errorf("expected deletion message, got %q", out)
	}

	if role.NewStore(dir).Exists("reviewer") {
		t.Error("expected role gone after confirmed delete")
	}
}

func TestShowNotFound(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "show", "no-such-role")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
	if !errors.Is(err, role.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestShowBuiltinByFlag(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "show", "--shell")
	if err != nil {
		t.Fatalf("show --shell failed: %v", err)
	}
	if !strings.Contains(out, "commands for") {
		t.Errorf("expected shell role body, got %q", out)
	}

	// Shell wins over the other mode flags.
	withAll, err := runCLI(t, dir, "", "show", "--shell", "--describe-shell", "--code")
	if err != nil {
		t.Fatalf("show with all flags failed: %v", err)
	}
	if withAll != out {
		t.Error("expected --shell to take priority over other mode flags")
	}

	// No flags at all falls back to the default role.
	def, err := runCLI(t, dir, "", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(def, "programming and system administration assistant") {
		t.Errorf("expected default role body, got %q", def)
	}
}

func TestListIncludesDefaults(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, name := range []string{role.DefaultName, role.ShellName, role.DescribeShellName, role.CodeName} {
		if !strings.Contains(out, name+".json") {
			t.Errorf("expected %q in listing, got %q", name, out)
		}
	}
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "resolve", "You are ShellGPT\nProvide short responses.")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if strings.TrimSpace(out) != "ShellGPT" {
		t.Errorf("expected ShellGPT, got %q", out)
	}
}

func TestResolveUnknownExitsZero(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "resolve", "unrelated text")
	if err != nil {
		t.Fatalf("resolve returned error for unknown message: %v", err)
	}
	if !strings.Contains(out, "no role identified") {
		t.Errorf("expected 'no role identified', got %q", out)
	}
}

func TestResolveFromStdin(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "You are Code Reviewer\nRules follow.", "resolve")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if strings.TrimSpace(out) != "Code Reviewer" {
		t.Errorf("expected Code Reviewer, got %q", out)
	}
}

func TestDefaultsCommandIdempotent(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "defaults")
	if err != nil {
		t.Fatalf("defaults failed: %v", err)
	}
	if !strings.Contains(out, "Seeded") {
		t.Errorf("expected seed output on first run, got %q", out)
	}

	out, err = runCLI(t, dir, "", "defaults")
	if err != nil {
		t.Fatalf("second defaults failed: %v", err)
	}
	if !strings.Contains(out, "already present") {
		t.Errorf("expected idempotent message, got %q", out)
	}
}
