package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddThenList(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "nested", "todos.db"))
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCommand(t, "add", "--priority", "high", "Buy", "milk")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.HasPrefix(out, "added ") {
		t.Errorf("expected confirmation, got %q", out)
	}

	out, err = runCommand(t, "list", "--filter", "unfinished")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Buy milk") || !strings.Contains(out, "high") || !strings.Contains(out, "unfinished") {
		t.Errorf("expected task in listing, got %q", out)
	}

	out, err = runCommand(t, "list", "--filter", "completed")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "no tasks") {
		t.Errorf("expected empty listing, got %q", out)
	}
}

func TestAdd_Rejects(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "error")

	if _, err := runCommand(t, "add", "--priority", "urgent", "x"); err == nil {
		t.Error("expected error for unknown priority")
	}
	if _, err := runCommand(t, "add", "--priority", "low", "   "); err == nil {
		t.Error("expected error for blank text")
	}
}
