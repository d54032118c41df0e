package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fireflycons/lineprogress"
)

func execute(t *testing.T, ctx context.Context, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

func TestBarCommand(t *testing.T) {
	stdout, stderr, err := execute(t, context.Background(), "",
		"bar", "--steps", "4", "--delay", "0s", "--width", "60", "--label", "Copy")
	if err != nil {
		t.Fatalf("bar: %v", err)
	}

	if !strings.HasPrefix(stderr, "Copy |") {
		t.Errorf("expected the first draw to carry the label, got %q", stderr)
	}
	if !strings.Contains(stderr, "Copy (half way there) |") {
		t.Errorf("expected the label to change half way, got %q", stderr)
	}
	if !strings.HasSuffix(stderr, "\r\n") {
		t.Errorf("expected a committed final line, got %q", stderr)
	}
	if !strings.Contains(stdout, "done") {
		t.Errorf("expected a done log line on stdout, got %q", stdout)
	}
}

func TestStatusCommand(t *testing.T) {
	_, stderr, err := execute(t, context.Background(), "",
		"status", "--steps", "3", "--delay", "0s", "--format", "ab", "--label", "Scan")
	if err != nil {
		t.Fatalf("status: %v", err)
	}

	if !strings.HasPrefix(stderr, "\rScan: a\rScan: b\rScan: a\rScan: b") {
		t.Errorf("unexpected spinner output %q", stderr)
	}
	if !strings.HasSuffix(stderr, "\n") {
		t.Errorf("expected a committed final line, got %q", stderr)
	}
}

func TestLinesCommand(t *testing.T) {
	input := "alpha\nbeta\ngamma\n"

	stdout, stderr, err := execute(t, context.Background(), input,
		"lines", "--total", "3", "--width", "60")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}

	if stdout != input {
		t.Errorf("stdout = %q, want %q", stdout, input)
	}
	if !strings.Contains(stderr, "Lines |") {
		t.Errorf("expected a progress bar on stderr, got %q", stderr)
	}
	if !strings.HasSuffix(stderr, "|"+strings.Repeat("=", 60-5-15-2)+"| ETA: 0h00m00s\r\n") {
		t.Errorf("expected a full final bar, got %q", stderr)
	}
}

func TestLinesCommandWithoutTotal(t *testing.T) {
	stdout, stderr, err := execute(t, context.Background(), "one\ntwo", "lines")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}

	if stdout != "one\ntwo\n" {
		t.Errorf("stdout = %q, want every line terminated", stdout)
	}
	if !strings.HasPrefix(stderr, "\rLines: -\rLines: \\\rLines: |") {
		t.Errorf("expected a spinner on stderr, got %q", stderr)
	}
}

func TestInvalidFormatFlag(t *testing.T) {
	_, _, err := execute(t, context.Background(), "", "bar", "--steps", "1", "--format", "[]")
	if !errors.Is(err, lineprogress.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "label: From file\nsteps: 2\ndelay: 0s\nformat: \"<->\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	_, stderr, err := execute(t, context.Background(), "", "bar", "--config", path, "--width", "50")
	if err != nil {
		t.Fatalf("bar: %v", err)
	}
	if !strings.HasPrefix(stderr, "From file <") {
		t.Errorf("expected the file's label and format, got %q", stderr)
	}

	_, stderr, err = execute(t, context.Background(), "", "bar", "--config", path, "--width", "50", "--label", "From flag")
	if err != nil {
		t.Fatalf("bar: %v", err)
	}
	if !strings.HasPrefix(stderr, "From flag <") {
		t.Errorf("expected the flag to override the file, got %q", stderr)
	}
}

func TestBarCommandCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := execute(t, ctx, "", "bar", "--steps", "5", "--delay", "1h")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
