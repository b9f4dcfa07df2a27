package commands

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"ResumeBuilder/internal/cli/api"
	"ResumeBuilder/internal/config"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	cfg := &config.Config{}
	code, out := run(t, cfg)
	if code != 2 || !strings.Contains(out, "Resume CLI") {
		t.Fatalf("global help expected, got %d: %s", code, out)
	}
	for _, name := range []string{"login", "list", "create", "render", "reorder", "add", "watch"} {
		if !strings.Contains(out, name) {
			t.Fatalf("help must list %q", name)
		}
	}

	if code, out = run(t, cfg, "help"); code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	if code, out = run(t, cfg, "help", "reorder"); code != 0 || !strings.Contains(out, "reorder <id> <from|section> <to>") {
		t.Fatalf("expected reorder usage, got %d: %s", code, out)
	}

	if _, out = run(t, cfg, "help", "nope"); !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	if code, _ = run(t, cfg, "no-such"); code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_RunPaths(t *testing.T) {
	cfg := &config.Config{}

	RegisterCmd(fakeCmd{name: "x", usage: "x", run: func(context.Context, *config.Config, []string) error { return nil }})
	if code, _ := run(t, cfg, "x"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	RegisterCmd(fakeCmd{name: "u", usage: "u <arg>", run: func(context.Context, *config.Config, []string) error { return ErrUsage }})
	if code, out := run(t, cfg, "u"); code != 2 || !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected, got %d: %s", code, out)
	}

	RegisterCmd(fakeCmd{name: "e", usage: "e", run: func(context.Context, *config.Config, []string) error { return fmt.Errorf("boom") }})
	if code, out := run(t, cfg, "e"); code != 1 || !strings.Contains(out, "e error: boom") {
		t.Fatalf("error line expected, got: %s", out)
	}

	RegisterCmd(fakeCmd{name: "a", usage: "a", run: func(context.Context, *config.Config, []string) error {
		return fmt.Errorf("list: %w", api.ErrUnauthorized)
	}})
	if _, out := run(t, cfg, "a"); !strings.Contains(out, "run 'login <owner>' first") {
		t.Fatalf("login hint expected, got: %s", out)
	}
}
