package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/config"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

func TestCLI_Parsing(t *testing.T) {
	t.Run("version flag prints version commit and date", func(t *testing.T) {
		// Given: a CLI parser with version, commit, and date fields
		var cli CLI
		var buf bytes.Buffer
		versionStr := "v1.0.0 abc1234 2026-01-01T00:00:00Z"
		k, err := kong.New(&cli,
			kong.Vars{"version": versionStr},
			kong.Writers(&buf, &buf),
			kong.Exit(func(int) { panic(errExitCalled) }),
		)
		if err != nil {
			t.Fatal(err)
		}

		// When: --version flag is passed
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic from --version flag")
			}
			err, ok := r.(error)
			if !ok || !errors.Is(err, errExitCalled) {
				panic(r)
			}

			// Then: version, commit, and date are all present in output
			output := buf.String()
			for _, want := range []string{"v1.0.0", "abc1234", "2026-01-01T00:00:00Z"} {
				if !strings.Contains(output, want) {
					t.Errorf("version output = %q, want to contain %q", output, want)
				}
			}
		}()

		k.Parse([]string{"--version"}) //nolint:errcheck // --version triggers panic via Exit hook
	})

	t.Run("no args selects the shell command", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: no arguments are provided
		kctx, err := k.Parse([]string{})
		if err != nil {
			t.Fatal(err)
		}

		// Then: the shell command is selected by default
		if kctx.Command() != "shell" {
			t.Errorf("got command %q, want %q", kctx.Command(), "shell")
		}
	})

	t.Run("shell command accepts --book flag", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: shell command is invoked with --book
		kctx, err := k.Parse([]string{"shell", "--book", "/tmp/friends.json"})
		if err != nil {
			t.Fatal(err)
		}

		// Then: the command and path are parsed correctly
		if kctx.Command() != "shell" {
			t.Errorf("got command %q, want %q", kctx.Command(), "shell")
		}
		if cli.Shell.Book != "/tmp/friends.json" {
			t.Errorf("got book %q, want %q", cli.Shell.Book, "/tmp/friends.json")
		}
	})

	t.Run("shell command defaults book to empty", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: shell command is invoked without --book
		_, err = k.Parse([]string{"shell"})
		if err != nil {
			t.Fatal(err)
		}

		// Then: the path stays empty so config decides
		if cli.Shell.Book != "" {
			t.Errorf("book = %q, want empty (config default)", cli.Shell.Book)
		}
	})

	t.Run("shell command accepts --plain flag", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: shell command is invoked with --plain
		_, err = k.Parse([]string{"shell", "--plain"})
		if err != nil {
			t.Fatal(err)
		}

		// Then: the flag is set
		if !cli.Shell.Plain {
			t.Error("Plain = false, want true")
		}
	})

	t.Run("tui command is parsed", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: tui command is invoked
		kctx, err := k.Parse([]string{"tui"})
		if err != nil {
			t.Fatal(err)
		}

		// Then: the command is parsed correctly
		if kctx.Command() != "tui" {
			t.Errorf("got command %q, want %q", kctx.Command(), "tui")
		}
	})

	t.Run("tui command accepts --book flag", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: tui command is invoked with --book
		_, err = k.Parse([]string{"tui", "--book", "/tmp/friends.json"})
		if err != nil {
			t.Fatal(err)
		}

		// Then: the path is parsed correctly
		if cli.Tui.Book != "/tmp/friends.json" {
			t.Errorf("got book %q, want %q", cli.Tui.Book, "/tmp/friends.json")
		}
	})

	t.Run("unknown command errors", func(t *testing.T) {
		// Given: a CLI parser
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		// When: an unknown command is invoked
		_, err = k.Parse([]string{"frobnicate"})

		// Then: an error is returned
		if err == nil {
			t.Fatal("expected error for unknown command")
		}
	})
}

func TestShellCmd_Run(t *testing.T) {
	t.Run("scripted session adds and lists a contact", func(t *testing.T) {
		// Given: a shell command with scripted input and a temp book path
		var buf bytes.Buffer
		in := strings.NewReader("add alice 1234567890\nphone alice\nexit\n")
		cfg := config.DefaultConfig()
		cfg.Book.Path = filepath.Join(t.TempDir(), "contacts.json")
		cmd := &ShellCmd{}

		// When: the shell loop runs to completion
		err := cmd.run(in, &buf, &cfg)

		// Then: the loop exits cleanly with the expected transcript
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{
			"How can I help you?",
			"Enter a command: ",
			"Contact added successfully",
			"1234567890",
			"Good bye!",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output = %q, want to contain %q", output, want)
			}
		}
	})

	t.Run("save with empty filename writes the configured book path", func(t *testing.T) {
		// Given: input that answers the save prompt with an empty line
		var buf bytes.Buffer
		in := strings.NewReader("add bob 5551234567\nsave\n\nexit\n")
		cfg := config.DefaultConfig()
		cfg.Book.Path = filepath.Join(t.TempDir(), "contacts.json")
		cmd := &ShellCmd{}

		// When: the session runs
		if err := cmd.run(in, &buf, &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Then: the book file exists at the configured path
		if _, err := os.Stat(cfg.Book.Path); err != nil {
			t.Errorf("book file not written: %v", err)
		}
		if !strings.Contains(buf.String(), "Address book saved to "+cfg.Book.Path) {
			t.Errorf("output = %q, want save confirmation with path", buf.String())
		}
	})

	t.Run("end of input exits without error", func(t *testing.T) {
		// Given: input that ends without a quit command
		var buf bytes.Buffer
		in := strings.NewReader("hello\n")
		cfg := config.DefaultConfig()
		cfg.Book.Path = filepath.Join(t.TempDir(), "contacts.json")
		cmd := &ShellCmd{}

		// When: the session runs off the end of input
		err := cmd.run(in, &buf, &cfg)

		// Then: no error is reported
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "How can I help you?") {
			t.Errorf("output = %q, want greeting", buf.String())
		}
	})
}

func TestTuiCmd_Run(t *testing.T) {
	t.Run("run returns error when not a TTY", func(t *testing.T) {
		// Given: a TuiCmd
		cmd := &TuiCmd{}

		// When: run is called with isTTY=false
		err := cmd.run(false, nil)

		// Then: an error mentioning "terminal" is returned
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "terminal") {
			t.Errorf("error = %q, want to contain 'terminal'", err)
		}
	})

	t.Run("run executes tea program when TTY", func(t *testing.T) {
		// Given: a TuiCmd and a mock tea program
		cmd := &TuiCmd{}
		mock := &mockTeaRunner{}

		// When: run is called with isTTY=true
		err := cmd.run(true, mock)

		// Then: no error is returned
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// And: the program was run
		if !mock.ran {
			t.Error("tea program was not run")
		}
	})

	t.Run("run returns tea program error", func(t *testing.T) {
		// Given: a TuiCmd and a mock that fails
		cmd := &TuiCmd{}
		mock := &mockTeaRunner{err: fmt.Errorf("tea: terminal error")}

		// When: run is called
		err := cmd.run(true, mock)

		// Then: the tea error is returned
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "tea: terminal error") {
			t.Errorf("error = %q, want to contain tea error", err)
		}
	})
}

// mockTeaRunner stubs tea program execution for TuiCmd testing.
type mockTeaRunner struct {
	ran bool
	err error
}

func (m *mockTeaRunner) Run() (tea.Model, error) {
	m.ran = true
	return nil, m.err
}

// Compile-time check: mockTeaRunner satisfies teaRunner.
var _ teaRunner = (*mockTeaRunner)(nil)
