package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/command"
	"github.com/smileynet/rolo/internal/config"
	"github.com/smileynet/rolo/internal/shell"
	"github.com/smileynet/rolo/internal/store"
	"github.com/smileynet/rolo/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Run the interactive command shell."`
	Tui     TuiCmd           `cmd:"" help:"Open the full-screen address book browser."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolo/config.yaml"),
		".rolo/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// --- Shell command ---

// ShellCmd runs the interactive command loop on stdin/stdout.
type ShellCmd struct {
	Book  string `help:"Address book file path (overrides config)." placeholder:"PATH"`
	Plain bool   `help:"Force plain output even if stdout is a TTY."`
}

// Run loads config and starts the shell on the standard streams.
func (c *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if c.Book != "" {
		cfg.Book.Path = c.Book
	}
	if c.Plain {
		cfg.UI.Plain = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return c.run(os.Stdin, os.Stdout, cfg)
}

// run executes the shell loop with the given streams, enabling testable wiring.
func (c *ShellCmd) run(r io.Reader, w io.Writer, cfg *config.Config) error {
	sh := shell.New(r, w)
	d := command.NewDispatcher(&command.Session{
		Book:        book.New(),
		Store:       store.NewFileStore(),
		IO:          sh,
		DefaultPath: cfg.Book.Path,
	})
	return sh.Run(d)
}

// --- Tui command ---

// TuiCmd opens the full-screen address book browser.
type TuiCmd struct {
	Book string `help:"Address book file path (overrides config)." placeholder:"PATH"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the browser TUI.
func (c *TuiCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("tui: requires a terminal (TTY)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if c.Book != "" {
		cfg.Book.Path = c.Book
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if cfg.UI.Plain {
		return fmt.Errorf("tui: disabled by ui.plain, use the shell instead")
	}

	m := tui.NewModel(store.NewFileStore(), cfg.Book.Path, cfg.Shell.BatchSize)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return c.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (c *TuiCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("tui: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
