package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ytget/bouquet-updater/internal/cli"
	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/download"
	"github.com/ytget/bouquet-updater/internal/enigma"
	"github.com/ytget/bouquet-updater/internal/session"
)

// errReported is returned when the failure was already printed
var errReported = errors.New("command failed")

// runner holds one CLI invocation's session and terminal
type runner struct {
	cfg      *config.Config
	terminal *cli.Terminal
	session  *session.Session
}

// loadConfig reads the config file, or relocates the defaults under --sandbox
func loadConfig() (*config.Config, error) {
	if sandboxDir != "" {
		cfg := config.ForRoot(sandboxDir)
		return cfg, cfg.Validate()
	}
	return config.Load(configPath)
}

func newRunner(assumeYes bool) (*runner, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	terminal := cli.NewTerminal(os.Stdin, os.Stdout, os.Stderr, assumeYes)

	downloader := download.NewService(nil)
	downloader.SetUpdateCallback(terminal.OnTaskUpdate)

	var reloader enigma.Reloader
	if noReload {
		reloader = enigma.NopReloader{}
	}

	s := session.New(session.NewServices(cfg, nil, downloader, reloader), cfg.IndexFile, terminal)
	s.SetConfirmInstall(true)
	return &runner{cfg: cfg, terminal: terminal, session: s}, nil
}

// catalogSelector is the part of the session used to pick bouquets by name
type catalogSelector interface {
	Catalog() []string
	ToggleName(name string) bool
}

// load downloads the bundle and selects names, or everything with all
func (r *runner) load(ctx context.Context, names []string, all bool) error {
	if err := r.session.Start(ctx); err != nil {
		return err
	}
	return selectBouquets(r.session, names, all)
}

// selectBouquets toggles every named bouquet, or the whole catalog with all.
// Unknown names are reported together after the known ones were selected.
func selectBouquets(s catalogSelector, names []string, all bool) error {
	if all {
		for _, name := range s.Catalog() {
			s.ToggleName(name)
		}
		return nil
	}

	var unknown []string
	for _, name := range names {
		if !s.ToggleName(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown bouquet(s): %v (run 'bouquet-updater list')", unknown)
	}
	return nil
}

// dispatch runs cmd and turns a reported failure into a non-zero exit
func (r *runner) dispatch(ctx context.Context, cmd session.Command) error {
	if err := r.session.Dispatch(ctx, cmd); err != nil {
		return err
	}
	if r.terminal.Failed() {
		return errReported
	}
	return nil
}
