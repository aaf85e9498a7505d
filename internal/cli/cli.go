// Package cli wires the parsed command line to a service session.
package cli

import (
	"fmt"

	"github.com/zerosofts/nameit/internal/config"
	"github.com/zerosofts/nameit/internal/service"
	"github.com/zerosofts/nameit/internal/storage"
	"github.com/zerosofts/nameit/internal/ui"
)

// Options mirrors the command-line surface.
type Options struct {
	Format      string
	Destination string
	Rename      bool
	Move        bool
	Replace     bool
	Last        bool
	Edit        bool
	DryRun      bool
	Clip        bool
	MaxChoices  int
}

// Run executes one nameit invocation.
func Run(opts Options, paths []string) error {
	if opts.Rename && opts.Move {
		return fmt.Errorf("--rename and --move are mutually exclusive")
	}
	if !opts.Edit && len(paths) == 0 {
		return fmt.Errorf("no paths given; see nameit --help")
	}

	historyPath, err := config.HistoryPath()
	if err != nil {
		return fmt.Errorf("could not resolve history location: %w", err)
	}
	store := storage.NewStore(historyPath)

	maxChoices := opts.MaxChoices
	if maxChoices <= 0 {
		maxChoices = config.DefaultMaxChoices
	}
	console := &ui.Console{MaxChoices: maxChoices}

	svc, err := service.New(store, console, service.Options{
		Format:      opts.Format,
		Destination: opts.Destination,
		Rename:      opts.Rename,
		Move:        opts.Move,
		Replace:     opts.Replace,
		Last:        opts.Last,
		DryRun:      opts.DryRun,
		Clip:        opts.Clip,
	})
	if err != nil {
		return err
	}

	if opts.Edit {
		return svc.Edit()
	}
	return svc.Run(paths)
}
