// Package service orchestrates a nameit run: format selection, the per-file
// render loop, the file operations, and the single history flush at the end.
package service

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zerosofts/nameit/internal/clipboard"
	"github.com/zerosofts/nameit/internal/editor"
	"github.com/zerosofts/nameit/internal/errors"
	"github.com/zerosofts/nameit/internal/fileops"
	"github.com/zerosofts/nameit/internal/models"
	"github.com/zerosofts/nameit/internal/renderer"
	"github.com/zerosofts/nameit/internal/storage"
	"github.com/zerosofts/nameit/internal/ui"
)

// Prompter bundles every interactive question a session can ask.
type Prompter interface {
	renderer.Prompter
	editor.Prompter
	PickFormat(choices []string) (value string, isNew bool, err error)
	Confirm(question string) (bool, error)
}

// Options carries the per-invocation settings from the CLI surface.
type Options struct {
	// Format is a template given on the command line; it is used as-is and
	// never recorded in the history.
	Format string
	// Destination places results in another directory; with a destination
	// the default operation is copy instead of in-place rename.
	Destination string
	// Rename and Move force the respective operation.
	Rename bool
	Move   bool
	// Replace overwrites colliding targets without confirmation.
	Replace bool
	// Last reuses each variable's most recent choice without prompting.
	Last bool
	// DryRun prints the plan and performs nothing.
	DryRun bool
	// Clip copies the rendered names to the system clipboard.
	Clip bool
}

// Service ties the history store, the prompt frontend and the file
// operations together for one process invocation.
type Service struct {
	store    *storage.Store
	history  *models.History
	prompter Prompter
	opts     Options
	out      io.Writer
	warnings io.Writer
}

// New creates a service and loads the history store.
func New(store *storage.Store, prompter Prompter, opts Options) (*Service, error) {
	history, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		history:  history,
		prompter: prompter,
		opts:     opts,
		out:      os.Stdout,
		warnings: os.Stderr,
	}, nil
}

// History exposes the in-memory history tables.
func (s *Service) History() *models.History {
	return s.history
}

// Run processes a batch of files: one render pass and one file operation
// per path, sequentially. Recoverable per-file errors are reported and the
// batch continues; a cancellation stops the loop and still flushes the
// history mutations committed for prior files.
func (s *Service) Run(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	format, record, err := s.chooseFormat()
	if err != nil {
		if errors.IsCanceled(err) {
			return s.flush()
		}
		return err
	}
	// Parse errors abort before any file is touched.
	tmpl, err := models.ParseTemplate(format)
	if err != nil {
		return err
	}
	if record {
		s.history.AddFormat(tmpl)
	}
	fmt.Fprintf(s.out, "%s: %s\n", ui.Title("Template"), ui.RenderTemplate(tmpl))

	rend := renderer.New(tmpl, s.history, s.prompter, s.opts.Last)
	mode := s.mode()
	var rendered []string

	for i, path := range paths {
		fmt.Fprintf(s.out, "%s: %s\n", ui.Title("File"), path)
		ctx := models.RenderContext{
			Index:   i + 1,
			OldName: fileops.Stem(path),
			Now:     time.Now(),
		}
		parts, err := rend.RenderParts(ctx)
		if err != nil {
			if errors.IsCanceled(err) {
				break
			}
			// An invalid date pattern poisons the whole template.
			if flushErr := s.flush(); flushErr != nil {
				fmt.Fprintf(s.warnings, "Warning: %v\n", flushErr)
			}
			return err
		}
		target := fileops.Target(path, s.opts.Destination, strings.Join(parts, ""))
		fmt.Fprintf(s.out, "%s: %s -> %s\n", ui.Action(mode.String()), path, ui.RenderResolved(tmpl, parts))
		rendered = append(rendered, target)

		if s.opts.DryRun {
			continue
		}
		proceed, err := s.confirmCollision(target)
		if err != nil {
			break // canceled
		}
		if !proceed {
			continue
		}
		if err := fileops.Apply(mode, path, target); err != nil {
			fmt.Fprintln(s.warnings, errors.GetAppError(err).Error())
		}
	}

	if s.opts.Clip && len(rendered) > 0 {
		if err := clipboard.Copy(strings.Join(rendered, "\n")); err != nil {
			fmt.Fprintf(s.warnings, "Warning: %v\n", err)
		}
	}
	return s.flush()
}

// Edit runs an interactive pruning session over the persisted store. The
// result is committed only when the session completes; a canceled session
// leaves the on-disk store untouched.
func (s *Service) Edit() error {
	if err := editor.New(s.history, s.prompter).Run(); err != nil {
		return err
	}
	return s.flush()
}

// chooseFormat picks the template text for this run. record reports whether
// the format belongs in the history (CLI-given formats do not).
func (s *Service) chooseFormat() (format string, record bool, err error) {
	if s.opts.Format != "" {
		return s.opts.Format, false, nil
	}
	texts := s.history.FormatTexts()
	if s.opts.Last && len(texts) > 0 {
		return texts[len(texts)-1], true, nil
	}
	value, _, err := s.prompter.PickFormat(texts)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// mode resolves the file operation: explicit flags win; otherwise copy when
// a destination is given, in-place rename when not.
func (s *Service) mode() fileops.Mode {
	switch {
	case s.opts.Rename:
		return fileops.ModeRename
	case s.opts.Move:
		return fileops.ModeMove
	case s.opts.Destination != "":
		return fileops.ModeCopy
	default:
		return fileops.ModeRename
	}
}

// confirmCollision asks before overwriting an existing target unless
// Replace is set. Returns false to skip the file.
func (s *Service) confirmCollision(target string) (bool, error) {
	if s.opts.Replace || !fileops.Exists(target) {
		return true, nil
	}
	ok, err := s.prompter.Confirm(fmt.Sprintf("%s already exists, replace?", target))
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *Service) flush() error {
	return s.store.Save(s.history)
}
