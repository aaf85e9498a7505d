// Package fileops performs the actual copy, rename and move operations and
// the path assembly around them.
package fileops

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zerosofts/nameit/internal/errors"
)

// Mode selects what happens to the source file.
type Mode int

const (
	// ModeCopy duplicates the file under the new name.
	ModeCopy Mode = iota
	// ModeRename renames in place; only works within one mount point.
	ModeRename
	// ModeMove copies then removes the original, so it crosses mount points.
	ModeMove
)

func (m Mode) String() string {
	switch m {
	case ModeRename:
		return "Rename"
	case ModeMove:
		return "Move"
	default:
		return "Copy"
	}
}

// Stem returns the file's base name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Target assembles the destination path for a rendered stem: the source
// extension is preserved, and destDir (when non-empty) replaces the source
// directory.
func Target(src, destDir, stem string) string {
	name := stem + filepath.Ext(src)
	if destDir != "" {
		return filepath.Join(destDir, name)
	}
	return filepath.Join(filepath.Dir(src), name)
}

// Exists reports whether a file already sits at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Apply performs the file operation for one source/target pair.
func Apply(mode Mode, src, target string) error {
	switch mode {
	case ModeRename:
		if err := os.Rename(src, target); err != nil {
			return errors.FileOperationError("rename", src, err)
		}
	case ModeMove:
		if err := copyFile(src, target); err != nil {
			return errors.FileOperationError("move", src, err)
		}
		if err := os.Remove(src); err != nil {
			return errors.FileOperationError("move", src, err)
		}
	default:
		if err := copyFile(src, target); err != nil {
			return errors.FileOperationError("copy", src, err)
		}
	}
	return nil
}

func copyFile(src, target string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
