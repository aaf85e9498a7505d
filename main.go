package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zerosofts/nameit/internal/cli"
	"github.com/zerosofts/nameit/internal/config"
	"github.com/zerosofts/nameit/internal/errors"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`nameit - rename or copy files from reusable name templates

USAGE:
    nameit [OPTIONS] <file...>
    nameit -e

A format string is a sequence of '_'-separated segments: {literal text},
### zero-padded file index, %%Y-style date patterns, * old-name parts,
? the whole old name, and anything else a named variable resolved
interactively with recall of previously entered values.

OPTIONS:
    -f, -format FORMAT    Format to render; not saved in the history
    -d, -destination DIR  Place results in DIR (default operation: copy)
    -r, -rename           Rename in place (same mount point only)
    -m, -move             Copy then remove the original
    -R, -replace          Overwrite colliding targets without asking
    -l, -last             Reuse each variable's most recent choice
    -t, -test             Print the plan and perform nothing
    -e, -edit             Edit the stored formats and choices
    -n, -choices N        Stored choices to show per prompt (default %d)
    -clip                 Copy the resulting names to the clipboard
    -version              Print version information
    -help                 Show this help

EXAMPLES:
    nameit -f 'Report_###_%%F' *.pdf      # Report_001_2026-08-27.pdf, ...
    nameit -d ~/sorted photo.jpg          # copy under a remembered template
    nameit -e                             # prune stored formats and choices

STORAGE:
    Default directory: ~/.nameit
    Override with: NAMEIT_DIR=<path>
`, config.DefaultMaxChoices)
}

func main() {
	var opts cli.Options
	var showVersion, showHelp bool

	flag.StringVar(&opts.Format, "format", "", "Format to rename the file in")
	flag.StringVar(&opts.Format, "f", "", "Format to rename the file in")
	flag.StringVar(&opts.Destination, "destination", "", "Destination directory")
	flag.StringVar(&opts.Destination, "d", "", "Destination directory")
	flag.BoolVar(&opts.Rename, "rename", false, "Rename instead of copying")
	flag.BoolVar(&opts.Rename, "r", false, "Rename instead of copying")
	flag.BoolVar(&opts.Move, "move", false, "Move instead of copying")
	flag.BoolVar(&opts.Move, "m", false, "Move instead of copying")
	flag.BoolVar(&opts.Replace, "replace", false, "Replace colliding targets without asking")
	flag.BoolVar(&opts.Replace, "R", false, "Replace colliding targets without asking")
	flag.BoolVar(&opts.Last, "last", false, "Repeat each variable's most recent choice")
	flag.BoolVar(&opts.Last, "l", false, "Repeat each variable's most recent choice")
	flag.BoolVar(&opts.DryRun, "test", false, "Print the new filenames and do nothing")
	flag.BoolVar(&opts.DryRun, "t", false, "Print the new filenames and do nothing")
	flag.BoolVar(&opts.Edit, "edit", false, "Edit saved formats and choices")
	flag.BoolVar(&opts.Edit, "e", false, "Edit saved formats and choices")
	flag.IntVar(&opts.MaxChoices, "choices", config.DefaultMaxChoices, "Number of choices to show from history")
	flag.IntVar(&opts.MaxChoices, "n", config.DefaultMaxChoices, "Number of choices to show from history")
	flag.BoolVar(&opts.Clip, "clip", false, "Copy the resulting names to the clipboard")
	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.Usage = printHelp
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("nameit version %s\n", version)
		os.Exit(0)
	}

	if err := cli.Run(opts, flag.Args()); err != nil {
		os.Exit(errors.NewCLIErrorHandler(false).Handle(err))
	}
}
