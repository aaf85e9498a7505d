package service

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/zerosofts/nameit/internal/storage"
)

// fakePrompter answers every interactive question from canned data.
type fakePrompter struct {
	picks    map[string][]string // per-variable queue of values to enter
	format   string
	ranges   []string
	confirm  bool
	prompted []string
}

func (p *fakePrompter) Pick(name string, choices []string) (string, bool, error) {
	p.prompted = append(p.prompted, name)
	queue := p.picks[name]
	if len(queue) == 0 {
		// Fall back to selecting the first stored choice.
		if len(choices) > 0 {
			return choices[0], false, nil
		}
		return "value", true, nil
	}
	value := queue[0]
	p.picks[name] = queue[1:]
	for _, c := range choices {
		if c == value {
			return value, false, nil
		}
	}
	return value, true, nil
}

func (p *fakePrompter) PickFormat(choices []string) (string, bool, error) {
	for _, c := range choices {
		if c == p.format {
			return p.format, false, nil
		}
	}
	return p.format, true, nil
}

func (p *fakePrompter) Confirm(question string) (bool, error) {
	return p.confirm, nil
}

func (p *fakePrompter) Range(label string, items []string) (string, error) {
	if len(p.ranges) == 0 {
		return "", nil
	}
	expr := p.ranges[0]
	p.ranges = p.ranges[1:]
	return expr, nil
}

func newTestService(t *testing.T, prompter Prompter, opts Options) *Service {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "history.yaml"))
	svc, err := New(store, prompter, opts)
	if err != nil {
		t.Fatal(err)
	}
	svc.out = io.Discard
	svc.warnings = io.Discard
	return svc
}

func makeFiles(t *testing.T, names ...string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		if err := os.WriteFile(paths[i], []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir, paths
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunBatchRenamesSequentially(t *testing.T) {
	prompter := &fakePrompter{picks: map[string][]string{
		"NAME": {"Report", "Report"},
		"VER":  {"draft", "draft"},
	}}
	svc := newTestService(t, prompter, Options{Format: "NAME_###_VER"})
	dir, paths := makeFiles(t, "a.txt", "b.txt")

	if err := svc.Run(paths); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !exists(filepath.Join(dir, "Report_001_draft.txt")) {
		t.Error("first file was not renamed to Report_001_draft.txt")
	}
	if !exists(filepath.Join(dir, "Report_002_draft.txt")) {
		t.Error("second file was not renamed to Report_002_draft.txt")
	}
	if exists(paths[0]) || exists(paths[1]) {
		t.Error("sources should be gone after an in-place rename")
	}
}

func TestRunDoesNotRecordCLIFormats(t *testing.T) {
	prompter := &fakePrompter{picks: map[string][]string{"NAME": {"x"}}}
	svc := newTestService(t, prompter, Options{Format: "NAME", DryRun: true})
	_, paths := makeFiles(t, "a.txt")

	if err := svc.Run(paths); err != nil {
		t.Fatal(err)
	}
	if len(svc.History().Formats) != 0 {
		t.Errorf("a CLI-given format must not enter the history: %+v", svc.History().Formats)
	}
	// The entered choice is still remembered.
	if got := svc.History().ChoicesFor("NAME"); len(got) != 1 || got[0] != "x" {
		t.Errorf("expected NAME choice [x], got %v", got)
	}
}

func TestRunRecordsInteractiveFormats(t *testing.T) {
	prompter := &fakePrompter{format: "NAME_###", picks: map[string][]string{"NAME": {"x"}}}
	svc := newTestService(t, prompter, Options{DryRun: true})
	_, paths := makeFiles(t, "a.txt")

	if err := svc.Run(paths); err != nil {
		t.Fatal(err)
	}
	formats := svc.History().FormatTexts()
	if len(formats) != 1 || formats[0] != "NAME_###" {
		t.Errorf("expected recorded format NAME_###, got %v", formats)
	}
}

func TestRunPersistsHistory(t *testing.T) {
	store := storage.NewStore(filepath.Join(t.TempDir(), "history.yaml"))
	prompter := &fakePrompter{format: "NAME", picks: map[string][]string{"NAME": {"Report"}}}
	svc, err := New(store, prompter, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	svc.out = io.Discard
	svc.warnings = io.Discard
	_, paths := makeFiles(t, "a.txt")

	if err := svc.Run(paths); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.ChoicesFor("NAME"); len(got) != 1 || got[0] != "Report" {
		t.Errorf("history was not flushed: %v", got)
	}
}

func TestRunParseErrorAbortsBeforeTouchingFiles(t *testing.T) {
	prompter := &fakePrompter{}
	svc := newTestService(t, prompter, Options{Format: "BAD__FORMAT"})
	_, paths := makeFiles(t, "a.txt")

	if err := svc.Run(paths); err == nil {
		t.Fatal("expected a parse error")
	}
	if !exists(paths[0]) {
		t.Error("no file may be touched on a parse error")
	}
}

func TestRunCopyIsDefaultWithDestination(t *testing.T) {
	prompter := &fakePrompter{picks: map[string][]string{"NAME": {"out"}}}
	dest := t.TempDir()
	svc := newTestService(t, prompter, Options{Format: "NAME", Destination: dest})
	_, paths := makeFiles(t, "a.txt")

	if err := svc.Run(paths); err != nil {
		t.Fatal(err)
	}
	if !exists(filepath.Join(dest, "out.txt")) {
		t.Error("expected a copy in the destination directory")
	}
	if !exists(paths[0]) {
		t.Error("copy must keep the source")
	}
}

func TestRunCollisionSkippedWithoutConfirmation(t *testing.T) {
	prompter := &fakePrompter{picks: map[string][]string{"NAME": {"taken"}}, confirm: false}
	svc := newTestService(t, prompter, Options{Format: "NAME"})
	dir, paths := makeFiles(t, "a.txt", "taken.txt")

	if err := svc.Run(paths[:1]); err != nil {
		t.Fatal(err)
	}
	if !exists(paths[0]) {
		t.Error("a declined collision must leave the source in place")
	}
	if data, _ := os.ReadFile(filepath.Join(dir, "taken.txt")); string(data) != "taken.txt" {
		t.Error("a declined collision must not overwrite the target")
	}
}

func TestRunReplaceOverwritesCollisions(t *testing.T) {
	prompter := &fakePrompter{picks: map[string][]string{"NAME": {"taken"}}}
	svc := newTestService(t, prompter, Options{Format: "NAME", Replace: true})
	dir, paths := makeFiles(t, "a.txt", "taken.txt")

	if err := svc.Run(paths[:1]); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(filepath.Join(dir, "taken.txt")); string(data) != "a.txt" {
		t.Error("replace must overwrite the colliding target")
	}
}

func TestEditSessionPersists(t *testing.T) {
	store := storage.NewStore(filepath.Join(t.TempDir(), "history.yaml"))
	seed := &fakePrompter{format: "NAME_VER", picks: map[string][]string{"NAME": {"x"}, "VER": {"y"}}}
	svc, err := New(store, seed, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	svc.out = io.Discard
	svc.warnings = io.Discard
	_, paths := makeFiles(t, "a.txt")
	if err := svc.Run(paths); err != nil {
		t.Fatal(err)
	}

	// A second invocation prunes everything but keeps index 1 of each list.
	editPrompter := &fakePrompter{ranges: []string{"1", "1", "1"}}
	svc2, err := New(store, editPrompter, Options{})
	if err != nil {
		t.Fatal(err)
	}
	svc2.out = io.Discard
	svc2.warnings = io.Discard
	if err := svc2.Edit(); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Formats) != 1 {
		t.Errorf("expected one surviving format, got %+v", loaded.Formats)
	}
}
