package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"monkey/internal/diag"
	"monkey/internal/pipeline"
	"monkey/internal/token"
	"monkey/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestTokenizeReportsUnknownCharacters(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.mk", "let x = 5 @ 6;")
	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("expected trailing EOF, got %s", last.Kind)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", res.Bag.Len())
	}
	if got := res.Bag.Items()[0].Code; got != diag.LexUnknownChar {
		t.Fatalf("expected LEX1001, got %s", got.ID())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "nope.mk"), 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("<stdin>", []byte("a == b"), 0)
	kinds := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Ident, token.Eq, token.Ident, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Messages())
	}
}

func TestParseSource(t *testing.T) {
	res, err := ParseSource(context.Background(), "<input>", []byte("let x = 1 + 2 * 3;"), 0)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if got := res.Program.String(); got != "let x = (1 + (2 * 3));" {
		t.Fatalf("rendered %q", got)
	}
	if len(res.Errors) != 0 || res.Bag.HasErrors() {
		t.Fatalf("unexpected errors %v", res.Errors)
	}
	if res.Timing == nil || len(res.Timing.Phases) != 1 || res.Timing.Phases[0].Name != "parse" {
		t.Fatalf("unexpected timing %+v", res.Timing)
	}
}

func TestParseFileWithErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.mk", "let = 5;\nlet y 7;")
	res, err := Parse(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected parse errors")
	}
	if res.Bag.Len() != len(res.Errors) {
		t.Fatalf("bag has %d items, errors has %d", res.Bag.Len(), len(res.Errors))
	}
	if res.Timing == nil || len(res.Timing.Phases) != 2 {
		t.Fatalf("expected load+parse phases, got %+v", res.Timing)
	}

	res.AttachTimings()
	var found bool
	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			found = true
			if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"kind":"parse"`) {
				t.Fatalf("unexpected timing note %+v", d.Notes)
			}
		}
	}
	if !found {
		t.Fatal("timing diagnostic not attached")
	}
}

func TestParseMaxDiagnostics(t *testing.T) {
	res, err := ParseSource(context.Background(), "<input>", []byte("let = 1; let = 2; let = 3;"), 1)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected bag capped at 1, got %d", res.Bag.Len())
	}
}

func TestListFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.mk", "")
	writeFile(t, dir, "a.monkey", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "sub/c.MK", "")

	files, err := ListFiles(dir, nil)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.monkey"),
		filepath.Join(dir, "b.mk"),
		filepath.Join(dir, "sub", "c.MK"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.mk", "let add = fn(a, b) { a + b };\nadd(1, 2);")
	writeFile(t, dir, "bad.mk", "let 5;")
	writeFile(t, dir, "skip.txt", "@@@")

	var rec pipeline.RecordingSink
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)

	fs, results, err := ParseDir(ctx, dir, 0, 2, nil, &rec)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "bad.mk" || filepath.Base(results[1].Path) != "ok.mk" {
		t.Fatalf("results not sorted: %s, %s", results[0].Path, results[1].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Fatal("bad.mk should have errors")
	}
	if results[1].Bag.HasErrors() {
		t.Fatalf("ok.mk errors: %v", results[1].Bag.Messages())
	}
	if got := results[1].Result.Program.String(); got != "let add = fn(a, b) { (a + b) };\nadd(1, 2)" {
		t.Fatalf("ok.mk rendered %q", got)
	}
	if fs.Get(results[1].FileID).Path != results[1].Result.File.Path {
		t.Fatal("file set and result disagree on file")
	}

	terminal := map[string]pipeline.Status{}
	for _, ev := range rec.Events() {
		if ev.Terminal() {
			terminal[filepath.Base(ev.File)] = ev.Status
		}
	}
	if terminal["ok.mk"] != pipeline.StatusDone || terminal["bad.mk"] != pipeline.StatusError {
		t.Fatalf("unexpected terminal statuses %v", terminal)
	}

	var sawDir bool
	for _, ev := range ring.Snapshot() {
		if ev.Name == "parse-dir" {
			sawDir = true
		}
	}
	if !sawDir {
		t.Fatal("expected parse-dir span in trace")
	}
}

func TestParseFilesLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mk")
	_, results, err := ParseFiles(context.Background(), []string{missing}, 0, 1, nil)
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	if len(results) != 1 || results[0].Result != nil {
		t.Fatalf("unexpected results %+v", results)
	}
	items := results[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("expected IO4001, got %+v", items)
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, results, err := ParseDir(context.Background(), t.TempDir(), 0, 0, nil, pipeline.NopSink{})
	if err != nil || len(results) != 0 {
		t.Fatalf("expected no results, got %v, %v", results, err)
	}
}
