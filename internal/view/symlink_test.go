package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), os.ModePerm); err != nil {
		t.Fatal(err)
	}
}

func TestCreateSymlinkRelativeTarget(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "raw", "doc.pdf")
	link := filepath.Join(root, "view", "sub", "doc.pdf")
	writeTestFile(t, target)

	var stats Statistics
	if !CreateSymlink(target, link, false, &stats) {
		t.Fatal("creation reported failure")
	}
	stored, err := os.Readlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.IsAbs(stored) {
		t.Errorf("stored target %q is absolute", stored)
	}
	if resolved, _ := filepath.EvalSymlinks(link); resolved != mustEval(t, target) {
		t.Errorf("link resolves to %q", resolved)
	}
	if stats.SymlinksCreated != 1 || stats.DirsCreated != 1 || stats.SymlinksBroken != 0 {
		t.Errorf("unexpected statistics: %+v", stats)
	}
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func TestCreateSymlinkIdempotent(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "doc.pdf")
	link := filepath.Join(root, "view", "doc.pdf")
	writeTestFile(t, target)

	var stats Statistics
	CreateSymlink(target, link, false, &stats)
	CreateSymlink(target, link, false, &stats)
	if stats.SymlinksCreated != 1 || stats.SymlinksSkipped != 1 {
		t.Errorf("second run not skipped: %+v", stats)
	}
}

func TestCreateSymlinkMissingTarget(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "view", "doc.pdf")

	var strict Statistics
	if CreateSymlink(filepath.Join(root, "absent.pdf"), link, false, &strict) {
		t.Error("created link to missing target in strict mode")
	}
	if len(strict.Errors) != 1 || !strings.Contains(strict.Errors[0], "does not exist") {
		t.Errorf("missing target not recorded: %+v", strict.Errors)
	}

	var lenient Statistics
	if !CreateSymlink(filepath.Join(root, "absent.pdf"), link, true, &lenient) {
		t.Error("allow-broken mode refused creation")
	}
	if lenient.SymlinksCreated != 1 || lenient.SymlinksBroken != 1 {
		t.Errorf("broken link not counted: %+v", lenient)
	}
}

func TestCreateAbsoluteSymlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "raw", "bucket")
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "products", "bucket")

	var stats Statistics
	if !CreateAbsoluteSymlink(target, link, &stats) {
		t.Fatal("creation reported failure")
	}
	stored, err := os.Readlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(stored) {
		t.Errorf("stored target %q is not absolute", stored)
	}

	if CreateAbsoluteSymlink(filepath.Join(root, "absent"), filepath.Join(root, "products", "other"), &stats) {
		t.Error("created absolute link to missing target")
	}
}

func TestEnsureDirCountsOnlyCreations(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	var stats Statistics
	if err := EnsureDir(dir, &stats); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(dir, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.DirsCreated != 1 {
		t.Errorf("DirsCreated = %d", stats.DirsCreated)
	}
}

func TestStatisticsErrorLimit(t *testing.T) {
	var stats Statistics
	for i := 0; i < errorDisplayLimit+5; i++ {
		stats.RecordError("problem %d", i)
	}
	rendered := stats.String()
	if !strings.Contains(rendered, "and 5 more") {
		t.Errorf("overflow summary missing:\n%s", rendered)
	}
	if strings.Contains(rendered, "problem 12") {
		t.Errorf("errors beyond limit rendered:\n%s", rendered)
	}
}
