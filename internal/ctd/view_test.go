package ctd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSourceFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), os.ModePerm); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "files")
	writeSourceFile(t, filepath.Join(source, "Module 2.5 Clinical Overview.pdf"))
	writeSourceFile(t, filepath.Join(source, "2.4 Nonclinical Overview.pdf"))
	writeSourceFile(t, filepath.Join(source, "3.2.P.1.description.pdf"))
	writeSourceFile(t, filepath.Join(source, "meeting-notes.txt"))
	writeSourceFile(t, filepath.Join(source, "__Table Of Contents (generated).pdf"))

	target := filepath.Join(root, "CTD")
	stats, unmatched, err := Generate(Options{
		Sources:   []string{source},
		Target:    target,
		Accession: "RDCP-26-0003",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(unmatched) != 1 || unmatched[0] != "meeting-notes.txt" {
		t.Errorf("unmatched = %v", unmatched)
	}
	if len(stats.Errors) != 0 {
		t.Errorf("errors recorded: %v", stats.Errors)
	}

	// module 2 holds two files, so the folder stays; the sole module 3 file
	// collapses into a single link at the root
	mustBeSymlink(t, filepath.Join(target, "2) Summaries", "2.5) Clinical Overview.pdf"))
	mustBeSymlink(t, filepath.Join(target, "2) Summaries", "2.4) Nonclinical Overview.pdf"))
	mustBeSymlink(t, filepath.Join(target, "3.2.P.1) description.pdf"))
	mustBeSymlink(t, filepath.Join(target, "Table Of Contents.pdf"))
}

func mustBeSymlink(t *testing.T, path string) {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("missing: %s", path)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("not a symlink: %s", path)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "files")
	writeSourceFile(t, filepath.Join(source, "2.4 Nonclinical Overview.pdf"))
	writeSourceFile(t, filepath.Join(source, "2.5 Clinical Overview.pdf"))

	opts := Options{Sources: []string{source}, Target: filepath.Join(root, "CTD")}
	first, _, err := Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.SymlinksCreated != 0 || second.SymlinksSkipped != first.SymlinksCreated {
		t.Errorf("second run altered state: first %+v, second %+v", first, second)
	}
}

func TestGenerateRecursive(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "files")
	writeSourceFile(t, filepath.Join(source, "nested", "deeper", "2.4 Overview.pdf"))
	writeSourceFile(t, filepath.Join(source, "nested", "stray.bin"))

	flat, unmatched, err := Generate(Options{
		Sources: []string{source},
		Target:  filepath.Join(root, "CTD-flat"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if flat.SymlinksCreated != 0 || len(unmatched) != 0 {
		t.Errorf("non-recursive scan descended: %+v, unmatched %v", flat, unmatched)
	}

	deep, unmatched, err := Generate(Options{
		Sources:   []string{source},
		Target:    filepath.Join(root, "CTD-deep"),
		Recursive: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if deep.SymlinksCreated != 1 {
		t.Errorf("recursive scan missed the file: %+v", deep)
	}
	if len(unmatched) != 1 || unmatched[0] != filepath.Join("nested", "stray.bin") {
		t.Errorf("unmatched = %v", unmatched)
	}
}

func TestGenerateMissingSource(t *testing.T) {
	root := t.TempDir()
	stats, _, err := Generate(Options{
		Sources: []string{filepath.Join(root, "absent")},
		Target:  filepath.Join(root, "CTD"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.Errors) != 1 {
		t.Errorf("missing source not recorded: %+v", stats.Errors)
	}
}
