package artifact

import (
	"errors"
	"os"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	path, err := store.Save("contract.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved artifact: %v", err)
	}
	if string(content) != "%PDF-1.4" {
		t.Fatalf("content = %q", content)
	}

	opened, err := store.Open("contract.pdf")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if opened != path {
		t.Fatalf("Open = %q, want %q", opened, path)
	}
}

func TestOpenUnknownArtifact(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	if _, err := store.Open("missing.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUnsafeNamesRejected(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.pdf", `a\b.pdf`} {
		if _, err := store.Save(name, []byte("x")); err == nil {
			t.Errorf("Save(%q) accepted an unsafe name", name)
		}
		if _, err := store.Open(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Open(%q) = %v, want ErrNotFound", name, err)
		}
	}
}
