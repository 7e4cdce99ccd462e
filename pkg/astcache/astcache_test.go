package astcache

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/perchjs/perch/pkg/ast"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "asts.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleTree() *ast.AST {
	a := ast.New(0)
	script := a.AddNode(ast.TagScript)
	a.AddInlined(ast.TagIdent, "x")
	a.SetSkip(script, ast.SkipEnd)
	return a
}

func TestPutGet(t *testing.T) {
	c := openTestCache(t)
	src := "x;"
	tree := sampleTree()

	if err := c.Put(src, tree); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := c.Get(src)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got.Bytes(), tree.Bytes()) {
		t.Errorf("Get = % x, want % x", got.Bytes(), tree.Bytes())
	}

	// The loaded buffer walks cleanly.
	pos := 0
	got.SkipTree(&pos)
	if pos != got.Len() {
		t.Errorf("SkipTree stopped at %d, want %d", pos, got.Len())
	}
}

func TestGetMissing(t *testing.T) {
	c := openTestCache(t)
	if _, err := c.Get("never stored"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
}

func TestPutReplaces(t *testing.T) {
	c := openTestCache(t)
	src := "x;"

	if err := c.Put(src, sampleTree()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b := ast.New(0)
	b.AddNode(ast.TagNop)
	if err := c.Put(src, b); err != nil {
		t.Fatalf("Put (replace): %v", err)
	}

	got, err := c.Get(src)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got.Bytes(), b.Bytes()) {
		t.Error("replacement entry not returned")
	}
	if n, err := c.Len(); err != nil || n != 1 {
		t.Errorf("Len = %d, %v, want 1", n, err)
	}
}

func TestDelete(t *testing.T) {
	c := openTestCache(t)
	src := "x;"

	if err := c.Put(src, sampleTree()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Delete(src); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(src); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete err = %v, want ErrNotFound", err)
	}
	// Deleting an absent entry is not an error.
	if err := c.Delete("missing"); err != nil {
		t.Errorf("Delete(missing) = %v", err)
	}
}

func TestKeyStable(t *testing.T) {
	if Key("a") == Key("b") {
		t.Error("distinct sources share a key")
	}
	if Key("a") != Key("a") {
		t.Error("key is not deterministic")
	}
}
