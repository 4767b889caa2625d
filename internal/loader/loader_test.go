package loader

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestDiscover_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"b.md":       {Data: []byte("b")},
		"a.md":       {Data: []byte("a")},
		"notes.txt":  {Data: []byte("skip")},
		"sub/c.md":   {Data: []byte("c")},
		"sub/d.html": {Data: []byte("skip")},
	}

	raws, err := New(fsys, Config{Recursive: true}).Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.md", "b.md", "sub/c.md"}
	if len(raws) != len(want) {
		t.Fatalf("got %d documents, want %d", len(raws), len(want))
	}
	for i, origin := range want {
		if raws[i].Origin != origin {
			t.Errorf("raws[%d].Origin = %q, want %q", i, raws[i].Origin, origin)
		}
	}
	if string(raws[0].Data) != "a" {
		t.Errorf("raws[0].Data = %q", raws[0].Data)
	}
}

func TestDiscover_NonRecursiveSkipsSubdirs(t *testing.T) {
	fsys := fstest.MapFS{
		"top.md":   {Data: []byte("t")},
		"sub/x.md": {Data: []byte("x")},
	}
	raws, err := New(fsys, Config{Recursive: false}).Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 1 || raws[0].Origin != "top.md" {
		t.Errorf("raws = %v", raws)
	}
}

func TestDiscover_CustomPattern(t *testing.T) {
	fsys := fstest.MapFS{
		"a.markdown": {Data: []byte("a")},
		"b.md":       {Data: []byte("b")},
	}
	raws, err := New(fsys, Config{Pattern: "*.markdown", Recursive: true}).Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 1 || raws[0].Origin != "a.markdown" {
		t.Errorf("raws = %v", raws)
	}
}

func TestDiscover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(fstest.MapFS{"a.md": {Data: []byte("a")}}, Config{}).Discover(ctx)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
