package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func collectPaths(t *testing.T, ch <-chan string, want int, timeout time.Duration) map[string]int {
	t.Helper()
	got := map[string]int{}
	deadline := time.After(timeout)
	for len(got) < want {
		select {
		case p, ok := <-ch:
			if !ok {
				return got
			}
			got[p]++
		case <-deadline:
			return got
		}
	}
	return got
}

func TestWatcherDeliversRapidCreates(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	const n = 200
	want := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		p := filepath.Join(dir, fmt.Sprintf("frame-%03d.jpg", i))
		if err := os.WriteFile(p, []byte("img"), 0644); err != nil {
			t.Fatal(err)
		}
		want[p] = true
	}

	got := collectPaths(t, paths, n, 10*time.Second)
	for p := range got {
		if !want[p] {
			t.Errorf("unexpected path %q", p)
		}
	}
	if len(got) != n {
		t.Errorf("delivered %d distinct paths, want %d", len(got), n)
	}
}

func TestWatcherDebouncesChunkedWrites(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 200 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	p := filepath.Join(dir, "frame.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := f.Write([]byte("chunk")); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got := collectPaths(t, paths, 1, 5*time.Second)

	// A duplicate would only show up after another debounce period.
	time.Sleep(400 * time.Millisecond)
	for {
		select {
		case q := <-paths:
			got[q]++
			continue
		default:
		}
		break
	}
	if got[p] != 1 {
		t.Errorf("path delivered %d times, want exactly 1 after debounce", got[p])
	}
}

func TestWatcherIgnoresNonImageFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	img := filepath.Join(dir, "car.jpeg")
	if err := os.WriteFile(img, []byte("img"), 0644); err != nil {
		t.Fatal(err)
	}

	got := collectPaths(t, paths, 1, 5*time.Second)
	if len(got) != 1 || got[img] != 1 {
		t.Errorf("got %v, want only %q", got, img)
	}
}
