package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsSpecFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"boss.yaml", true},
		{"prefabs/BOSS.YML", true},
		{"boss.yaml~", false},
		{"notes.txt", false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := isSpecFile(c.path); got != c.want {
				t.Fatalf("got %v want %v", got, c.want)
			}
		})
	}
}

func TestWatcherBatchesYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherSettle(200*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	boss := filepath.Join(dir, "boss.yaml")
	camera := filepath.Join(dir, "camera.yaml")
	for _, name := range []string{camera, boss, boss} {
		if err := os.WriteFile(name, []byte("name: x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case batch := <-w.Changes:
		if len(batch) != 2 || batch[0] != boss || batch[1] != camera {
			t.Fatalf("expected [%s %s], got %v", boss, camera, batch)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for prefab change")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Changes; ok {
		t.Fatal("expected changes channel to be closed")
	}
}
