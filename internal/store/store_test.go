package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleRecord(run string, frame int) FrameRecord {
	return FrameRecord{
		Run: run, Frame: frame, X: 3.456, Y: 2.345, Heading: 1.523 + float64(frame),
		Path: "frames/" + run, Hits: 512, RenderedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func exerciseStorage(t *testing.T, s Storage, run string) {
	t.Helper()
	if _, err := s.Frames(run); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty run, got %v", err)
	}
	for _, f := range []int{2, 0, 1} {
		if err := s.SaveFrame(sampleRecord(run, f)); err != nil {
			t.Fatalf("save frame %d: %v", f, err)
		}
	}
	updated := sampleRecord(run, 1)
	updated.Hits = 7
	if err := s.SaveFrame(updated); err != nil {
		t.Fatalf("resave: %v", err)
	}
	frames, err := s.Frames(run)
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Frame != i {
			t.Fatalf("frames not ordered: %v", frames)
		}
	}
	if frames[1].Hits != 7 {
		t.Fatal("resaving a frame should replace it")
	}
	if !frames[0].RenderedAt.Equal(sampleRecord(run, 0).RenderedAt) {
		t.Fatal("timestamp not preserved")
	}
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renders.json")
	s, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseStorage(t, s, "spin")
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	frames, err := reopened.Frames("spin")
	if err != nil || len(frames) != 3 || frames[1].Hits != 7 {
		t.Fatalf("reopened store lost data: %v %v", frames, err)
	}
}

func TestJSONStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renders.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewJSONStore(path); err == nil {
		t.Fatal("expected corrupt file to be rejected")
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open("sqlite", "x"); err == nil {
		t.Fatal("expected error for unknown store kind")
	}
	s, err := Open("json", filepath.Join(t.TempDir(), "r.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Fatalf("expected *JSONStore, got %T", s)
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	s, err := NewPostgresStore(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	run := "test-" + time.Now().Format("20060102150405.000000000")
	exerciseStorage(t, s, run)
	if _, err := s.db.Exec(`DELETE FROM frames WHERE run = $1`, run); err != nil {
		t.Fatal(err)
	}
}
