package replay

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"orbital-defense/pkg/physics"
)

func sampleTracks() []Track {
	return []Track{
		{ID: 0, Samples: []physics.TrajectorySample{
			{Time: 0.1, X: 1, Y: 2, VX: 3, VY: 4, Speed: 5, Angle: 0.9272952180016122},
			{Time: 0.2, X: 1.5, Y: 2.5, VX: 3, VY: 4, Speed: 5, Angle: 0.9272952180016122},
		}},
		{ID: 1, Samples: []physics.TrajectorySample{
			{Time: 0.1, X: 10, Y: 20, VX: -1, VY: 0, Speed: 1, Angle: 3.141592653589793},
		}},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleTracks()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want header plus 3 rows", len(records))
	}

	wantHeader := []string{"time", "x", "y", "vx", "vy", "speed", "angle", "projectile_id"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	if records[1][0] != "0.1" || records[1][1] != "1" || records[1][7] != "0" {
		t.Errorf("first row = %v", records[1])
	}
	if records[3][7] != "1" {
		t.Errorf("last row projectile_id = %q, want \"1\"", records[3][7])
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.csv")
	if err := Save(path, sampleTracks()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("got %d records, want 4", len(records))
	}
}

func TestSaveWithoutData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.csv")

	err := Save(path, []Track{{ID: 0}})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Save() error = %v, want ErrNoData", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("file should not be created without data")
	}
}

func TestCollect(t *testing.T) {
	sim := physics.NewSimulator()
	m := physics.NewMotion(sim)
	m.Launch(physics.Vector2D{X: 0, Y: 0}, 0, 5, 1, 0.5)
	m.Launch(physics.Vector2D{X: 10, Y: 0}, 0, 5, 1, 0.5)

	sim.Step(0.1)
	m.RecordStep(0.1)

	tracks := Collect(m)
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	for i, track := range tracks {
		if track.ID != i {
			t.Errorf("track %d has ID %d", i, track.ID)
		}
		if len(track.Samples) != 1 {
			t.Errorf("track %d has %d samples, want 1", i, len(track.Samples))
		}
	}
}
