// Package replay exports recorded projectile trajectories as CSV for
// offline analysis.
package replay

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"orbital-defense/pkg/physics"
)

// DefaultFilename is where Save writes unless told otherwise
const DefaultFilename = "trajectory_replay.csv"

// ErrNoData means no projectile had any recorded trajectory
var ErrNoData = errors.New("replay: no trajectory data")

var header = []string{"time", "x", "y", "vx", "vy", "speed", "angle", "projectile_id"}

// Track is one projectile's recorded trajectory
type Track struct {
	ID      int
	Samples []physics.TrajectorySample
}

// Collect gathers tracks for every live projectile, identified by its
// position in the projectile list.
func Collect(m *physics.Motion) []Track {
	var tracks []Track
	for i, p := range m.Projectiles() {
		tracks = append(tracks, Track{ID: i, Samples: m.ExportTrajectoryData(p)})
	}
	return tracks
}

// Write emits all tracks as CSV rows after a header line
func Write(w io.Writer, tracks []Track) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("replay: write header: %w", err)
	}

	for _, track := range tracks {
		id := strconv.Itoa(track.ID)
		for _, s := range track.Samples {
			record := []string{
				formatFloat(s.Time),
				formatFloat(s.X),
				formatFloat(s.Y),
				formatFloat(s.VX),
				formatFloat(s.VY),
				formatFloat(s.Speed),
				formatFloat(s.Angle),
				id,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("replay: write record: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Save writes all tracks to a CSV file. When no track holds any
// samples it creates nothing and returns ErrNoData.
func Save(path string, tracks []Track) error {
	empty := true
	for _, track := range tracks {
		if len(track.Samples) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return ErrNoData
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, tracks); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
