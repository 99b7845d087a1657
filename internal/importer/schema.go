package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SnapshotVersion is written by Export and is the only version Import accepts.
const SnapshotVersion = 1

// Snapshot is the portable JSON document holding a student's grade book:
// recorded grades and what-if overrides per program, keyed by course name,
// plus the viewing preferences. Empty or null grades mean "not recorded".
type Snapshot struct {
	Version   int                          `json:"version" validate:"omitempty,eq=1"`
	Program   string                       `json:"program,omitempty" validate:"omitempty,oneof=data_science electronic_systems"`
	Level     string                       `json:"level,omitempty" validate:"omitempty,oneof=foundation diploma bsc bs"`
	Bias      *float64                     `json:"bias,omitempty" validate:"omitempty,gte=0.8,lte=1.2"`
	Grades    map[string]map[string]string `json:"grades" validate:"dive,keys,oneof=data_science electronic_systems,endkeys"`
	Overrides map[string]map[string]string `json:"overrides,omitempty" validate:"dive,keys,oneof=data_science electronic_systems,endkeys"`
}

// LoadSnapshot reads and parses a snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// DecodeSnapshot parses a snapshot document.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &s, nil
}

// EncodeSnapshot writes s as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
