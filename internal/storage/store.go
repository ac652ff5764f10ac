package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorter"
)

const (
	metadataFile = "metadata.json"
	actionsFile  = "actions.csv"
)

var actionsHeader = []string{"tick", "kind", "i", "j", "value"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Engine    string             `json:"engine"`
	Timestamp time.Time          `json:"timestamp"`
	Size      int                `json:"size"`
	SpeedMS   int                `json:"speed_ms"`
	Seed      int64              `json:"seed"`
	Values    []int              `json:"values"`
	Check     bool               `json:"check"`
	Actions   int                `json:"actions"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a started session under its run ID.
func (s *Store) Save(sess *session.Session) (string, error) {
	rec := sess.Recording()
	runID := rec.ID.String()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Engine:    rec.Engine,
		Timestamp: time.Now(),
		Size:      len(rec.Values),
		SpeedMS:   sess.Config.SpeedMS,
		Seed:      sess.Config.Seed,
		Values:    rec.Values,
		Check:     rec.Check,
		Actions:   len(rec.Actions),
		Metrics:   metrics.Collect(sess.Metrics()),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, actionsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeActions(csvFile, rec.Actions); err != nil {
		return "", err
	}
	return runID, nil
}

func writeActions(out io.Writer, actions []sorter.Action) error {
	w := csv.NewWriter(out)
	if err := w.Write(actionsHeader); err != nil {
		return err
	}
	for k, a := range actions {
		row := []string{
			strconv.Itoa(k + 1),
			a.Kind.String(),
			strconv.Itoa(a.I),
			strconv.Itoa(a.J),
			strconv.Itoa(a.Value),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRun, runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadActions(runID string) ([]sorter.Action, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, actionsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	actions, err := readActions(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return actions, nil
}

func readActions(in io.Reader) ([]sorter.Action, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(actionsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRun, err)
	}
	if len(records) < 2 {
		return []sorter.Action{}, nil
	}

	actions := make([]sorter.Action, 0, len(records)-1)
	for n, record := range records[1:] {
		kind, err := sorter.ParseKind(record[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCorruptRun, n+1, err)
		}
		var fields [3]int
		for j := range fields {
			if fields[j], err = strconv.Atoi(record[2+j]); err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrCorruptRun, n+1, err)
			}
		}
		actions = append(actions, sorter.Action{Kind: kind, I: fields[0], J: fields[1], Value: fields[2]})
	}
	return actions, nil
}

// LoadRecording reads a run back in the form a session replays.
func (s *Store) LoadRecording(runID string) (*RunMetadata, session.Recording, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, session.Recording{}, err
	}
	id, err := uuid.Parse(meta.ID)
	if err != nil {
		return nil, session.Recording{}, fmt.Errorf("%w: bad id %q: %v", ErrCorruptRun, meta.ID, err)
	}
	actions, err := s.LoadActions(runID)
	if err != nil {
		return nil, session.Recording{}, err
	}
	if len(actions) != meta.Actions {
		return nil, session.Recording{}, fmt.Errorf("%w: %d actions on disk, %d in metadata", ErrCorruptRun, len(actions), meta.Actions)
	}

	return meta, session.Recording{
		ID:      id,
		Engine:  meta.Engine,
		Values:  meta.Values,
		Actions: actions,
		Check:   meta.Check,
	}, nil
}
