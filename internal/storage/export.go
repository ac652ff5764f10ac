package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/sortviz/internal/sorter"
)

type ExportData struct {
	RunMetadata
	Trace []sorter.Action `json:"trace"`
}

// ExportJSON writes a stored run and its full trace as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	actions, err := s.LoadActions(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{RunMetadata: *meta, Trace: actions})
}
