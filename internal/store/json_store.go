package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// JSONStore persists the render log to a local JSON file. It is safe for use
// by concurrent render workers.
type JSONStore struct {
	filePath string
	mutex    sync.Mutex
	runs     map[string]map[int]FrameRecord
}

type jsonData struct {
	Runs map[string][]FrameRecord `json:"runs"`
}

// NewJSONStore opens or creates the JSON file at filePath.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{filePath: filePath, runs: make(map[string]map[int]FrameRecord)}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else if err := store.saveToFile(); err != nil {
		return nil, fmt.Errorf("failed to create JSON store file: %w", err)
	}
	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	var data jsonData
	if err := json.Unmarshal(file, &data); err != nil {
		return err
	}
	for run, frames := range data.Runs {
		m := make(map[int]FrameRecord, len(frames))
		for _, f := range frames {
			m[f.Frame] = f
		}
		js.runs[run] = m
	}
	return nil
}

// saveToFile must be called with the mutex held.
func (js *JSONStore) saveToFile() error {
	data := jsonData{Runs: make(map[string][]FrameRecord, len(js.runs))}
	for run := range js.runs {
		data.Runs[run] = js.sorted(run)
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(js.filePath, out, 0644)
}

func (js *JSONStore) sorted(run string) []FrameRecord {
	frames := make([]FrameRecord, 0, len(js.runs[run]))
	for _, f := range js.runs[run] {
		frames = append(frames, f)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Frame < frames[j].Frame })
	return frames
}

// SaveFrame records rec, replacing any earlier record for the same frame.
func (js *JSONStore) SaveFrame(rec FrameRecord) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	if js.runs[rec.Run] == nil {
		js.runs[rec.Run] = make(map[int]FrameRecord)
	}
	js.runs[rec.Run][rec.Frame] = rec
	return js.saveToFile()
}

// Frames returns the run's records ordered by frame index.
func (js *JSONStore) Frames(run string) ([]FrameRecord, error) {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	if len(js.runs[run]) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, run)
	}
	return js.sorted(run), nil
}

// Close is a no-op for the JSON store; every save is flushed immediately.
func (js *JSONStore) Close() error {
	return nil
}
