// Package telemetry holds the pointer data captured during a browser
// session recording and the helpers to load, validate, and summarize it.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CursorSample is one pointer position report. T is in milliseconds
// since the start of the recording.
type CursorSample struct {
	T int64   `json:"t" yaml:"t"`
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ClickEvent is a pointer press at a specific time and position.
type ClickEvent struct {
	T int64   `json:"t" yaml:"t"`
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Viewport is the pixel size of the recorded browser viewport.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Recording is a captured browser session: cursor telemetry plus the
// viewport it was captured in.
type Recording struct {
	ID        string         `json:"id"`
	URL       string         `json:"url,omitempty"`
	StartedAt time.Time      `json:"started_at,omitempty"`
	Viewport  Viewport       `json:"viewport"`
	Positions []CursorSample `json:"positions"`
	Clicks    []ClickEvent   `json:"clicks"`
}

// Duration returns the time span covered by the telemetry in
// milliseconds.
func (r *Recording) Duration() int64 {
	var last int64
	if n := len(r.Positions); n > 0 {
		last = r.Positions[n-1].T
	}
	for _, c := range r.Clicks {
		if c.T > last {
			last = c.T
		}
	}
	return last
}

// Normalize sorts telemetry by time and assigns an ID when the capture
// did not provide one. Browser captures usually arrive sorted already;
// sorting here keeps every downstream consumer free of that assumption.
func (r *Recording) Normalize() {
	sort.SliceStable(r.Positions, func(i, j int) bool { return r.Positions[i].T < r.Positions[j].T })
	sort.SliceStable(r.Clicks, func(i, j int) bool { return r.Clicks[i].T < r.Clicks[j].T })
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
}

// Load reads and normalizes a recording from a JSON file.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}

	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording %s: %w", path, err)
	}

	rec.Normalize()
	return &rec, nil
}

// Save writes a recording as indented JSON.
func Save(rec *Recording, path string) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// FindLatest returns the most recently modified recording JSON in dir.
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latest = filepath.Join(dir, entry.Name())
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no recordings found in %s", dir)
	}
	return latest, nil
}
