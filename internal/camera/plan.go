package camera

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/screenreel/screenreel/internal/telemetry"
)

// Plan is the serialized form of a session, written next to the
// recording so renders can be repeated without re-synthesis.
type Plan struct {
	ID          string             `yaml:"id" json:"id"`
	RecordingID string             `yaml:"recording_id,omitempty" json:"recording_id,omitempty"`
	Mode        Mode               `yaml:"mode" json:"mode"`
	GeneratedAt time.Time          `yaml:"generated_at" json:"generated_at"`
	Viewport    telemetry.Viewport `yaml:"viewport" json:"viewport"`
	Settings    Config             `yaml:"settings" json:"settings"`
	Keyframes   []Keyframe         `yaml:"keyframes" json:"keyframes"`
}

// NewPlan captures a session as a plan.
func NewPlan(s *Session, recordingID string) *Plan {
	return &Plan{
		ID:          s.ID,
		RecordingID: recordingID,
		Mode:        s.Mode,
		GeneratedAt: time.Now().UTC(),
		Viewport:    s.Viewport,
		Settings:    s.Config,
		Keyframes:   s.Keyframes,
	}
}

// Session reconstitutes the plan as a session for the render layer.
func (p *Plan) Session() *Session {
	return &Session{
		ID:        p.ID,
		Mode:      p.Mode,
		Viewport:  p.Viewport,
		Config:    p.Settings,
		Keyframes: p.Keyframes,
	}
}

// WritePlan writes a plan as YAML, or JSON when the path ends in .json.
func WritePlan(plan *Plan, path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(plan, "", "  ")
	} else {
		data, err = yaml.Marshal(plan)
	}
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// ReadPlan loads a plan written by WritePlan.
func ReadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var plan Plan
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &plan)
	} else {
		err = yaml.Unmarshal(data, &plan)
	}
	if err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}

	return &plan, nil
}
