package camera

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testPlan(t *testing.T, mode Mode) *Plan {
	t.Helper()
	engine, err := NewEngine(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	session := engine.Synthesize(testRecording(), mode)
	plan := NewPlan(session, "rec-001")
	plan.GeneratedAt = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	return plan
}

func TestPlanYAMLRoundTrip(t *testing.T) {
	plan := testPlan(t, ModeBasic)
	path := filepath.Join(t.TempDir(), "plan.yaml")

	if err := WritePlan(plan, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadPlan(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plan, got); diff != "" {
		t.Errorf("plan changed across the yaml round trip (-want +got):\n%s", diff)
	}
}

func TestPlanJSONRoundTrip(t *testing.T) {
	plan := testPlan(t, ModeSmart)
	path := filepath.Join(t.TempDir(), "plan.json")

	if err := WritePlan(plan, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadPlan(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plan, got); diff != "" {
		t.Errorf("plan changed across the json round trip (-want +got):\n%s", diff)
	}
}

func TestPlanYAMLIsHumanReadable(t *testing.T) {
	plan := testPlan(t, ModeSmart)
	path := filepath.Join(t.TempDir(), "plan.yaml")

	if err := WritePlan(plan, path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"mode: smart",
		"recording_id: rec-001",
		"easing: ease-in-out-cubic",
		"time_ms:",
		"zoom_duration_ms: 800",
	} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("plan file missing %q:\n%s", want, raw)
		}
	}
}

func TestReadPlanMissingFile(t *testing.T) {
	if _, err := ReadPlan(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing plan file")
	}
}
