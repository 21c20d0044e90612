package storage

import (
	"math"
	"testing"

	"github.com/mstolbov/attractor/internal/chaos"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tr := chaos.Trajectory{
		{1, 1, 1},
		{1, 1.26, 0.983333},
		{1.026, 1.5096, 0.96522},
	}
	meta := RunMetadata{
		Family:     "lorenz",
		Method:     "euler",
		Step:       0.01,
		Iterations: 2,
		Params:     []float64{10, 28, 8.0 / 3.0},
		Initial:    []float64{1, 1, 1},
	}

	runID, err := st.Save(meta, tr)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Family != "lorenz" || loaded.Method != "euler" {
		t.Errorf("metadata: got %s/%s", loaded.Family, loaded.Method)
	}
	if loaded.Iterations != 2 || loaded.Step != 0.01 {
		t.Errorf("metadata: step %f iterations %d", loaded.Step, loaded.Iterations)
	}
	if len(loaded.Params) != 3 {
		t.Errorf("params: got %v", loaded.Params)
	}

	got, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("LoadTrajectory failed: %v", err)
	}
	if len(got) != len(tr) {
		t.Fatalf("expected %d rows, got %d", len(tr), len(got))
	}
	for i := range tr {
		for j := 0; j < 3; j++ {
			// trajectory.csv stores 6 decimal places
			if math.Abs(got[i][j]-tr[i][j]) > 1e-6 {
				t.Errorf("row %d col %d: got %f, want %f", i, j, got[i][j], tr[i][j])
			}
		}
	}
}

func TestListRuns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(RunMetadata{Family: "thomas"}, chaos.Trajectory{{1, 1, 1}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Family != "thomas" {
		t.Errorf("family: got %s", runs[0].Family)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("lorenz_0"); err == nil {
		t.Error("expected error for unknown run id")
	}
}
