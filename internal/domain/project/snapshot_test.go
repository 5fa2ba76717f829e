package project

import "testing"

func sampleSnapshot() Snapshot {
	return Snapshot{
		{ID: "p-1", Title: "Build API", Description: "Create REST API", People: 3, Status: StatusActive},
		{ID: "p-2", Title: "Write docs", Description: "User guide", People: 1, Status: StatusFinished},
		{ID: "p-3", Title: "Ship it", Description: "Release v1", People: 2, Status: StatusActive},
	}
}

func TestSnapshot_Clone_Independence(t *testing.T) {
	t.Parallel()

	orig := sampleSnapshot()
	clone := orig.Clone()

	clone[0].Status = StatusFinished
	clone = append(clone, Project{ID: "p-4", Title: "Extra", People: 1, Status: StatusActive})

	if orig[0].Status != StatusActive {
		t.Errorf("orig[0].Status = %q after mutating clone, want %q", orig[0].Status, StatusActive)
	}
	if len(orig) != 3 {
		t.Errorf("len(orig) = %d after appending to clone, want 3", len(orig))
	}
	if len(clone) != 4 {
		t.Errorf("len(clone) = %d, want 4", len(clone))
	}
}

func TestSnapshot_Filter_ByStatus(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()

	active := snap.Filter(Filter{Status: StatusActive})
	if len(active) != 2 {
		t.Fatalf("len(active) = %d, want 2", len(active))
	}
	if active[0].ID != "p-1" || active[1].ID != "p-3" {
		t.Errorf("active ids = [%s, %s], want [p-1, p-3]", active[0].ID, active[1].ID)
	}

	finished := snap.Filter(Filter{Status: StatusFinished})
	if len(finished) != 1 {
		t.Fatalf("len(finished) = %d, want 1", len(finished))
	}
	if finished[0].ID != "p-2" {
		t.Errorf("finished[0].ID = %s, want p-2", finished[0].ID)
	}
}

func TestSnapshot_Filter_ZeroValueMatchesAll(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()

	all := snap.Filter(Filter{})
	if len(all) != len(snap) {
		t.Errorf("len(all) = %d, want %d", len(all), len(snap))
	}
}

// TestSnapshot_Filter_Partition verifies that splitting any snapshot by
// status yields a complete, non-overlapping cover.
func TestSnapshot_Filter_Partition(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()

	active := snap.Filter(Filter{Status: StatusActive})
	finished := snap.Filter(Filter{Status: StatusFinished})

	if got := len(active) + len(finished); got != len(snap) {
		t.Errorf("len(active)+len(finished) = %d, want %d", got, len(snap))
	}

	seen := make(map[string]int)
	for _, p := range active {
		seen[p.ID]++
	}
	for _, p := range finished {
		seen[p.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("project %s appears %d times across partitions, want 1", id, n)
		}
	}
}

func TestSnapshot_Filter_DoesNotAliasSource(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	active := snap.Filter(Filter{Status: StatusActive})

	active[0].Title = "changed"

	if snap[0].Title != "Build API" {
		t.Errorf("snap[0].Title = %q after mutating filtered copy, want %q", snap[0].Title, "Build API")
	}
}
