package api

import (
	"testing"
)

func TestExerciseTrackerEndToEndFlow(t *testing.T) {
	ta := newTestApp(t)

	user := ta.createUser(t, "fcc_test")

	ta.addExercise(t, user.ID, "test", 60, "1990-01-01")
	ta.addExercise(t, user.ID, "test", 60, "1990-01-02")
	ta.addExercise(t, user.ID, "test", 60, "2023-01-15")

	full := fetchLog(t, ta, "/api/users/"+user.ID+"/logs")
	if full.Username != "fcc_test" || full.Count != 3 {
		t.Fatalf("unexpected full log %+v", full)
	}
	if full.Log[2].Date != "Sun Jan 15 2023" {
		t.Fatalf("expected toDateString style date, got %q", full.Log[2].Date)
	}

	ranged := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?from=1989-12-31&to=1990-01-04&limit=1")
	if ranged.Count != 1 || ranged.Log[0].Date != "Mon Jan 01 1990" {
		t.Fatalf("unexpected ranged log %+v", ranged)
	}
	if ranged.Log[0].Description != "test" || ranged.Log[0].Duration != 60 {
		t.Fatalf("unexpected entry %+v", ranged.Log[0])
	}
}
