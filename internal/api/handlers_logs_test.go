package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seedLogUser(t *testing.T, ta *testApp) userResponse {
	t.Helper()

	user := ta.createUser(t, "logger")
	ta.addExercise(t, user.ID, "future", 50, "2024-06-01")
	ta.addExercise(t, user.ID, "mid-2020", 20, "2020-06-01")
	ta.addExercise(t, user.ID, "old", 10, "2019-12-31")
	ta.addExercise(t, user.ID, "jan-2023", 30, "2023-01-15")
	ta.addExercise(t, user.ID, "early-2020", 15, "2020-01-01")
	return user
}

func fetchLog(t *testing.T, ta *testApp, path string) logResponse {
	t.Helper()

	status, body := ta.get(t, path)
	if status != fiber.StatusOK {
		t.Fatalf("GET %s expected 200, got %d: %s", path, status, body)
	}
	result := logResponse{}
	decodeJSON(t, body, &result)
	if result.Count != len(result.Log) {
		t.Fatalf("count %d does not match log length %d", result.Count, len(result.Log))
	}
	return result
}

func logDescriptions(result logResponse) []string {
	descriptions := make([]string, 0, len(result.Log))
	for _, entry := range result.Log {
		descriptions = append(descriptions, entry.Description)
	}
	return descriptions
}

func assertLogDescriptions(t *testing.T, result logResponse, expected ...string) {
	t.Helper()

	actual := logDescriptions(result)
	if len(actual) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
	for index := range expected {
		if actual[index] != expected[index] {
			t.Fatalf("expected %v, got %v", expected, actual)
		}
	}
}

func TestGetLogsWithoutFiltersReturnsAllAscending(t *testing.T) {
	ta := newTestApp(t)
	user := seedLogUser(t, ta)

	result := fetchLog(t, ta, "/api/users/"+user.ID+"/logs")
	if result.ID != user.ID || result.Username != "logger" {
		t.Fatalf("unexpected owner %+v", result)
	}
	assertLogDescriptions(t, result, "old", "early-2020", "mid-2020", "jan-2023", "future")
	if result.Log[0].Date != "Tue Dec 31 2019" || result.Log[0].Duration != 10 {
		t.Fatalf("unexpected first entry %+v", result.Log[0])
	}
}

func TestGetLogsFromOnlyEndsToday(t *testing.T) {
	ta := newTestApp(t)
	user := seedLogUser(t, ta)

	result := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?from=2020-01-01")
	assertLogDescriptions(t, result, "early-2020", "mid-2020", "jan-2023")
}

func TestGetLogsToOnlyStartsAtEpoch(t *testing.T) {
	ta := newTestApp(t)
	user := seedLogUser(t, ta)

	result := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?to=2020-06-01")
	assertLogDescriptions(t, result, "old", "early-2020", "mid-2020")
}

func TestGetLogsInclusiveRangeAndLimit(t *testing.T) {
	ta := newTestApp(t)
	user := seedLogUser(t, ta)

	result := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?from=2020-01-01&to=2023-01-15")
	assertLogDescriptions(t, result, "early-2020", "mid-2020", "jan-2023")

	limited := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?limit=2")
	assertLogDescriptions(t, limited, "old", "early-2020")

	unbounded := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?limit=0")
	if unbounded.Count != 5 {
		t.Fatalf("expected limit=0 to return everything, got %d", unbounded.Count)
	}

	negative := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?limit=-1")
	assertLogDescriptions(t, negative, "old")
}

func TestGetLogsInvertedRangeIsEmpty(t *testing.T) {
	ta := newTestApp(t)
	user := seedLogUser(t, ta)

	result := fetchLog(t, ta, "/api/users/"+user.ID+"/logs?from=2023-01-01&to=2020-01-01")
	if result.Count != 0 || result.Log == nil {
		t.Fatalf("expected empty log array, got %+v", result)
	}
}

func TestGetLogsValidation(t *testing.T) {
	ta := newTestApp(t)
	user := ta.createUser(t, "checker")
	base := "/api/users/" + user.ID + "/logs"

	status, body := ta.get(t, base+"?from=not-a-date")
	assertAPIError(t, status, body, fiber.StatusBadRequest, "from date is invalid")

	status, body = ta.get(t, base+"?from=2020-01-01&to=nope")
	assertAPIError(t, status, body, fiber.StatusBadRequest, "to date is invalid")

	status, body = ta.get(t, base+"?limit=abc")
	assertAPIError(t, status, body, fiber.StatusBadRequest, "limit is not a number")

	status, body = ta.get(t, "/api/users/unknown/logs")
	assertAPIError(t, status, body, fiber.StatusNotFound, "user not found")
}
