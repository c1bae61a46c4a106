package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/exercisetracker/internal/db"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
	logs     *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	moduleDir := filepath.Dir(filepath.Dir(filepath.Dir(testFile)))
	databasePath := filepath.Join(t.TempDir(), "exercise-api-test.db")

	database, err := db.OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	logs := &bytes.Buffer{}
	logger := zerolog.New(logs)
	handler, err := NewHandler(database, &logger, time.UTC, filepath.Join(moduleDir, "web"))
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := NewApp(handler, AppOptions{CORSAllowOrigins: "*", RequestLog: logs})
	return &testApp{app: app, handler: handler, database: database, logs: logs}
}

func (ta *testApp) do(t *testing.T, request *http.Request) (int, []byte) {
	t.Helper()

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response.StatusCode, body
}

func (ta *testApp) postJSON(t *testing.T, path string, payload string) (int, []byte) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	return ta.do(t, request)
}

func (ta *testApp) postForm(t *testing.T, path string, values url.Values) (int, []byte) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ta.do(t, request)
}

func (ta *testApp) get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	return ta.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (ta *testApp) createUser(t *testing.T, username string) userResponse {
	t.Helper()

	status, body := ta.postJSON(t, "/api/users", `{"username":"`+username+`"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create user %s: expected 201, got %d: %s", username, status, body)
	}
	user := userResponse{}
	decodeJSON(t, body, &user)
	return user
}

func (ta *testApp) addExercise(t *testing.T, userID string, description string, duration int, date string) {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"description": description, "duration": duration, "date": date})
	if err != nil {
		t.Fatalf("encode exercise payload: %v", err)
	}
	status, body := ta.postJSON(t, "/api/users/"+userID+"/exercises", string(payload))
	if status != fiber.StatusCreated {
		t.Fatalf("add exercise %s: expected 201, got %d: %s", description, status, body)
	}
}

func decodeJSON(t *testing.T, body []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode response body %q: %v", body, err)
	}
}

func readAPIError(t *testing.T, body []byte) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSON(t, body, &payload)
	return payload["error"]
}

func assertAPIError(t *testing.T, status int, body []byte, expectedStatus int, expectedMessage string) {
	t.Helper()

	if status != expectedStatus {
		t.Fatalf("expected status %d, got %d: %s", expectedStatus, status, body)
	}
	if message := readAPIError(t, body); message != expectedMessage {
		t.Fatalf("expected error %q, got %q", expectedMessage, message)
	}
}
